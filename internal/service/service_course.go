package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
)

type courseService struct {
	courseRepository store.CourseRepository
	pageSize         int

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, cfg config.App, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		pageSize:         cfg.PageSize,
		logger:           logger,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, request models.CreateCourseRequest) (models.Course, error) {
	log := logger.FromContext(ctx)

	if request.Title == "" || request.Description == "" {
		log.Debug().Msg("invalid course data provided")
		return models.Course{}, ErrInvalidDataProvided
	}

	created, err := s.courseRepository.CreateCourse(ctx, models.Course{
		Title:       request.Title,
		Description: request.Description,
	})
	if err != nil {
		log.Err(err).Str("title", request.Title).Msg("course creation ended with error")
		return models.Course{}, fmt.Errorf("course creation ended with error: %w", err)
	}

	return created, nil
}

func (s *courseService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("course lookup failed: %w", err)
	}

	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context, query models.ListQuery) ([]models.Course, int64, error) {
	query = normalizeListQuery(query, s.pageSize)

	courses, err := s.courseRepository.ListCourses(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("course listing failed: %w", err)
	}

	total, err := s.courseRepository.CountCourses(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("course counting failed: %w", err)
	}

	return courses, total, nil
}
