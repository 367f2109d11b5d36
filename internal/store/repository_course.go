package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
)

type courseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCourseRepository constructs a [CourseRepository] backed by db.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCourse persists a new course. A duplicate title yields
// [ErrCourseTitleAlreadyExists].
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCourseQuery(course)
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var created models.Course
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Title, &created.Description, &created.CreatedAt)
	if err != nil {
		err = r.db.translateError(err)
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error inserting course")
		return models.Course{}, err
	}

	return created, nil
}

// FindCourseByID returns the course with its enrollment count or [ErrNotFound].
func (r *courseRepository) FindCourseByID(ctx context.Context, id string) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCourseByIDQuery(id)
	if err != nil {
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		err = r.db.translateError(err)
		if !isNotFound(err) {
			log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error selecting course")
		}
		return models.Course{}, err
	}

	return course, nil
}

// ListCourses returns one page of courses matching query.
func (r *courseRepository) ListCourses(ctx context.Context, query models.ListQuery) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListCoursesQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		err = r.db.translateError(err)
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error listing courses")
		return nil, err
	}
	defer rows.Close()

	courses := make([]models.Course, 0, query.PageSize)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error scanning course row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		err = r.db.translateError(err)
		log.Err(err).Str("func", "*courseRepository.ListCourses").Msg("error iterating course rows")
		return nil, err
	}

	return courses, nil
}

// CountCourses returns the number of courses matching the search term of query.
func (r *courseRepository) CountCourses(ctx context.Context, query models.ListQuery) (int64, error) {
	sqlQuery, args, err := buildCountCoursesQuery(query)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.count(ctx, "*courseRepository.CountCourses", sqlQuery, args)
}

func scanCourse(row rowScanner) (models.Course, error) {
	var course models.Course
	if err := row.Scan(&course.ID, &course.Title, &course.Description, &course.CreatedAt, &course.Enrollments); err != nil {
		return models.Course{}, err
	}
	return course, nil
}
