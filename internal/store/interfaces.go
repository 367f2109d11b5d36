package store

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
)

// UserRepository persists and reads user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row with its generated id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, error)
	CountUsers(ctx context.Context, query models.ListQuery) (int64, error)
}

// CourseRepository persists and reads courses together with their
// enrollment counts.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	FindCourseByID(ctx context.Context, id string) (models.Course, error)
	ListCourses(ctx context.Context, query models.ListQuery) ([]models.Course, error)
	CountCourses(ctx context.Context, query models.ListQuery) (int64, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
