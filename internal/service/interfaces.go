package service

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
)

// AuthService verifies credentials and manages access tokens.
type AuthService interface {
	// Login returns the user whose email and password match credentials.
	Login(ctx context.Context, credentials models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies tokenString and returns the identity it carries.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// UserService creates and reads user accounts.
type UserService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	// ListUsers returns one page of users and the total number of matches.
	ListUsers(ctx context.Context, query models.ListQuery) ([]models.User, int64, error)
}

// CourseService creates and reads courses.
type CourseService interface {
	CreateCourse(ctx context.Context, request models.CreateCourseRequest) (models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	// ListCourses returns one page of courses and the total number of matches.
	ListCourses(ctx context.Context, query models.ListQuery) ([]models.Course, int64, error)
}

// AppInfoService reports build metadata and backend health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
	CheckHealth(ctx context.Context) error
}
