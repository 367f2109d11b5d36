// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed Go client for the course API.
//
// [CourseAPI] hides the HTTP details: request paths, the bearer header and
// JSON bodies. Non-2xx answers come back as *[APIError] values that match
// the sentinels in errors.go under [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-keeper/models"
)

// CourseAPI talks to a running course API server.
type CourseAPI interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// SignUp registers a user and returns its id.
	SignUp(ctx context.Context, request models.CreateUserRequest) (string, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.LoginRequest) (string, error)

	// CreateCourse creates a course and returns its id. Requires a manager token.
	CreateCourse(ctx context.Context, request models.CreateCourseRequest) (string, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	ListCourses(ctx context.Context, params models.CourseListParams) (models.CourseListResponse, error)

	GetUser(ctx context.Context, id string) (models.User, error)
	// ListUsers requires a manager token.
	ListUsers(ctx context.Context, params models.UserListParams) (models.UserListResponse, error)

	// Health returns nil when the server and its database are reachable.
	Health(ctx context.Context) error
	Version(ctx context.Context) (models.VersionResponse, error)
}
