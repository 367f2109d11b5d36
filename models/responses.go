package models

// CreateCourseResponse is returned with 201 from POST /courses.
type CreateCourseResponse struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

// CreateUserResponse is returned with 201 from POST /users.
type CreateUserResponse struct {
	UserID string `json:"userId" validate:"required,uuid"`
}

// LoginResponse carries the signed access token.
type LoginResponse struct {
	Token string `json:"token" validate:"required"`
}

// UserResponse is returned from GET /users/{id}.
// The key is plural for compatibility with existing clients.
type UserResponse struct {
	User User `json:"users" validate:"required"`
}

// UserListResponse is one page of users plus the total number of matches.
type UserListResponse struct {
	Users []User `json:"users" validate:"dive"`
	Total int64  `json:"total" validate:"min=0"`
}

// CourseResponse is returned from GET /courses/{id}.
type CourseResponse struct {
	Course Course `json:"course" validate:"required"`
}

// CourseListResponse is one page of courses plus the total number of matches.
type CourseListResponse struct {
	Courses []Course `json:"courses" validate:"dive"`
	Total   int64    `json:"total" validate:"min=0"`
}

// HealthResponse reports whether the service can reach its database.
type HealthResponse struct {
	Status string `json:"status"`
}

// VersionResponse exposes build metadata of the running binary.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// ErrorDetail describes one failed constraint of a request.
type ErrorDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ErrorResponse is the body of every non-2xx response that carries one.
type ErrorResponse struct {
	Kind    string        `json:"kind"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}
