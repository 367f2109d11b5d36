package models

// CreateCourseRequest is the body of POST /courses.
type CreateCourseRequest struct {
	Title       string `json:"title" validate:"min=5"`
	Description string `json:"description" validate:"min=10"`
}

// CreateUserRequest is the body of POST /users.
// An empty Role is replaced with [RoleStudent] before the user is stored.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=student manager"`
}

// LoginRequest is the body of POST /sessions.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// IDParam is the path parameter of detail endpoints.
type IDParam struct {
	ID string `path:"id" validate:"required,uuid"`
}

// UserListParams holds the query string of GET /users.
type UserListParams struct {
	Search  string `query:"search" validate:"max=255"`
	OrderBy string `query:"orderBy" validate:"omitempty,oneof=id name"`
	Page    int    `query:"page" validate:"min=1,max=1000000"`
}

// CourseListParams holds the query string of GET /courses.
type CourseListParams struct {
	Search  string `query:"search" validate:"max=255"`
	OrderBy string `query:"orderBy" validate:"omitempty,oneof=id title"`
	Page    int    `query:"page" validate:"min=1,max=1000000"`
}
