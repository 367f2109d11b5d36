package models

import "time"

// Course is a learning unit created by a manager.
type Course struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CreatedAt   time.Time `json:"-"`

	// Enrollments is the number of enrollment rows referencing the course.
	Enrollments int64 `json:"enrollments" validate:"min=0"`
}

// TableName returns the name of the database table
// associated with the Course model.
func (c Course) TableName() string {
	return "courses"
}
