package models

import "time"

// Enrollment links a user to a course. It has no endpoint of its own and is
// only read through the course listing aggregate.
type Enrollment struct {
	ID        string
	UserID    string
	CourseID  string
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Enrollment model.
func (e Enrollment) TableName() string {
	return "enrollments"
}
