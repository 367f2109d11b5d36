package store

import "github.com/MKhiriev/go-course-keeper/internal/logger"

// Storages groups every repository sharing one connection pool.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
	HealthChecker    HealthChecker
}

// NewStorages wires the PostgreSQL repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
		HealthChecker:    db,
	}
}
