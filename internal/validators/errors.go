package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-course-keeper/models"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType is returned when Validate is given something other
	// than a struct or a pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError lists the constraints a value failed.
type ValidationError struct {
	Details []models.ErrorDetail
}

// NewValidationError builds a ValidationError with a single failed constraint.
func NewValidationError(field, rule, param string) *ValidationError {
	return &ValidationError{Details: []models.ErrorDetail{{Field: field, Rule: rule, Param: param}}}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}

	fields := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		fields = append(fields, d.Field+" ("+d.Rule+")")
	}
	return ErrValidation.Error() + ": " + strings.Join(fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
