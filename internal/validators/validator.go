package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/go-playground/validator/v10"
)

// nameTags are consulted in order to report a field under the name the client used.
var nameTags = []string{"json", "query", "path"}

// StructValidator wraps go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator that enforces `validate` struct tags.
// Field names in reported details come from the json, query or path tag.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &StructValidator{validate: v}
}

func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make([]models.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, models.ErrorDetail{
			Field: fieldPath(fe),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return &ValidationError{Details: details}
}

// fieldPath drops the root struct name from the namespace, so a nested
// failure reads "users[0].email" instead of "UserListResponse.users[0].email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldName(f reflect.StructField) string {
	for _, tag := range nameTags {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
