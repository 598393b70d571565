// Package validator adapts go-playground/validator to echo and to the domain error format.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(fld.Tag.Get("query"), ",")
		}
		if name == "" {
			name, _, _ = strings.Cut(fld.Tag.Get("param"), ",")
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks struct tags and returns a *domainerrors.ValidationError listing every failed field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	verr := domainerrors.NewValidationError("")
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), message(fe))
	}

	return verr
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}

		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid":
		return "must be a valid id"
	case "datetime":
		return "must be a date in " + fe.Param() + " format"
	case "latitude", "longitude":
		return "must be a valid " + fe.Tag()
	default:
		return "is invalid"
	}
}
