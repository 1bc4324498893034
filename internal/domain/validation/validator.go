// Package validation applies per-field constraints to entity inputs before
// anything reaches the store. Every failing field is collected, in
// declaration order, and reported with its wire path.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/errors"

	"github.com/go-playground/validator/v10"
)

// embedded marks anonymous struct fields so they vanish from field paths.
const embedded = "~"

// Validator is safe for concurrent use; build one per process.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator using json names for field paths.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(idValue, entity.ID{})

	return &Validator{validate: v}
}

// Struct validates s. It returns nil, a *domainerrors.ValidationError, or a
// wrapped error when s is not something that can be validated at all.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:  fieldPath(fe.Namespace()),
			Reason: reason(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func jsonFieldName(field reflect.StructField) string {
	if field.Anonymous {
		return embedded
	}

	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func idValue(field reflect.Value) any {
	id, ok := field.Interface().(entity.ID)
	if !ok || id.IsZero() {
		return ""
	}

	return id.Hex()
}

// fieldPath turns "UserInput.conversations[0].~.text" into "conversations[0].text".
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}

	kept := segments[:0]
	for _, s := range segments {
		if s == embedded {
			continue
		}
		kept = append(kept, s)
	}

	return strings.Join(kept, ".")
}

func reason(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}

		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed on %q", fe.Tag())
	}
}
