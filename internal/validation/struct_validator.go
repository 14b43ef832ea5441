package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	structValidator *validator.Validate
	structOnce      sync.Once
)

func getStructValidator() *validator.Validate {
	structOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return structValidator
}

// Struct validates a struct using its `validate` tags.
func Struct(s interface{}) error {
	return getStructValidator().Struct(s)
}

// FieldErrors formats validation errors into a field → message map.
// Struct names are not leaked; field names are lower-cased.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt", "gte":
			errs[field] = fmt.Sprintf("Must be %s %s", comparisonWord(e.Tag()), e.Param())
		case "unique":
			errs[field] = "Must not contain duplicates"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Summary joins FieldErrors into one deterministic line for wrapping into errors.
func Summary(err error) string {
	fields := FieldErrors(err)
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func comparisonWord(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}
