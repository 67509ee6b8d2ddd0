// Package validation checks create/update payloads before they reach a store.
// Every rule is evaluated; callers get the full list of violations at once.
package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/contacts-backend/internal/pkg/apperr"
)

type Violations []apperr.Violation

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Fields() []string {
	out := make([]string, 0, len(v))
	for _, vi := range v {
		out = append(out, vi.Field)
	}
	return out
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		}); err != nil {
			panic(err)
		}
		validate = v
	})
	return validate
}

// check runs struct-tag validation on s and turns failures into violations,
// using messages[field] when present.
func check(s any, messages map[string]string) Violations {
	err := engine().Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{{Field: "", Message: err.Error()}}
	}
	out := make(Violations, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperr.Violation{
			Field:   fe.Field(),
			Message: messageFor(fe, messages),
		})
	}
	return out
}

func messageFor(fe validator.FieldError, messages map[string]string) string {
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	default:
		return fe.Field() + " is invalid"
	}
}
