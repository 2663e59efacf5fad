package util

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags and reports failures as a FormError keyed by json name.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return NewFormError("invalid input", nil)
	}
	details := make(map[string]string, len(ve))
	for _, fe := range ve {
		details[fe.Field()] = fe.Tag()
	}
	return NewFormError("validation failed", details)
}

// ParseBody decodes the request body into v and validates it.
func ParseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return NewFormError("invalid request body", map[string]string{"body": err.Error()})
	}
	return Validate(v)
}
