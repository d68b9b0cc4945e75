package validate

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts an optional leading + followed by digits, spaces,
// parentheses and hyphens, at least 7 characters in total.
var phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,}$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator configured for this application:
// error paths use json tag names and the custom "phone" rule is registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		instance = v
	})
	return instance
}

// Struct validates input and reports failures as FieldErrors. Paths are
// relative to the input struct ("line1", "billingAddress.postalCode").
// overrides maps a leaf field name to the message used for that field in
// place of the generic per-rule message; nil is valid and returned for
// passing input.
func Struct(input any, overrides map[string]string) FieldErrors {
	err := Validator().Struct(input)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError only happens on non-struct input, which is
		// a programming error; surface it loudly on a reserved path.
		return FieldErrors{"": err.Error()}
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		path := relativePath(fe.Namespace())
		if msg, ok := overrides[fe.Field()]; ok {
			fieldErrs.Add(path, msg)
			continue
		}
		fieldErrs.Add(path, message(fe))
	}
	return fieldErrs
}

// relativePath strips the root struct name from a validator namespace,
// leaving the json field path (slice indexes are kept: "items[0].price").
func relativePath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return namespace
}

// message returns a human-readable message for a failed rule.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "phone":
		return "Invalid phone number"
	case "min":
		if fe.Kind() == reflect.String {
			return "Invalid"
		}
		return "Min " + fe.Param()
	case "max":
		return "Max " + fe.Param()
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}
