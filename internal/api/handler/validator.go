package handler

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldErrors maps a form field name to the message shown under it.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// messageProvider is implemented by forms that supply their own text per
// "<field>.<tag>" failure.
type messageProvider interface {
	messages() map[string]string
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(form).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("strongpassword", strongPassword)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Validation failures come
// back as FieldErrors holding the first failure of each field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	var msgs map[string]string
	if mp, ok := i.(messageProvider); ok {
		msgs = mp.messages()
	}

	out := make(FieldErrors, len(ve))
	for _, fe := range ve {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		if m, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
			out[fe.Field()] = m
			continue
		}
		out[fe.Field()] = fieldError(fe)
	}
	return out
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return field + " is required."
	case "email":
		return field + " must be a valid email."
	case "max":
		return fmt.Sprintf("Max %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s).", field, fe.Tag())
	}
}

// strongPassword requires at least one ASCII uppercase letter and one ASCII
// digit. Other scripts' capitals and digits do not count.
func strongPassword(fl validator.FieldLevel) bool {
	var upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && digit
}
