// Package validation checks request shapes with go-playground/validator before
// a use case acts on them. Domain invariants (cpf, name, contact, geo) stay in
// the entities so that their typed errors reach the caller.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/service"
	"clientaccount/internal/errors"
	"clientaccount/internal/usecase"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// StructValidator wraps a validator.Validate configured with the project's
// custom tags and JSON field naming.
type StructValidator struct {
	validate *validator.Validate
}

// New builds a StructValidator with the "username" and "past" tags registered.
func New() (*StructValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	validate.RegisterCustomTypeFunc(dateValue, usecase.Date{})

	if err := validate.RegisterValidation("username", isUsername); err != nil {
		return nil, errors.Wrap(err, "register username validation")
	}
	if err := validate.RegisterValidation("past", isPast); err != nil {
		return nil, errors.Wrap(err, "register past validation")
	}

	return &StructValidator{validate: validate}, nil
}

// Struct validates s and reports every failing field in one ErrValidationFailed.
func (v *StructValidator) Struct(ctx context.Context, s any) error {
	err := v.validate.StructCtx(ctx, s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate struct")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

type clientAccountValidator struct {
	structs *StructValidator
}

// NewClientAccountValidator adapts a StructValidator to the account creation input.
func NewClientAccountValidator(structs *StructValidator) service.Validator[*usecase.CreateClientAccountInput] {
	return &clientAccountValidator{structs: structs}
}

func (v *clientAccountValidator) Validate(ctx context.Context, input *usecase.CreateClientAccountInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	return v.structs.Struct(ctx, input)
}

func isUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// dateValue lets the time-based tags ("required", "past") see the wrapped time.
func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(usecase.Date); ok {
		return d.Time
	}

	return nil
}

func isPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}

	return t.Before(time.Now())
}

// describe renders a field error as "client.cpf: max=14".
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, found := strings.Cut(field, "."); found {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "email":
		return field + ": must be a valid email address"
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", field, lowerFirst(fe.Param()))
	case "username":
		return field + ": may only contain letters, digits, '.', '_' and '-'"
	case "past":
		return field + ": must be in the past"
	case "min", "max":
		return fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
