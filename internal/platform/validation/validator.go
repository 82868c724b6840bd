// Package validation adapts go-playground/validator to echo. Violations
// are reported as an Errors map keyed by the JSON field name, with the
// Portuguese message taken from the field's `mensagem` tag when present.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clientehm/api/internal/platform/apperr"
)

// Errors maps a JSON field name to its violation message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator implements echo.Validator.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	v.RegisterValidation("notblank", notBlank)
	v.RegisterValidation("emailorblank", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		return s == "" || v.Var(s, "email") == nil
	})
	return &Validator{v: v}
}

// Validate returns Errors when i violates its tags, nil otherwise.
func (cv *Validator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make(Errors, len(verrs))
	root := reflect.TypeOf(i)
	for root.Kind() == reflect.Pointer {
		root = root.Elem()
	}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(root, fe)
	}
	return out
}

// Bind decodes the request body into dst and validates it. Decoding
// failures become an invalid-argument error.
func Bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, "Corpo da requisição inválido", err)
	}
	return c.Validate(dst)
}

// PathID parses the named path parameter as a UUID.
func PathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindInvalidArgument, "Identificador inválido", err)
	}
	return id, nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

func messageFor(root reflect.Type, fe validator.FieldError) string {
	if root.Kind() == reflect.Struct {
		if sf, ok := root.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get("mensagem"); msg != "" {
				return msg
			}
		}
	}

	switch fe.Tag() {
	case "required", "notblank":
		return "Campo obrigatório"
	case "email", "emailorblank":
		return "E-mail inválido"
	case "min":
		return fmt.Sprintf("Deve ter no mínimo %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("Não pode exceder %s caracteres", fe.Param())
	case "oneof":
		return fmt.Sprintf("Deve ser um dos valores: %s", fe.Param())
	case "uuid", "uuid4":
		return "Identificador inválido"
	default:
		return "Valor inválido"
	}
}
