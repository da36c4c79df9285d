// Package validation owns the shared go-playground validator instance and the
// custom rules registered on it.
package validation

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/bookmeza/internal/i18n"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with the bookmeza rules registered:
//
//	locale     a language identifier i18n can normalize
//	icon_name  a member of the closed icon set (empty allowed)
//	href       an http(s) URL, an absolute path, a fragment or a mailto link
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(fieldName)

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || i18n.Normalize(value) != ""
		})

		_ = v.RegisterValidation("icon_name", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || registry.IconName(value).Known()
		})

		_ = v.RegisterValidation("href", func(fl validator.FieldLevel) bool {
			return validHref(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates v and converts the first failure into a ValidationError.
func Struct(v any) error {
	return Convert(Validator().Struct(v))
}

// Convert normalizes validator errors into bookmeza validation errors.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := fieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s' (got %v)", field, ve.Tag(), ve.Param(), ve.Value())
		}
		return bookmezaerrors.NewValidationError(field, msg, err)
	}

	return bookmezaerrors.NewValidationError("", err.Error(), err)
}

// fieldName reports fields by the name users write them under: the
// mapstructure key, then the yaml key, then the Go name.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"mapstructure", "yaml"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			break
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// validHref accepts any navigation target that parses as a URL reference,
// relative or with any scheme. Whitespace and schemes without a body fail.
func validHref(value string) bool {
	if value == "" {
		return true
	}
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if u.Scheme != "" && u.Opaque == "" && u.Host == "" && u.Path == "" {
		return false
	}
	return true
}
