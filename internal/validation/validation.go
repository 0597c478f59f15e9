// Package validation runs the schema rules declared as struct tags on domain entities and
// reports failures as one message per json field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

var phonePattern = regexp.MustCompile(`^[0-9\s+-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal is validated as a float so the numeric tags (gte, lte) apply.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates v. It returns nil, a *errorutil.SchemaViolation, or an error describing
// why v could not be validated at all.
func Struct(v any) error {
	return convert(validate.Struct(v), "")
}

// Var validates a single value under the given field name.
func Var(field string, value any, tag string) error {
	return convert(validate.Var(value, tag), field)
}

func convert(err error, field string) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violation := &errorutil.SchemaViolation{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		key, name := field, field
		if key == "" {
			key = fieldKey(fe.Namespace())
			name = fe.Field()
		}
		if _, exists := violation.Fields[key]; exists {
			continue
		}
		violation.Fields[key] = message(name, fe)
	}
	return violation
}

// fieldKey drops the leading struct name: "Order.orderItems[0].quantity" -> "orderItems[0].quantity".
func fieldKey(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "phone":
		return fmt.Sprintf("%s must be a valid phone number", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s is too short (minimum %s characters)", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long (maximum %s characters)", field, fe.Param())
	case "excludes":
		return fmt.Sprintf("%s must not contain %q", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
