package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Postgres text columns refuse NUL bytes.
		if err := v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
			return !strings.ContainsRune(fl.Field().String(), 0)
		}); err != nil {
			panic(err)
		}
	})
	return v
}

// StructFields validates s and returns one reason per failing field keyed by
// its json name. A nil map means s is valid.
func StructFields(s any) (map[string]string, error) {
	err := instance().Struct(s)
	if err == nil {
		return nil, nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil, err
	}

	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = reason(fe)
	}
	return fields, nil
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field may not be blank"
	case "nonul":
		return "null characters are not allowed"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
