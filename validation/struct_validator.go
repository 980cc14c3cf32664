package validation

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/cognito-gateway/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
	})
	return validate
}

// fieldName reports a field by its json name, then its mapstructure name,
// then its Go name.
func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "mapstructure"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// Validate validates a struct using `validate` tags and returns the first
// failure as a 400 *errors.AppError. Fields are checked in declaration order.
func Validate(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Internal(err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return errors.MissingParameter(fe.Field())
	default:
		return errors.BadRequest("Invalid parameter: "+fe.Field()).
			WithDetail("field", fe.Field()).
			WithDetail("rule", fe.Tag())
	}
}
