package validator

import (
	"reflect"
	"strings"

	"hospital-backend/pkg/clock"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterValidation("datetime_ymdhms", func(fl validator.FieldLevel) bool {
		_, err := clock.ParseDateTime(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("date_ymd", func(fl validator.FieldLevel) bool {
		_, err := clock.ParseDate(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := clock.ParseClock(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "datetime_ymdhms":
				errors[field] = field + " must use format YYYY-MM-DD HH:MM:SS"
			case "date_ymd":
				errors[field] = field + " must use format YYYY-MM-DD"
			case "clock":
				errors[field] = field + " must use format HH:MM or HH:MM:SS"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
