package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the struct's validate tags and returns the failed
// fields keyed by name, with the violated tag as value. Nil means the
// value passed.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
