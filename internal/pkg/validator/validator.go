package validator

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Validate checks the struct's validate tags and returns a field->rule
// map of everything that failed, or nil when the value is valid.
func Validate(s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
