package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the struct's `validate` tags and collapses all
// violations into a single error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errMsgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field: %s, tag: %s, param: %s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param(),
		))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
