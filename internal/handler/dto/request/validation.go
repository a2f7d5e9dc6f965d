package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationDetail flattens binding failures into a field-to-message map so
// every violated constraint surfaces at once next to its input.
func ValidationDetail(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	detail := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		detail[fieldName(fe)] = fieldMessage(fe)
	}
	return detail
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fieldName(fe) {
	case "tour":
		return "Please select a tour."
	case "date":
		return "Please select a date."
	case "adults":
		return "At least 1 adult is required."
	case "name":
		return "Name must be at least 2 characters."
	case "email":
		return "Invalid email address."
	case "phone":
		return "Please enter a valid phone number (including country code)."
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fieldName(fe))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fieldName(fe), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fieldName(fe))
	}
}
