package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Details flattens a binding failure into field->failed-tag pairs for the
// error envelope. Non-validation errors (malformed JSON, type mismatches)
// collapse to a single "body" entry.
func Details(err error) map[string]string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return map[string]string{"body": "malformed"}
	}

	details := make(map[string]string, len(verr))
	for _, fe := range verr {
		details[fe.Field()] = fe.Tag()
	}
	return details
}
