package validator

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetails_FieldTags(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Phone string `validate:"required"`
	}

	err := govalidator.New().Struct(form{Email: "not-an-email"})
	require.Error(t, err)

	details := Details(err)
	assert.Equal(t, "email", details["Email"])
	assert.Equal(t, "required", details["Phone"])
}

func TestDetails_NonValidationError(t *testing.T) {
	details := Details(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"body": "malformed"}, details)
}
