package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type noteBody struct {
	Title string `validate:"required,max=200"`
	Text  string `validate:"required"`
}

type uploadBody struct {
	Name string `validate:"required,excludes=/"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(noteBody{Title: "groceries", Text: "milk"}))
		assert.NoError(t, ValidateStruct(uploadBody{Name: "cat.jpg"}))
	})

	t.Run("missing fields name every failure", func(t *testing.T) {
		err := ValidateStruct(noteBody{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "title is required")
		assert.Contains(t, err.Error(), "text is required")
	})

	t.Run("overlong title", func(t *testing.T) {
		err := ValidateStruct(noteBody{Title: strings.Repeat("x", 201), Text: "body"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at most 200")
	})

	t.Run("excluded character", func(t *testing.T) {
		err := ValidateStruct(uploadBody{Name: "dir/cat.jpg"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not contain")
	})
}
