package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensions(t *testing.T) {
	t.Run("validation carries code and field", func(t *testing.T) {
		err := Validation("authorId", "invalid author id %q", "xyz")

		ext := err.Extensions()
		assert.Equal(t, CodeValidation, ext["code"])
		assert.Equal(t, "authorId", ext["field"])
		assert.Equal(t, `invalid author id "xyz"`, err.Message)
	})

	t.Run("not found carries code only", func(t *testing.T) {
		err := NotFound("book")

		ext := err.Extensions()
		assert.Equal(t, CodeNotFound, ext["code"])
		assert.NotContains(t, ext, "field")
		assert.Equal(t, "book not found", err.Message)
	})
}

func TestUnavailableWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable("relational", cause)

	assert.Equal(t, CodeUnavailable, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("author")))
	assert.False(t, IsNotFound(Validation("id", "bad")))
	assert.True(t, IsValidation(Validation("id", "bad")))
	assert.False(t, IsValidation(errors.New("plain")))
}

func TestFromValidation(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, FromValidation(nil))
	})

	t.Run("existing app error passes through", func(t *testing.T) {
		original := NotFound("review")
		err := FromValidation(original)

		var appErr *Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, CodeNotFound, appErr.Code)
	})

	t.Run("other errors become validation errors", func(t *testing.T) {
		err := FromValidation(errors.New("name: cannot be blank"))
		assert.True(t, IsValidation(err))
	})
}
