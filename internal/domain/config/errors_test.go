package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *UserError
		expected string
	}{
		{
			name:     "simple message",
			err:      &UserError{Code: ErrCodeDeckNotFound, Message: "deck file not found"},
			expected: "deck file not found",
		},
		{
			name:     "message with context",
			err:      &UserError{Code: ErrCodeDeckInvalid, Message: "duplicate slide id 4", Context: "slides[5]"},
			expected: "duplicate slide id 4 (at slides[5])",
		},
		{
			name: "suggestion is not part of Error",
			err: &UserError{
				Code:       ErrCodeDeckParse,
				Message:    "failed to parse deck file",
				Context:    "deck.yaml",
				Suggestion: "fix the indentation",
			},
			expected: "failed to parse deck file (at deck.yaml)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUserError_Format(t *testing.T) {
	t.Parallel()

	err := NewDeckNotFoundError("talk.yaml", nil)
	formatted := err.Format()

	assert.Contains(t, formatted, "[DECK_NOT_FOUND]")
	assert.Contains(t, formatted, "deck file not found: talk.yaml")
	assert.Contains(t, formatted, "Location: talk.yaml")
	assert.Contains(t, formatted, "Suggestion: Check the --deck path")
}

func TestUserError_UnwrapAndIs(t *testing.T) {
	t.Parallel()

	underlying := errors.New("yaml: line 3: did not find expected key")
	err := NewDeckParseError("deck.yaml", underlying)
	wrapped := fmt.Errorf("load: %w", err)

	assert.ErrorIs(t, wrapped, underlying)
	assert.ErrorIs(t, wrapped, &UserError{Code: ErrCodeDeckParse})
	assert.NotErrorIs(t, wrapped, &UserError{Code: ErrCodeDeckInvalid})

	var userErr *UserError
	require.ErrorAs(t, wrapped, &userErr)
	assert.Equal(t, "deck.yaml", userErr.Context)
}

func TestUserError_BuildersCopy(t *testing.T) {
	t.Parallel()

	base := NewUserError(ErrCodeDeckInvalid, "deck has no slides")
	withCtx := base.WithContext("deck.yaml").WithSuggestion("add a slide").WithUnderlying(errors.New("x"))

	assert.Empty(t, base.Context)
	assert.Empty(t, base.Suggestion)
	assert.NoError(t, base.Underlying)
	assert.Equal(t, "deck.yaml", withCtx.Context)
	assert.Equal(t, "add a slide", withCtx.Suggestion)
	assert.Error(t, withCtx.Underlying)
}

func TestErrorList(t *testing.T) {
	t.Parallel()

	list := NewErrorList()
	assert.False(t, list.HasErrors())
	assert.NoError(t, list.AsError())
	assert.Empty(t, list.Error())

	list.Add(nil)
	list.AddValidation("fps", "0 is out of range", "use 60")
	assert.Equal(t, 1, list.Len())
	assert.Equal(t, "fps: 0 is out of range (at fps)", list.Error())

	list.Add(NewDeckInvalidError("slides[0]", "slide id must be positive"))
	assert.Equal(t, 2, list.Len())
	assert.Contains(t, list.Error(), "2 errors occurred")
	assert.Len(t, list.Errors(), 2)
	require.Error(t, list.AsError())
}
