package packedspatial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	t.Run("WithoutCause", func(t *testing.T) {
		err := NewError(BadNodeSize, "node size must be at least 2")
		assert.Equal(t, "packedspatial: BadNodeSize: node size must be at least 2", err.Error())
	})

	t.Run("WithCause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := WrapError(BadBuffer, "invalid header", cause)
		assert.Equal(t, "packedspatial: BadBuffer: invalid header: underlying", err.Error())
		assert.Equal(t, cause, errors.Unwrap(err))
	})
}

func TestError_Is(t *testing.T) {
	err := NewError(TooManyItems, "specific detail")

	assert.True(t, errors.Is(err, NewError(TooManyItems, "")))
	assert.False(t, errors.Is(err, NewError(NotEnoughItems, "")))
	assert.False(t, errors.Is(err, errors.New("unrelated")))
}

func TestKind_String(t *testing.T) {
	testCases := []struct {
		kind     Kind
		expected string
	}{
		{BadNodeSize, "BadNodeSize"},
		{TooManyItems, "TooManyItems"},
		{NotEnoughItems, "NotEnoughItems"},
		{BadBuffer, "BadBuffer"},
		{InvalidCoordinate, "InvalidCoordinate"},
		{LevelOutOfRange, "LevelOutOfRange"},
		{TypeMismatch, "TypeMismatch"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.kind.String())
		})
	}
}
