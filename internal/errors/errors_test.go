package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndCodeOf(t *testing.T) {
	err := New(CodeMalformedContent, "bad content")
	assert.Equal(t, "bad content", err.Error())
	assert.Equal(t, CodeMalformedContent, CodeOf(err))
	assert.True(t, IsCode(err, CodeMalformedContent))
	assert.False(t, IsCode(err, CodeUnreadableInput))
}

func TestWrapPreservesCode(t *testing.T) {
	inner := New(CodeUnreadableInput, "cannot open")
	wrapped := Wrap(inner, "reading upload")

	require.Error(t, wrapped)
	assert.Equal(t, CodeUnreadableInput, CodeOf(wrapped))
	assert.Equal(t, "reading upload: cannot open", wrapped.Error())
	assert.ErrorIs(t, wrapped, inner)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))
	assert.NoError(t, WithCode(CodeInternal, nil, "context"))
}

func TestWithCodeOverrides(t *testing.T) {
	inner := stderrors.New("zip: not a valid zip file")
	err := WithCode(CodeMalformedContent, inner, "invalid document content")

	assert.Equal(t, CodeMalformedContent, CodeOf(err))
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "not a valid zip file")
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(stderrors.New("boom")))
	assert.False(t, IsCode(stderrors.New("boom"), CodeMalformedContent))
}
