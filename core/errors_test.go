package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	cause := errors.New("boom")
	err := WrapError(cause, ELAYOUT, "failed table layout")
	assert.Equal(t, ELAYOUT, Code(err))
	assert.Equal(t, "failed table layout", UserMessage(err))
	assert.True(t, errors.Is(err, cause), "expected cause to be in error chain")
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(cause))
}

func TestErrorFromPanic(t *testing.T) {
	assert.Nil(t, ErrorFromPanic(nil))
	e := errors.New("x")
	assert.Equal(t, e, ErrorFromPanic(e))
	assert.EqualError(t, ErrorFromPanic("index out of range"), "index out of range")
}

func TestErrorWithNilCause(t *testing.T) {
	err := ErrorWithCode(nil, EIMAGE)
	assert.Equal(t, EIMAGE, Code(err))
	assert.Equal(t, "image error", UserMessage(err))
}
