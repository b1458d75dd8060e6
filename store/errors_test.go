package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrKeyNotFound_Message(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "key not found", ErrKeyNotFound.Error(), "ErrKeyNotFound message should match")
}

func TestError_WrapsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	err := wrap("get", cause)

	var storeErr *Error
	assert.True(t, errors.As(err, &storeErr), "wrapped errors must be *Error")
	assert.Equal(t, "get", storeErr.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store get: connection refused", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, wrap("set", nil))
}
