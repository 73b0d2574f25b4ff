package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "textfile.read",
		Kind: KindUnreadable,
		Path: "/tmp/.env",
		Err:  root,
	}

	require.ErrorIs(t, err, root)

	var got *OpError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, KindUnreadable, got.Kind)
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{
		Op:   "textfile.open",
		Kind: KindNotFound,
		Path: ".env",
		Err:  ErrNotFound,
	}

	assert.Equal(t, "textfile.open: resource_not_found (path=.env): not found", err.Error())
	assert.Equal(t, "cfg: invalid_config", (&OpError{Op: "cfg", Kind: KindInvalidConfig}).Error())

	var nilErr *OpError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := &OpError{Op: "textfile.decode", Kind: KindDecoding, Err: ErrDecoding}
	wrapped := fmt.Errorf("print lines: %w", inner)

	assert.True(t, IsKind(wrapped, KindDecoding))
	assert.False(t, IsKind(wrapped, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindDecoding))
	assert.Equal(t, KindDecoding, KindOf(wrapped))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("plain")))
}
