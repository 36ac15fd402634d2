package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestFind(t *testing.T) {
	base := &codeError{code: 406}
	wrapped := Wrap(Wrapf(base, "get business %d", 7), "load page")

	got, ok := Find[*codeError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = Find[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsChain(t *testing.T) {
	base := New("root")
	wrapped := Wrap(WithStack(base), "outer")

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "outer: root", wrapped.Error())
	assert.Equal(t, "role 7: bad", Errorf("role %d: %s", 7, "bad").Error())
}
