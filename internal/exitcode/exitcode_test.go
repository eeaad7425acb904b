package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOf_NilError(t *testing.T) {
	assert.Equal(t, OK, Of(nil))
}

func TestOf_TypedError(t *testing.T) {
	err := Wrap(Git, errors.New("git checkout failed"))
	assert.Equal(t, Git, Of(err))
}

func TestOf_TypedErrorThroughWrapping(t *testing.T) {
	inner := Wrap(Filesystem, errors.New("write failed"))
	outer := fmt.Errorf("applying scaffold: %w", inner)
	assert.Equal(t, Filesystem, Of(outer))
}

func TestOf_StringFallback(t *testing.T) {
	assert.Equal(t, Git, Of(errors.New("fatal: not a git repository")))
	assert.Equal(t, Validation, Of(errors.New("config validation failed")))
	assert.Equal(t, Filesystem, Of(errors.New("open /x: permission denied")))
	assert.Equal(t, Generic, Of(errors.New("something else")))
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(Git, nil))
}
