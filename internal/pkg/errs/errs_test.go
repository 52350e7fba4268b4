//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")
	cause := errs.New("connection reset")

	marked := errs.Mark(errs.Wrap(cause, "save booking"), sentinel)

	assert.True(t, errors.Is(marked, sentinel))
	assert.True(t, errs.Is(marked, sentinel))
	assert.Contains(t, marked.Error(), "connection reset")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "nothing"))
	assert.NoError(t, errs.Wrapf(nil, "nothing %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
