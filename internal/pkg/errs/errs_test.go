//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"loft-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errQueryFailed = errors.New("query failed")

func TestMark(t *testing.T) {
	cause := errors.New("connection reset")
	marked := errs.Mark(errs.Wrap(cause, "find loft"), errQueryFailed)

	assert.ErrorIs(t, marked, errQueryFailed)
	assert.ErrorIs(t, marked, cause)
	assert.Contains(t, marked.Error(), "find loft")

	assert.Equal(t, errs.ErrLoftNotFound, errs.Mark(nil, errs.ErrLoftNotFound))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "x"))
	assert.NoError(t, errs.WithDetail(nil, "x"))
}

func TestWithDetail(t *testing.T) {
	err := errs.WithDetail(errs.New("bad range"), "check-out must follow check-in")
	assert.Equal(t, []string{"check-out must follow check-in"}, errs.Details(err))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestMark_Nested(t *testing.T) {
	inner := errs.Mark(errors.New("serialization failure"), errQueryFailed)
	outer := errs.Mark(inner, errs.ErrLoftNotFound)

	assert.ErrorIs(t, outer, errs.ErrLoftNotFound)
	assert.ErrorIs(t, outer, errQueryFailed)
	assert.NotErrorIs(t, outer, errs.ErrForbidden)
	assert.Equal(t, "serialization failure", outer.Error())
}
