package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfigValid, "colors list is empty")

	assert.Equal(t, ErrConfigValid, err.Code)
	assert.Equal(t, "[CONFIG_INVALID] colors list is empty", err.Error())
	assert.Nil(t, err.Wrapped)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrColorUnknown, "failed to parse color name '%s'", "xxx")

	assert.Equal(t, ErrColorUnknown, err.Code)
	assert.Contains(t, err.Error(), "failed to parse color name 'xxx'")
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("open failed")
	err := Wrap(inner, ErrConfigLoad, "failed to read config")

	assert.Equal(t, ErrConfigLoad, err.Code)
	assert.Contains(t, err.Error(), "open failed")
	assert.Equal(t, inner, errors.Unwrap(err))

	// Wrapping nil stays nil
	assert.Nil(t, Wrap(nil, ErrConfigLoad, "nope"))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrRegexInvalid, "bad pattern %q", "(")
	wrapped := fmt.Errorf("compile: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrRegexInvalid))
	assert.False(t, IsErrorCode(wrapped, ErrColorUnknown))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrRegexInvalid))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrConfigParse, GetErrorCode(New(ErrConfigParse, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrConfigValid, "bad rule").
		WithDetail("format", "httpd").
		WithDetail("line", 2)

	details := GetErrorDetails(err)
	assert.Equal(t, "httpd", details["format"])
	assert.Equal(t, 2, details["line"])

	assert.Nil(t, GetErrorDetails(errors.New("plain")))
}
