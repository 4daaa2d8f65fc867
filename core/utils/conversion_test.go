package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(16384), ToInt64("16384"))
	assert.Equal(t, int64(42), ToInt64(" 42 "))
	assert.Equal(t, int64(0), ToInt64("0x4000"))
	assert.Equal(t, int64(0), ToInt64(""))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("yes"))
	assert.True(t, ToBool("YES"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool("true"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(""))
}

func TestOptionalBool(t *testing.T) {
	assert.Nil(t, OptionalBool(""))
	assert.Equal(t, true, *OptionalBool("yes"))
	assert.Equal(t, false, *OptionalBool("no"))

	assert.Equal(t, "", FormatOptionalBool(nil))
	assert.Equal(t, "true", FormatOptionalBool(OptionalBool("yes")))
	assert.Equal(t, "false", FormatOptionalBool(OptionalBool("no")))
}
