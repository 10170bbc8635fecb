package envconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFallback(t *testing.T) {
	assert.Equal(t, "fallback", String("ENVCONFIG_TEST_UNSET", "fallback"))

	t.Setenv("ENVCONFIG_TEST_STR", "value")
	assert.Equal(t, "value", String("ENVCONFIG_TEST_STR", "fallback"))
}

func TestIntFallback(t *testing.T) {
	assert.Equal(t, 8000, Int("ENVCONFIG_TEST_UNSET", 8000))

	t.Setenv("ENVCONFIG_TEST_INT", "9001")
	assert.Equal(t, 9001, Int("ENVCONFIG_TEST_INT", 8000))

	t.Setenv("ENVCONFIG_TEST_INT", "not-a-number")
	assert.Equal(t, 8000, Int("ENVCONFIG_TEST_INT", 8000))
}

func TestBoolFallback(t *testing.T) {
	assert.False(t, Bool("ENVCONFIG_TEST_UNSET", false))

	t.Setenv("ENVCONFIG_TEST_BOOL", "true")
	assert.True(t, Bool("ENVCONFIG_TEST_BOOL", false))

	t.Setenv("ENVCONFIG_TEST_BOOL", "nope")
	assert.False(t, Bool("ENVCONFIG_TEST_BOOL", false))
}
