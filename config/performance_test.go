package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlowRequestThresholdDefault(t *testing.T) {
	t.Setenv("SLOW_REQUEST_MS", "")

	assert.Equal(t, 200*time.Millisecond, slowRequestThreshold())
}

func TestSlowRequestThresholdFromEnv(t *testing.T) {
	t.Setenv("SLOW_REQUEST_MS", "500")

	assert.Equal(t, 500*time.Millisecond, slowRequestThreshold())
}

func TestSlowRequestThresholdIgnoresInvalidValues(t *testing.T) {
	for _, value := range []string{"abc", "-10", "0"} {
		t.Setenv("SLOW_REQUEST_MS", value)

		assert.Equal(t, 200*time.Millisecond, slowRequestThreshold(), "value %q", value)
	}
}
