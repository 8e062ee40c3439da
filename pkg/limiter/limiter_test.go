package limiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinBurst(t *testing.T) {
	l := newIPLimiter(1, 3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("10.0.0.1"), "request %d should pass", i)
	}
	assert.False(t, l.allow("10.0.0.1"))
}

func TestClientsIndependent(t *testing.T) {
	l := newIPLimiter(1, 1, time.Minute)

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
}
