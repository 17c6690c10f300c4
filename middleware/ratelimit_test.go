package middleware

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestIPRateLimiter(t *testing.T) {
	t.Run("Allows up to burst then rejects", func(t *testing.T) {
		rl := NewIPRateLimiter(rate.Every(time.Hour), 3)

		for i := 0; i < 3; i++ {
			if !rl.Allow("10.0.0.1") {
				t.Fatalf("request %d should be allowed within burst", i+1)
			}
		}
		if rl.Allow("10.0.0.1") {
			t.Error("request beyond burst should be rejected")
		}
	})

	t.Run("Limits are per IP", func(t *testing.T) {
		rl := NewIPRateLimiter(rate.Every(time.Hour), 1)

		if !rl.Allow("10.0.0.1") {
			t.Fatal("first request from first IP should be allowed")
		}
		if !rl.Allow("10.0.0.2") {
			t.Error("first request from a different IP should be allowed")
		}
		if rl.Allow("10.0.0.1") {
			t.Error("second request from first IP should be rejected")
		}
	})
}
