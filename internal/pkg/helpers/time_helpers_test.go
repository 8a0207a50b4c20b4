package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90m", time.Hour); got != 90*time.Minute {
		t.Errorf("ParseDuration(90m) = %v, want 90m", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(invalid) = %v, want fallback 1h", got)
	}
	if got := ParseDuration("", 24*time.Hour); got != 24*time.Hour {
		t.Errorf("ParseDuration(empty) = %v, want fallback 24h", got)
	}
}
