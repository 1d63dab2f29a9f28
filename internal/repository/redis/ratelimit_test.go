package redis

import (
	"testing"
	"time"
)

func TestWindowKey(t *testing.T) {
	repo := &RateLimitRepository{limit: 30, window: 60 * time.Second}

	base := time.Unix(1_700_000_040, 0)

	sameWindow := repo.windowKey("metatags", base)
	if got := repo.windowKey("metatags", base.Add(10*time.Second)); got != sameWindow {
		t.Errorf("keys within one window differ: %q vs %q", sameWindow, got)
	}

	if got := repo.windowKey("metatags", base.Add(60*time.Second)); got == sameWindow {
		t.Errorf("keys across windows must differ, both were %q", got)
	}

	if got := repo.windowKey("other", base); got == sameWindow {
		t.Errorf("keys across buckets must differ, both were %q", got)
	}
}
