package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("k") {
			t.Errorf("request %d within burst should be allowed", i)
		}
	}
	if limiter.Allow("k") {
		t.Error("request beyond burst should be denied")
	}
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("a") {
		t.Error("first request on key a should be allowed")
	}
	if !limiter.Allow("b") {
		t.Error("first request on key b should be allowed")
	}
	if limiter.Allow("a") {
		t.Error("second request on key a should be denied")
	}
}

func TestLimiter_ZeroRateNeverBlocks(t *testing.T) {
	limiter := NewLimiter(0, 0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 100; i++ {
		if err := limiter.Wait(ctx, "k"); err != nil {
			t.Fatalf("Wait failed at request %d: %v", i, err)
		}
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1)

	if err := limiter.Wait(context.Background(), "k"); err != nil {
		t.Fatalf("first Wait failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "k"); err == nil {
		t.Error("expected Wait to fail when the context expires first")
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("k") {
		t.Error("first request should be allowed")
	}
	if limiter.Allow("k") {
		t.Error("second request should be denied at burst 1")
	}

	limiter.SetRate("k", 1000, 10)
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("k") {
		t.Error("request after raising the rate should be allowed")
	}
}
