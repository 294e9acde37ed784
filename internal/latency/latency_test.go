package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixedWaits(t *testing.T) {
	start := time.Now()
	if err := Fixed(20 * time.Millisecond).Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("returned after %v", elapsed)
	}
}

func TestFixedHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Fixed(time.Hour).Wait(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNone(t *testing.T) {
	if err := None.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
