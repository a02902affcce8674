package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dunestore/internal/retry"
)

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	out, err := retry.Do(context.Background(), 3, retry.Linear(time.Millisecond), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if out != "ok" || calls != 3 {
		t.Fatalf("want ok after 3 calls, got %q after %d", out, calls)
	}
}

func TestDoReturnsLastError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := retry.Do(context.Background(), 3, retry.Linear(time.Millisecond), func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want last error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("want exactly 3 attempts, got %d", calls)
	}
}

func TestDoStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})
	go func() {
		_, err := retry.Do(ctx, 5, retry.Linear(time.Hour), func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("always")
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("want context.Canceled, got %v", err)
		}
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retry did not observe cancellation")
	}
	if calls != 1 {
		t.Fatalf("want a single attempt before cancel, got %d", calls)
	}
}

func TestLinearSchedule(t *testing.T) {
	b := retry.Linear(100 * time.Millisecond)
	if b(1) != 100*time.Millisecond || b(3) != 300*time.Millisecond {
		t.Fatalf("linear schedule wrong: %v %v", b(1), b(3))
	}
}
