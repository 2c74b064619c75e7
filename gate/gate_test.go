package gate

import (
	"errors"
	"testing"
)

func TestGateDo(t *testing.T) {
	g := New()

	ran := false
	if err := g.Do(func() error { ran = true; return nil }); err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if !ran {
		t.Fatal("fn did not run")
	}

	// fn errors pass through untouched.
	sentinel := errors.New("boom")
	if err := g.Do(func() error { return sentinel }); !errors.Is(err, sentinel) {
		t.Fatalf("Do = %v, want sentinel", err)
	}
}

func TestGateContention(t *testing.T) {
	g := New()

	if !g.TryLock() {
		t.Fatal("TryLock on fresh gate failed")
	}

	ran := false
	err := g.Do(func() error { ran = true; return nil })
	if !errors.Is(err, ErrContended) {
		t.Fatalf("Do under contention = %v, want ErrContended", err)
	}
	if ran {
		t.Fatal("fn ran while gate was held")
	}

	g.Unlock()
	if err := g.Do(func() error { return nil }); err != nil {
		t.Fatalf("Do after Unlock failed: %v", err)
	}
}

func TestGateThrottle(t *testing.T) {
	// 1 op/s with burst 1: the second immediate call is over budget.
	g := NewLimited(1, 1)

	if err := g.Do(func() error { return nil }); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if err := g.Do(func() error { return nil }); !errors.Is(err, ErrThrottled) {
		t.Fatalf("second call = %v, want ErrThrottled", err)
	}
}

func TestGateUnlimitedRate(t *testing.T) {
	g := NewLimited(0, 0) // non-positive rate: unlimited

	for i := 0; i < 100; i++ {
		if err := g.Do(func() error { return nil }); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
}
