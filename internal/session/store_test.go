package session

import (
	"log/slog"
	"sync"
	"testing"
	"time"
)

func newTestStore() *Store {
	return NewStore(slog.Default())
}

func TestCreateAndValidate(t *testing.T) {
	s := newTestStore()

	token := s.Create("alice")
	if len(token) != 64 { // 32 bytes hex-encoded
		t.Errorf("token length = %d, want 64", len(token))
	}

	username, ok := s.TouchAndValidate(token)
	if !ok {
		t.Fatal("expected session to validate")
	}
	if username != "alice" {
		t.Errorf("username = %q, want %q", username, "alice")
	}
}

func TestValidateUnknownToken(t *testing.T) {
	s := newTestStore()

	if _, ok := s.TouchAndValidate("nonexistent"); ok {
		t.Error("expected unknown token to fail validation")
	}
}

func TestMultipleSessionsPerAccount(t *testing.T) {
	s := newTestStore()

	t1 := s.Create("alice")
	t2 := s.Create("alice")
	if t1 == t2 {
		t.Fatal("expected distinct tokens")
	}

	for _, token := range []string{t1, t2} {
		if _, ok := s.TouchAndValidate(token); !ok {
			t.Errorf("session %q did not validate", token[:8])
		}
	}
}

func TestIdleExpiry(t *testing.T) {
	s := newTestStore()
	current := time.Now()
	s.now = func() time.Time { return current }

	token := s.Create("alice")

	// Just inside the window.
	current = current.Add(IdleTimeout - time.Second)
	if _, ok := s.TouchAndValidate(token); !ok {
		t.Fatal("session expired early")
	}

	// The touch above reset the idle clock.
	current = current.Add(IdleTimeout - time.Second)
	if _, ok := s.TouchAndValidate(token); !ok {
		t.Fatal("touch did not extend the session")
	}

	current = current.Add(IdleTimeout + time.Second)
	if _, ok := s.TouchAndValidate(token); ok {
		t.Error("expected idle session to be rejected")
	}
}

func TestInvalidateIdempotent(t *testing.T) {
	s := newTestStore()

	token := s.Create("alice")
	s.Create("bob")

	s.Invalidate(token)
	if got := s.Len(); got != 1 {
		t.Fatalf("len after invalidate = %d, want 1", got)
	}

	s.Invalidate(token)
	if got := s.Len(); got != 1 {
		t.Errorf("len after second invalidate = %d, want 1", got)
	}

	if _, ok := s.TouchAndValidate(token); ok {
		t.Error("invalidated session still validates")
	}
}

func TestSweepEvictsOnlyIdle(t *testing.T) {
	s := newTestStore()
	current := time.Now()
	s.now = func() time.Time { return current }

	stale := s.Create("alice")
	current = current.Add(IdleTimeout + time.Minute)
	fresh := s.Create("bob")

	if n := s.sweep(); n != 1 {
		t.Errorf("sweep evicted %d, want 1", n)
	}
	if _, ok := s.TouchAndValidate(stale); ok {
		t.Error("stale session survived sweep")
	}
	if _, ok := s.TouchAndValidate(fresh); !ok {
		t.Error("fresh session was evicted")
	}
}

func TestSweepConcurrentWithTouch(t *testing.T) {
	s := newTestStore()

	tokens := make([]string, 20)
	for i := range tokens {
		tokens[i] = s.Create("alice")
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				for _, token := range tokens {
					if _, ok := s.TouchAndValidate(token); !ok {
						t.Error("live session failed validation during sweep")
						return
					}
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			s.sweep()
		}
	}()
	wg.Wait()

	// Every session was being actively touched; none may be evicted.
	if got := s.Len(); got != len(tokens) {
		t.Errorf("len = %d, want %d", got, len(tokens))
	}
}

func TestConcurrentCreateInvalidate(t *testing.T) {
	s := newTestStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				token := s.Create("alice")
				s.Invalidate(token)
			}
		}()
	}
	wg.Wait()

	if got := s.Len(); got != 0 {
		t.Errorf("len = %d, want 0", got)
	}
}
