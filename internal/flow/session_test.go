package flow

import (
	"testing"
	"time"
)

func TestSessionManager_CreateAndGet(t *testing.T) {
	sm := NewSessionManager(time.Hour)

	id, st := sm.Create()
	if id == "" || st == nil {
		t.Fatal("expected id and state")
	}
	if st.Page != PagePatientRegister {
		t.Errorf("expected initial page, got %s", st.Page)
	}

	got, err := sm.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != st {
		t.Error("Get must return the same state instance")
	}

	if _, err := sm.Get("nope"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionManager_Expiry(t *testing.T) {
	sm := NewSessionManager(time.Minute)
	clock := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return clock }

	id, _ := sm.Create()

	clock = clock.Add(30 * time.Second)
	if _, err := sm.Get(id); err != nil {
		t.Fatalf("session expired too early: %v", err)
	}

	// Get refreshed lastSeen at +30s, so +2m from there is past the TTL.
	clock = clock.Add(2 * time.Minute)
	if _, err := sm.Get(id); err != ErrSessionNotFound {
		t.Errorf("expected expiry, got %v", err)
	}
}

func TestSessionManager_Delete(t *testing.T) {
	sm := NewSessionManager(time.Hour)
	id, _ := sm.Create()
	sm.Delete(id)
	if _, err := sm.Get(id); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if sm.Len() != 0 {
		t.Errorf("expected 0 sessions, got %d", sm.Len())
	}
}
