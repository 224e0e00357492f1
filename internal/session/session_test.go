package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir(), "http://localhost:5000")

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess != nil {
		t.Fatalf("Expected no session in fresh store, got %+v", sess)
	}

	if err := store.Save(Session{Token: "abc123", Role: "doctor"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sess, err = store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess == nil {
		t.Fatal("Expected session after save")
	}
	if sess.Token != "abc123" || sess.Role != "doctor" {
		t.Errorf("Expected saved session, got %+v", sess)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sess, err = store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess != nil {
		t.Errorf("Expected no session after clear, got %+v", sess)
	}
}

func TestStoreOriginScoped(t *testing.T) {
	dir := t.TempDir()
	a := NewStore(dir, "http://localhost:5000")
	b := NewStore(dir, "https://records.example.com")

	if err := a.Save(Session{Token: "tok-a", Role: "nurse"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sess, err := b.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess != nil {
		t.Errorf("Expected no session for other origin, got %+v", sess)
	}

	// Clearing one origin leaves the other intact.
	if err := b.Save(Session{Token: "tok-b", Role: "doctor"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sess, err = a.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess == nil || sess.Token != "tok-a" {
		t.Errorf("Expected first origin session untouched, got %+v", sess)
	}
}

func TestCheckAbsentSession(t *testing.T) {
	store := NewStore(t.TempDir(), "http://localhost:5000")

	if _, ok := store.Check(); ok {
		t.Error("Expected guard to fail with no stored session")
	}
}

func TestCheckOpaqueToken(t *testing.T) {
	store := NewStore(t.TempDir(), "http://localhost:5000")
	if err := store.Save(Session{Token: "not-a-jwt", Role: "nurse"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sess, ok := store.Check()
	if !ok {
		t.Fatal("Expected guard to pass for opaque token")
	}
	if sess.Role != "nurse" {
		t.Errorf("Expected stored role, got %s", sess.Role)
	}
}

func TestCheckExpiredJWTClearsSession(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "doc",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	store := NewStore(t.TempDir(), "http://localhost:5000")
	if err := store.Save(Session{Token: signed, Role: "doctor"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := store.Check(); ok {
		t.Error("Expected guard to fail for expired token")
	}

	sess, err := store.Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sess != nil {
		t.Errorf("Expected expired session to be cleared, got %+v", sess)
	}
}

func TestCheckValidJWT(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "doc",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	store := NewStore(t.TempDir(), "http://localhost:5000")
	if err := store.Save(Session{Token: signed, Role: "doctor"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := store.Check(); !ok {
		t.Error("Expected guard to pass for unexpired token")
	}
}
