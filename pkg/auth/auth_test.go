package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/arnavshah/shift-planner-go/pkg/database"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Errorf("Expected the password to match its hash")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Errorf("Expected a wrong password to be rejected")
	}
	if CheckPasswordHash("anything", "") {
		t.Errorf("Expected an uninitialised user to be rejected")
	}
}

func TestPasswordHash_LongPassword(t *testing.T) {
	// bcrypt alone ignores everything past 72 bytes
	base := strings.Repeat("a", 80)
	hash, err := HashPassword(base + "1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if CheckPasswordHash(base+"2", hash) {
		t.Errorf("Expected passwords differing after 72 bytes to be distinguished")
	}
}

func TestToken_RoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret-0123456789", time.Hour)
	token, expires, err := issuer.CreateToken(&database.User{ID: 7, Admin: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Errorf("Expected the token to expire in the future, got %v", expires)
	}

	claims, err := issuer.VerifyToken(token)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if claims.UserID != 7 || !claims.Admin {
		t.Errorf("Expected user 7 admin, got %d admin=%v", claims.UserID, claims.Admin)
	}
}

func TestToken_Rejected(t *testing.T) {
	issuer := NewIssuer("test-secret-0123456789", time.Hour)
	token, _, err := issuer.CreateToken(&database.User{ID: 7})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	other := NewIssuer("another-secret-0123456789", time.Hour)
	if _, err := other.VerifyToken(token); err == nil {
		t.Errorf("Expected a token signed with another secret to be rejected")
	}

	expired := NewIssuer("test-secret-0123456789", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.CreateToken(&database.User{ID: 7})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := issuer.VerifyToken(old); err == nil {
		t.Errorf("Expected an expired token to be rejected")
	}
}
