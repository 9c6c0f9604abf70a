package bcrypt

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	hash, err := b.HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("password stored in clear text")
	}

	if err := b.ComparePassword(hash, "rahasia123"); err != nil {
		t.Errorf("matching password rejected: %v", err)
	}
	if err := b.ComparePassword(hash, "salah"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}
