package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Now()

	prev := ""
	for i := 0; i < 100; i++ {
		id, err := u.NewULIDFromTimestamp(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(id) != ulid.EncodedSize {
			t.Fatalf("id %q has length %d", id, len(id))
		}
		if id <= prev {
			t.Fatalf("ids are not increasing: %q after %q", id, prev)
		}
		prev = id
	}

	parsed, err := ulid.Parse(prev)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Time() != ulid.Timestamp(now) {
		t.Errorf("timestamp = %d, want %d", parsed.Time(), ulid.Timestamp(now))
	}
}
