package utils

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
}

type utils struct {
	mu      sync.Mutex
	entropy io.Reader
}

func New() IUtils {
	return &utils{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewULIDFromTimestamp returns ids that sort by creation time, also within
// the same millisecond.
func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t), u.entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
