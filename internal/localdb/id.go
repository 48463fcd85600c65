package localdb

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a new row identifier. Prefers a random (v4) UUID; when
// the runtime's random source is unavailable it falls back to a
// timestamp plus pseudo-random suffix. Never fails.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fallbackID(time.Now())
}

// fallbackID builds a low-collision id without a crypto random source:
// base-36 millisecond timestamp plus a base-36 pseudo-random suffix.
func fallbackID(now time.Time) string {
	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := strconv.FormatUint(rand.Uint64(), 36)
	return stamp + "-" + suffix
}
