// Package ids generates the human-and-machine readable identifiers used
// across the stores: a millisecond timestamp plus a short random suffix.
// Collision resistance only needs to cover a single installation; the
// suffix comes from a v4 UUID rather than anything cryptographic-grade.
package ids

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewProductID returns an id like "prod_1717171717171_a1b2c3".
func NewProductID() string {
	return fmt.Sprintf("prod_%d_%s", time.Now().UnixMilli(), suffix(6))
}

// NewUserID returns an id like "user_1717171717171_a1b2c3".
func NewUserID() string {
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), suffix(6))
}

// NewOrderID returns an id like "ORD-1717171717171-A1B2C3D4E".
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(suffix(9)))
}

func suffix(n int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(raw) {
		n = len(raw)
	}
	return raw[:n]
}
