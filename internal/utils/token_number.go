package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewTokenNumber produces a queue ticket identifier of the form
// MF-XXXXXXXX-YYY, where the first block is the last eight digits of the
// current Unix-millisecond clock and the suffix is a random three-digit
// number.  The value is only probabilistically unique; the booking
// repository inserts it under a UNIQUE constraint and calls this again on a
// duplicate-key error.
func NewTokenNumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("MF-%s-%03d", millis, suffix)
}
