// Package format builds human-readable transaction codes.
package format

import (
	"fmt"
	"time"
)

// Code prefixes by transaction kind.
const (
	SalePrefix    = "TRX"
	DepositPrefix = "SE"
)

// TransactionCode formats a transaction code from a prefix, the commit time,
// and the day's monotonic sequence, e.g. "SE-20260901-0007".
//
// This function is PURE:
// - No side effects
// - No DB access
// - Fully deterministic
func TransactionCode(prefix string, at time.Time, seq int64) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("transaction code prefix is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid transaction sequence: %d", seq)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, at.Format("20060102"), seq), nil
}
