// Package hash computes the fingerprints used to tell datasets apart in reports.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of data.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex formats a fingerprint as 16 lowercase hex digits.
func Hex(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
