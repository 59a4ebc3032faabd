// Package hash provides content digests for round-trip verification and
// file inspection.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Sum64 returns the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex returns the xxHash64 digest of data as a 16-character hex string.
func Hex(data []byte) string {
	return fmt.Sprintf("%016x", Sum64(data))
}
