package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// RenderKey builds the cache key for a rendered artifact: the output
// format plus the hash of the render input (for SVG output, the DOT
// text). Identical inputs always map to the same key.
func RenderKey(format string, input []byte) string {
	return format + ":" + Hash(input)
}
