// Package checksum fingerprints file or in-memory content for provenance
// and deduplication metadata.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// Algorithm names the hash function used for all fingerprints.
const Algorithm = "sha256"

// NotComputed is the sentinel recorded when fingerprinting is disabled.
// It is deliberately shorter than any hex digest so it can never collide
// with a computed value.
const NotComputed = "n/a"

// chunkSize bounds memory while streaming large files.
const chunkSize = 4096

// OfReader computes the SHA-256 digest of everything readable from r,
// streaming in fixed-size chunks.
func OfReader(r io.Reader) (string, error) {
	h := sha256.New()

	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// OfBytes computes the SHA-256 digest of an in-memory buffer.
func OfBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns the digest of r when compute is true, or the
// NotComputed sentinel when it is false. The reader is not consumed in the
// sentinel case.
func Fingerprint(r io.Reader, compute bool) (string, error) {
	if !compute {
		return NotComputed, nil
	}

	return OfReader(r)
}
