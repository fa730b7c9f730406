package checksum

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known SHA-256 digest of the empty input.
const emptyDigest = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

func TestOfBytesEmpty(t *testing.T) {
	assert.Equal(t, emptyDigest, OfBytes(nil))
	assert.Equal(t, emptyDigest, OfBytes([]byte{}))
}

func TestOfReaderMatchesOfBytes(t *testing.T) {
	payload := bytes.Repeat([]byte("electron microscopy "), 1000)

	got, err := OfReader(bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, OfBytes(payload), got)
}

func TestOfReaderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eln_data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entry:\n  start_time: now\n"), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := OfReader(f)
	require.NoError(t, err)
	assert.Len(t, got, 64)
	assert.Equal(t, strings.ToLower(got), got)
}

func TestFingerprint(t *testing.T) {
	got, err := Fingerprint(strings.NewReader(""), true)
	require.NoError(t, err)
	assert.Equal(t, emptyDigest, got)

	got, err = Fingerprint(strings.NewReader("ignored"), false)
	require.NoError(t, err)
	assert.Equal(t, NotComputed, got)

	// The sentinel must never look like a real digest.
	assert.NotEqual(t, 64, len(NotComputed))
}
