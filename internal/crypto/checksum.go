package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// HashBytes returns the SHA-256 hash of b, prefixed with "sha256:". Share
// files embed this over the wire bytes so file corruption is caught before
// reconstruction is even attempted.
func HashBytes(b []byte) string {
	h := sha256.Sum256(b)
	return "sha256:" + hex.EncodeToString(h[:])
}

// HashFile returns the SHA-256 hash of a file, prefixed with "sha256:".
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}
