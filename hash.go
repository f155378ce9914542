package tss

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
)

// Hash selects the integrity digest appended to the secret before splitting.
// The numeric values are fixed by the wire format and shared with every
// interoperating implementation.
type Hash byte

const (
	HashNone   Hash = 0 // no integrity digest
	HashSHA1   Hash = 1
	HashSHA256 Hash = 2
)

// Hasher is the digest capability the engine depends on. The built-in Hash
// values satisfy it; additional wire-registered algorithms can be supplied
// by implementing it elsewhere.
type Hasher interface {
	ID() byte
	Size() int
	Digest(data []byte) []byte
}

var _ Hasher = HashSHA256

func (h Hash) valid() bool { return h <= HashSHA256 }

// ID returns the algorithm identifier embedded in every share header.
func (h Hash) ID() byte { return byte(h) }

// Size returns the digest length in bytes, 0 for HashNone.
func (h Hash) Size() int {
	switch h {
	case HashSHA1:
		return sha1.Size
	case HashSHA256:
		return sha256.Size
	}
	return 0
}

// Digest returns the digest of data, nil for HashNone.
func (h Hash) Digest(data []byte) []byte {
	switch h {
	case HashSHA1:
		d := sha1.Sum(data)
		return d[:]
	case HashSHA256:
		d := sha256.Sum256(data)
		return d[:]
	}
	return nil
}

func (h Hash) String() string {
	switch h {
	case HashNone:
		return "none"
	case HashSHA1:
		return "sha1"
	case HashSHA256:
		return "sha256"
	}
	return fmt.Sprintf("unknown(%d)", byte(h))
}

// ParseHash maps a textual algorithm name to its wire identifier.
func ParseHash(name string) (Hash, error) {
	switch name {
	case "none":
		return HashNone, nil
	case "sha1":
		return HashSHA1, nil
	case "sha256":
		return HashSHA256, nil
	}
	return 0, fmt.Errorf("%w: unknown hash algorithm %q", ErrInvalidParams, name)
}
