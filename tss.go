// Package tss implements threshold secret sharing (Shamir's scheme) over
// GF(2^8), producing and consuming the self-describing share format of the
// threshold secret sharing interoperability draft
// (https://tools.ietf.org/html/draft-mcgrew-tss-03).
//
// ShareSecret splits a secret into N shares such that any K of them (the
// threshold) reconstruct it exactly, while fewer reveal nothing about it.
// Reconstruct, or ReconstructSecret for serialized shares, reverses the
// operation and verifies the integrity digest embedded at split time.
//
// Field operations are table lookups and are not constant time; do not use
// this package where an adversary can measure operation timing.
package tss

import (
	"bytes"
	"fmt"
)

// ShareSecret splits secret into count shares, any threshold of which
// reconstruct it. The identifier (at most 16 bytes, NUL padded on the wire)
// tags every share of this operation so that mixed share sets are detected
// at reconstruction time. When h is not HashNone the secret's digest is
// appended before splitting and checked after reconstruction.
func ShareSecret(threshold, count int, secret, identifier []byte, h Hash) ([]Share, error) {
	switch {
	case threshold < 1:
		return nil, fmt.Errorf("%w: threshold %d, must be at least 1", ErrInvalidParams, threshold)
	case count < threshold:
		return nil, fmt.Errorf("%w: %d shares cannot meet threshold %d", ErrInvalidParams, count, threshold)
	case count > MaxShares:
		return nil, fmt.Errorf("%w: %d shares, only %d distinct share indices exist", ErrInvalidParams, count, MaxShares)
	case len(secret) == 0:
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidParams)
	case len(identifier) > IdentifierSize:
		return nil, fmt.Errorf("%w: identifier is %d bytes, at most %d", ErrInvalidParams, len(identifier), IdentifierSize)
	case !h.valid():
		return nil, fmt.Errorf("%w: unknown hash algorithm %d", ErrInvalidParams, byte(h))
	case len(secret)+h.Size() > MaxSecretSize:
		return nil, fmt.Errorf("%w: secret with digest exceeds %d bytes", ErrInvalidParams, MaxSecretSize)
	}

	padded := make([]byte, IdentifierSize)
	copy(padded, identifier)

	wrapped := secret
	if h != HashNone {
		wrapped = append(append(make([]byte, 0, len(secret)+h.Size()), secret...), h.Digest(secret)...)
	}

	payloads, err := splitBytes(wrapped, threshold, count)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, count)
	for j, p := range payloads {
		shares[j] = Share{
			Identifier: padded,
			Hash:       h,
			Threshold:  byte(threshold),
			Index:      byte(j + 1),
			Data:       p,
		}
	}
	return shares, nil
}

// Reconstruct recovers the secret from at least Threshold shares carrying
// consistent metadata. After validation exactly the first Threshold shares,
// in the order supplied, are interpolated; supplying extra shares never
// changes the result, and reconstruction of a fixed share set is
// deterministic. Either the fully verified secret is returned or an error
// from the package taxonomy, never a partial result.
func Reconstruct(shares []Share) ([]byte, error) {
	if len(shares) == 0 {
		return nil, fmt.Errorf("%w: no shares supplied", ErrNotEnoughShares)
	}

	ref := shares[0]
	for i, s := range shares[1:] {
		switch {
		case !bytes.Equal(s.Identifier, ref.Identifier):
			return nil, fmt.Errorf("%w: share %d has a different identifier", ErrShareSetMismatch, i+2)
		case s.Hash != ref.Hash:
			return nil, fmt.Errorf("%w: share %d uses hash %s, expected %s", ErrShareSetMismatch, i+2, s.Hash, ref.Hash)
		case s.Threshold != ref.Threshold:
			return nil, fmt.Errorf("%w: share %d has threshold %d, expected %d", ErrShareSetMismatch, i+2, s.Threshold, ref.Threshold)
		case len(s.Data) != len(ref.Data):
			return nil, fmt.Errorf("%w: share %d has %d payload bytes, expected %d", ErrShareSetMismatch, i+2, len(s.Data), len(ref.Data))
		}
	}

	seen := make(map[byte]bool, len(shares))
	for _, s := range shares {
		if seen[s.Index] {
			return nil, fmt.Errorf("%w: index %d appears twice", ErrDuplicateShare, s.Index)
		}
		seen[s.Index] = true
	}

	k := int(ref.Threshold)
	if len(shares) < k {
		return nil, fmt.Errorf("%w: have %d, threshold is %d", ErrNotEnoughShares, len(shares), k)
	}

	xs := make([]byte, k)
	for j, s := range shares[:k] {
		xs[j] = s.Index
	}
	ys := make([]byte, k)
	secret := make([]byte, len(ref.Data))
	for i := range secret {
		for j, s := range shares[:k] {
			ys[j] = s.Data[i]
		}
		secret[i] = interpolate(xs, ys)
	}

	if ref.Hash == HashNone {
		return secret, nil
	}
	n := len(secret) - ref.Hash.Size()
	if n < 0 {
		return nil, fmt.Errorf("%w: recovered %d bytes, shorter than a %s digest", ErrHashMismatch, len(secret), ref.Hash)
	}
	if !bytes.Equal(ref.Hash.Digest(secret[:n]), secret[n:]) {
		return nil, fmt.Errorf("%w: %s digest check failed", ErrHashMismatch, ref.Hash)
	}
	return secret[:n], nil
}

// ReconstructSecret decodes serialized shares and reconstructs the secret
// they carry.
func ReconstructSecret(raw [][]byte) ([]byte, error) {
	shares := make([]Share, len(raw))
	for i, b := range raw {
		s, err := ParseShare(b)
		if err != nil {
			return nil, fmt.Errorf("share %d: %w", i+1, err)
		}
		shares[i] = *s
	}
	return Reconstruct(shares)
}
