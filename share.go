package tss

import (
	"encoding/binary"
	"fmt"
)

const (
	// IdentifierSize is the fixed width of the identifier field in the
	// share header. Shorter identifiers are NUL padded on the wire.
	IdentifierSize = 16

	headerSize   = IdentifierSize + 1 + 1 + 2
	minShareSize = headerSize + 2 // index byte plus at least one payload byte

	// MaxSecretSize bounds the digest-appended secret so the 16-bit
	// share-length field (payload plus index byte) always fits.
	MaxSecretSize = 1<<16 - 2

	// MaxShares is the number of distinct nonzero share indices in GF(256).
	MaxShares = 255
)

// Share is one fragment of a split secret. Shares are constructed by
// ShareSecret or decoded by ParseShare and never modified afterwards.
//
// Identifier holds the 16 header bytes exactly as they appear on the wire,
// NUL padding included, so a freshly split share and its decoded serialized
// form compare equal.
type Share struct {
	Identifier []byte
	Hash       Hash
	Threshold  byte
	Index      byte // the nonzero field element the polynomials were evaluated at
	Data       []byte
}

// Bytes serializes the share into the interoperable wire layout:
//
//	identifier[16] | hash[1] | threshold[1] | share_len[2 BE] | index[1] | payload
//
// where share_len counts the index byte plus the payload.
func (s *Share) Bytes() []byte {
	buf := make([]byte, headerSize+1+len(s.Data))
	copy(buf[:IdentifierSize], s.Identifier)
	buf[IdentifierSize] = byte(s.Hash)
	buf[IdentifierSize+1] = s.Threshold
	binary.BigEndian.PutUint16(buf[IdentifierSize+2:headerSize], uint16(len(s.Data)+1))
	buf[headerSize] = s.Index
	copy(buf[headerSize+1:], s.Data)
	return buf
}

// ParseShare decodes a serialized share, rejecting any structural
// malformation. It never repairs or truncates its input. Errors wrap
// ErrShareFormat.
func ParseShare(data []byte) (*Share, error) {
	if len(data) < minShareSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrShareFormat, len(data), minShareSize)
	}
	shareLen := int(binary.BigEndian.Uint16(data[IdentifierSize+2 : headerSize]))
	if len(data) != headerSize+shareLen {
		return nil, fmt.Errorf("%w: body is %d bytes, header declares %d",
			ErrShareFormat, len(data)-headerSize, shareLen)
	}

	s := &Share{
		Identifier: append([]byte(nil), data[:IdentifierSize]...),
		Hash:       Hash(data[IdentifierSize]),
		Threshold:  data[IdentifierSize+1],
		Index:      data[headerSize],
		Data:       append([]byte(nil), data[headerSize+1:]...),
	}
	if !s.Hash.valid() {
		return nil, fmt.Errorf("%w: unrecognized hash algorithm %d", ErrShareFormat, byte(s.Hash))
	}
	if s.Threshold < 1 {
		return nil, fmt.Errorf("%w: zero threshold", ErrShareFormat)
	}
	if s.Index == 0 {
		return nil, fmt.Errorf("%w: zero share index", ErrShareFormat)
	}
	return s, nil
}
