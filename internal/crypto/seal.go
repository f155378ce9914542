package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"filippo.io/age"
)

// PassphraseBytes is the entropy of a generated sealing passphrase.
// The raw bytes are what gets split into shares; the base64url encoding of
// them is what age derives the file key from.
const PassphraseBytes = 32

// NewPassphrase draws a random passphrase from crypto/rand and returns both
// the raw bytes (split into shares) and the base64url string handed to age.
func NewPassphrase() (raw []byte, passphrase string, err error) {
	raw = make([]byte, PassphraseBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, "", fmt.Errorf("generating passphrase: %w", err)
	}
	return raw, EncodePassphrase(raw), nil
}

// EncodePassphrase turns reconstructed passphrase bytes back into the
// string form age expects.
func EncodePassphrase(raw []byte) string {
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Encrypt age-encrypts src into dst with a passphrase (scrypt recipient).
func Encrypt(dst io.Writer, src io.Reader, passphrase string) error {
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("creating recipient: %w", err)
	}

	w, err := age.Encrypt(dst, recipient)
	if err != nil {
		return fmt.Errorf("creating encryptor: %w", err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("encrypting: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encryption: %w", err)
	}
	return nil
}

// Decrypt decrypts age-encrypted data with a passphrase.
func Decrypt(dst io.Writer, src io.Reader, passphrase string) error {
	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return fmt.Errorf("creating identity: %w", err)
	}

	r, err := age.Decrypt(src, identity)
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("reading decrypted data: %w", err)
	}
	return nil
}
