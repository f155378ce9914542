package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncryptDecrypt(t *testing.T) {
	raw, passphrase, err := NewPassphrase()
	if err != nil {
		t.Fatalf("passphrase: %v", err)
	}
	if len(raw) != PassphraseBytes {
		t.Errorf("raw length %d, want %d", len(raw), PassphraseBytes)
	}
	if EncodePassphrase(raw) != passphrase {
		t.Error("EncodePassphrase doesn't match generated passphrase")
	}

	plaintext := []byte("the launch codes")
	var encrypted bytes.Buffer
	if err := Encrypt(&encrypted, bytes.NewReader(plaintext), passphrase); err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if bytes.Contains(encrypted.Bytes(), plaintext) {
		t.Error("ciphertext contains plaintext")
	}

	var decrypted bytes.Buffer
	if err := Decrypt(&decrypted, bytes.NewReader(encrypted.Bytes()), passphrase); err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if !bytes.Equal(decrypted.Bytes(), plaintext) {
		t.Errorf("got %q, want %q", decrypted.Bytes(), plaintext)
	}
}

func TestDecryptWrongPassphrase(t *testing.T) {
	var encrypted bytes.Buffer
	if err := Encrypt(&encrypted, strings.NewReader("data"), "correct"); err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	var out bytes.Buffer
	if err := Decrypt(&out, bytes.NewReader(encrypted.Bytes()), "wrong"); err == nil {
		t.Error("expected error with wrong passphrase")
	}
}

func TestHashBytes(t *testing.T) {
	h := HashBytes([]byte("data"))
	if !strings.HasPrefix(h, "sha256:") {
		t.Errorf("missing prefix: %q", h)
	}
	if h != HashBytes([]byte("data")) {
		t.Error("hash is not deterministic")
	}
	if h == HashBytes([]byte("other")) {
		t.Error("different inputs hash equal")
	}
}
