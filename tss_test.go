package tss

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"testing"
)

func TestShareSecretRoundTrip(t *testing.T) {
	secrets := [][]byte{
		{0x00},
		[]byte("x"),
		[]byte("my-super-secret-passphrase"),
		bytes.Repeat([]byte{0xa5}, 1024),
	}

	tests := []struct {
		name string
		k, n int
	}{
		{"1-of-1", 1, 1},
		{"1-of-3", 1, 3},
		{"2-of-2", 2, 2},
		{"2-of-3", 2, 3},
		{"3-of-5", 3, 5},
		{"5-of-5", 5, 5},
		{"3-of-10", 3, 10},
		{"10-of-10", 10, 10},
	}

	for _, h := range []Hash{HashNone, HashSHA1, HashSHA256} {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%s/%s", tt.name, h), func(t *testing.T) {
				for _, secret := range secrets {
					shares, err := ShareSecret(tt.k, tt.n, secret, []byte("round-trip"), h)
					if err != nil {
						t.Fatalf("split: %v", err)
					}
					if len(shares) != tt.n {
						t.Fatalf("got %d shares, want %d", len(shares), tt.n)
					}

					recovered, err := Reconstruct(shares[:tt.k])
					if err != nil {
						t.Fatalf("reconstruct: %v", err)
					}
					if !bytes.Equal(recovered, secret) {
						t.Errorf("got %x, want %x", recovered, secret)
					}
				}
			})
		}
	}
}

func TestReconstructAnySubset(t *testing.T) {
	secret := []byte("test-secret")
	shares, err := ShareSecret(3, 5, secret, []byte("subsets"), HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	// all C(5,3) = 10 combinations
	combos := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4},
		{0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4},
		{2, 3, 4},
	}
	for _, combo := range combos {
		subset := make([]Share, len(combo))
		for i, idx := range combo {
			subset[i] = shares[idx]
		}
		recovered, err := Reconstruct(subset)
		if err != nil {
			t.Errorf("combo %v: %v", combo, err)
			continue
		}
		if !bytes.Equal(recovered, secret) {
			t.Errorf("combo %v: got %q, want %q", combo, recovered, secret)
		}
	}
}

func TestReconstructDeterministic(t *testing.T) {
	shares, err := ShareSecret(3, 5, []byte("same every time"), nil, HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	first, err := Reconstruct(shares[1:4])
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Reconstruct(shares[1:4])
		if err != nil {
			t.Fatalf("reconstruct: %v", err)
		}
		if !bytes.Equal(again, first) {
			t.Fatal("reconstruction of a fixed share set is not deterministic")
		}
	}
}

// Wire-format vector produced by an independent implementation of the
// format: two 2-of-2 shares of "test\x00" with identifier "my-id" and no
// digest. Reconstructing them proves bit-exact interoperability.
func TestReconstructInteropVector(t *testing.T) {
	id := append([]byte("my-id"), make([]byte, 11)...)
	share1 := append(append([]byte(nil), id...),
		0x00, 0x02, 0x00, 0x06, 0x01, 0xb9, 0xfa, 0x07, 0xe1, 0x85)
	share2 := append(append([]byte(nil), id...),
		0x00, 0x02, 0x00, 0x06, 0x02, 0xf5, 0x40, 0x9b, 0x45, 0x11)

	secret, err := ReconstructSecret([][]byte{share1, share2})
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	want := []byte{0x74, 0x65, 0x73, 0x74, 0x00}
	if !bytes.Equal(secret, want) {
		t.Errorf("got %x, want %x", secret, want)
	}
}

func TestReconstructSerializedShares(t *testing.T) {
	secret := []byte("over the wire")
	shares, err := ShareSecret(2, 4, secret, []byte("wire"), HashSHA1)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	raw := make([][]byte, len(shares))
	for i := range shares {
		raw[i] = shares[i].Bytes()
	}
	recovered, err := ReconstructSecret(raw[1:3])
	if err != nil {
		t.Fatalf("reconstruct: %v", err)
	}
	if !bytes.Equal(recovered, secret) {
		t.Errorf("got %q, want %q", recovered, secret)
	}
}

func TestShareSecretParams(t *testing.T) {
	secret := []byte("secret")

	tests := []struct {
		name       string
		k, n       int
		secret     []byte
		identifier []byte
		hash       Hash
	}{
		{"zero threshold", 0, 3, secret, nil, HashSHA256},
		{"negative threshold", -1, 3, secret, nil, HashSHA256},
		{"count below threshold", 5, 3, secret, nil, HashSHA256},
		{"count over 255", 3, 300, secret, nil, HashSHA256},
		{"empty secret", 2, 3, nil, nil, HashSHA256},
		{"identifier too long", 2, 3, secret, bytes.Repeat([]byte("x"), 17), HashSHA256},
		{"unknown hash", 2, 3, secret, nil, Hash(9)},
		{"secret too large", 2, 3, make([]byte, MaxSecretSize), nil, HashSHA256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShareSecret(tt.k, tt.n, tt.secret, tt.identifier, tt.hash)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("got %v, want ErrInvalidParams", err)
			}
		})
	}

	// largest accepted secret for a given hash
	max := make([]byte, MaxSecretSize-HashSHA256.Size())
	if _, err := ShareSecret(2, 2, max, nil, HashSHA256); err != nil {
		t.Errorf("max-size secret rejected: %v", err)
	}
}

func TestReconstructErrors(t *testing.T) {
	secret := []byte("error taxonomy")
	shares, err := ShareSecret(3, 5, secret, []byte("errs"), HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	t.Run("no shares", func(t *testing.T) {
		if _, err := Reconstruct(nil); !errors.Is(err, ErrNotEnoughShares) {
			t.Errorf("got %v, want ErrNotEnoughShares", err)
		}
	})

	t.Run("below threshold", func(t *testing.T) {
		if _, err := Reconstruct(shares[:2]); !errors.Is(err, ErrNotEnoughShares) {
			t.Errorf("got %v, want ErrNotEnoughShares", err)
		}
	})

	t.Run("duplicate index", func(t *testing.T) {
		dup := []Share{shares[0], shares[1], shares[1]}
		if _, err := Reconstruct(dup); !errors.Is(err, ErrDuplicateShare) {
			t.Errorf("got %v, want ErrDuplicateShare", err)
		}
	})

	t.Run("mixed identifiers", func(t *testing.T) {
		other, err := ShareSecret(3, 5, secret, []byte("other"), HashSHA256)
		if err != nil {
			t.Fatalf("split: %v", err)
		}
		mixed := []Share{shares[0], shares[1], other[2]}
		if _, err := Reconstruct(mixed); !errors.Is(err, ErrShareSetMismatch) {
			t.Errorf("got %v, want ErrShareSetMismatch", err)
		}
	})

	t.Run("mixed hash", func(t *testing.T) {
		bad := shares[2]
		bad.Hash = HashSHA1
		if _, err := Reconstruct([]Share{shares[0], shares[1], bad}); !errors.Is(err, ErrShareSetMismatch) {
			t.Errorf("got %v, want ErrShareSetMismatch", err)
		}
	})

	t.Run("mixed threshold", func(t *testing.T) {
		bad := shares[2]
		bad.Threshold = 4
		if _, err := Reconstruct([]Share{shares[0], shares[1], bad}); !errors.Is(err, ErrShareSetMismatch) {
			t.Errorf("got %v, want ErrShareSetMismatch", err)
		}
	})

	t.Run("payload length mismatch", func(t *testing.T) {
		bad := shares[2]
		bad.Data = bad.Data[:len(bad.Data)-1]
		if _, err := Reconstruct([]Share{shares[0], shares[1], bad}); !errors.Is(err, ErrShareSetMismatch) {
			t.Errorf("got %v, want ErrShareSetMismatch", err)
		}
	})
}

func TestCorruptedShareDetected(t *testing.T) {
	shares, err := ShareSecret(3, 5, []byte("detect me"), []byte("corrupt"), HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	corrupted := make([]Share, 3)
	copy(corrupted, shares[:3])
	data := append([]byte(nil), corrupted[1].Data...)
	data[0] ^= 0xff
	corrupted[1].Data = data

	if _, err := Reconstruct(corrupted); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("got %v, want ErrHashMismatch", err)
	}
}

func TestWrongSharesDetected(t *testing.T) {
	// a below-threshold interpolation forced through by lying about the
	// threshold must still trip the digest check
	shares, err := ShareSecret(3, 5, []byte("not enough"), []byte("forged"), HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	forged := []Share{shares[0], shares[1]}
	forged[0].Threshold = 2
	forged[1].Threshold = 2
	if _, err := Reconstruct(forged); !errors.Is(err, ErrHashMismatch) {
		t.Errorf("got %v, want ErrHashMismatch", err)
	}
}

func TestBoundaryThresholds(t *testing.T) {
	secret := []byte("boundary")

	t.Run("1-of-1", func(t *testing.T) {
		shares, err := ShareSecret(1, 1, secret, nil, HashSHA256)
		if err != nil {
			t.Fatalf("split: %v", err)
		}
		recovered, err := Reconstruct(shares)
		if err != nil {
			t.Fatalf("reconstruct: %v", err)
		}
		if !bytes.Equal(recovered, secret) {
			t.Errorf("got %q, want %q", recovered, secret)
		}
	})

	t.Run("255-of-255", func(t *testing.T) {
		shares, err := ShareSecret(255, 255, secret, nil, HashNone)
		if err != nil {
			t.Fatalf("split: %v", err)
		}
		recovered, err := Reconstruct(shares)
		if err != nil {
			t.Fatalf("reconstruct: %v", err)
		}
		if !bytes.Equal(recovered, secret) {
			t.Errorf("got %q, want %q", recovered, secret)
		}
	})
}

func TestScenario(t *testing.T) {
	secret := []byte("top-secret-key")
	shares, err := ShareSecret(3, 5, secret, []byte("id1"), HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("got %d shares, want 5", len(shares))
	}

	for _, combo := range [][]int{{0, 1, 2}, {1, 3, 4}, {0, 2, 4}} {
		subset := make([]Share, len(combo))
		for i, idx := range combo {
			subset[i] = shares[idx]
		}
		recovered, err := Reconstruct(subset)
		if err != nil {
			t.Fatalf("combo %v: %v", combo, err)
		}
		if !bytes.Equal(recovered, secret) {
			t.Errorf("combo %v: got %q, want %q", combo, recovered, secret)
		}
	}

	if _, err := Reconstruct(shares[:2]); !errors.Is(err, ErrNotEnoughShares) {
		t.Errorf("got %v, want ErrNotEnoughShares", err)
	}
}

func TestSplitsAreRandomized(t *testing.T) {
	secret := make([]byte, 64)
	if _, err := rand.Read(secret); err != nil {
		t.Fatal(err)
	}
	a, err := ShareSecret(2, 2, secret, nil, HashNone)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	b, err := ShareSecret(2, 2, secret, nil, HashNone)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	// 64 payload bytes colliding across two independent splits is a
	// 2^-512 event
	if bytes.Equal(a[0].Data, b[0].Data) {
		t.Error("two splits of the same secret produced identical payloads")
	}
}
