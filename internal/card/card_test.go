package card

import (
	"bytes"
	"testing"

	"github.com/seb-m/tss"
	"github.com/seb-m/tss/internal/sharefile"
)

func TestGenerate(t *testing.T) {
	shares, err := tss.ShareSecret(2, 3, []byte("printable"), []byte("cards"), tss.HashSHA256)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	for i, holder := range []string{"Alice", "Bob", ""} {
		f := sharefile.New(&shares[i], holder)
		pdf, err := Generate(f)
		if err != nil {
			t.Fatalf("share %d: %v", i, err)
		}
		if !bytes.HasPrefix(pdf, []byte("%PDF")) {
			t.Errorf("share %d: output is not a PDF", i)
		}
	}
}
