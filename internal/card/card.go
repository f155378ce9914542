// Package card renders one printable A4 page per share: the holder's name,
// the sharing parameters, the armored share text, and a QR code carrying
// the base64 wire bytes for phone-camera recovery.
package card

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/seb-m/tss/internal/sharefile"
)

const (
	titleSize   = 22.0
	headingSize = 12.0
	bodySize    = 10.0
	monoSize    = 8.0

	qrSizeMM = 70.0
)

// accentColors give each holder's printed card a distinct strip, indexed by
// (share index - 1) modulo the palette size.
var accentColors = [][3]int{
	{122, 143, 166}, // dusty blue
	{85, 115, 90},   // sage
	{166, 130, 100}, // warm tan
	{140, 110, 140}, // muted plum
	{110, 145, 140}, // teal
	{180, 140, 100}, // amber
	{120, 130, 160}, // slate
	{155, 120, 120}, // dusty rose
}

// Generate renders the PDF share card for f.
func Generate(f *sharefile.File) ([]byte, error) {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetMargins(20, 20, 20)
	p.SetAutoPageBreak(true, 20)

	ac := accentColors[(int(f.Share.Index)-1)%len(accentColors)]

	p.SetFooterFunc(func() {
		pw, _ := p.GetPageSize()
		p.SetY(-15)
		markW, markH := 15.0, 2.0
		p.SetFillColor(ac[0], ac[1], ac[2])
		p.Rect((pw-markW)/2, p.GetY()-1, markW, markH, "F")
		p.SetFont("Helvetica", "", 7)
		p.SetTextColor(180, 180, 180)
		p.CellFormat(0, 10, fmt.Sprintf("%d", p.PageNo()), "", 0, "C", false, 0, "")
	})

	p.AddPage()

	// Accent strip across the top
	pw, _ := p.GetPageSize()
	p.SetFillColor(ac[0], ac[1], ac[2])
	p.Rect(0, 0, pw, 6, "F")

	p.SetY(20)
	p.SetFont("Helvetica", "B", titleSize)
	p.SetTextColor(30, 30, 30)
	p.CellFormat(0, 12, "Secret Share", "", 1, "L", false, 0, "")

	if f.Holder != "" {
		p.SetFont("Helvetica", "", headingSize)
		p.SetTextColor(90, 90, 90)
		p.CellFormat(0, 8, fmt.Sprintf("Held by %s", f.Holder), "", 1, "L", false, 0, "")
	}
	p.Ln(4)

	p.SetFont("Helvetica", "", bodySize)
	p.SetTextColor(30, 30, 30)
	kv := func(key, value string) {
		p.SetFont("Helvetica", "B", bodySize)
		p.CellFormat(35, 6, key, "", 0, "L", false, 0, "")
		p.SetFont("Helvetica", "", bodySize)
		p.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}
	kv("Share", fmt.Sprintf("%d", f.Share.Index))
	kv("Threshold", fmt.Sprintf("%d shares needed to recover", f.Share.Threshold))
	kv("Hash", f.Share.Hash.String())
	kv("Created", f.Created.Format("2006-01-02"))
	kv("Checksum", f.Checksum)
	p.Ln(6)

	// QR code of the base64 wire bytes
	qrPNG, err := qrcode.Encode(base64.StdEncoding.EncodeToString(f.Share.Bytes()), qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("generating QR code: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	p.RegisterImageOptionsReader("share-qr", opts, bytes.NewReader(qrPNG))
	p.ImageOptions("share-qr", (pw-qrSizeMM)/2, p.GetY(), qrSizeMM, qrSizeMM, false, opts, 0, "")
	p.SetY(p.GetY() + qrSizeMM + 8)

	p.SetFont("Helvetica", "B", headingSize)
	p.CellFormat(0, 8, "Share text", "", 1, "L", false, 0, "")
	p.SetFont("Courier", "", monoSize)
	p.SetTextColor(60, 60, 60)
	for _, line := range strings.Split(strings.TrimRight(f.Encode(), "\n"), "\n") {
		p.CellFormat(0, 4, line, "", 1, "L", false, 0, "")
	}
	p.Ln(4)

	p.SetFont("Helvetica", "I", bodySize)
	p.SetTextColor(90, 90, 90)
	p.MultiCell(0, 5, fmt.Sprintf(
		"Keep this page somewhere safe. On its own it reveals nothing about the secret; "+
			"any %d of the distributed shares recover it.", f.Share.Threshold), "", "L", false)

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}
