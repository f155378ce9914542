// Package sharefile wraps a single binary share in an armored text
// container suitable for printing, email, or plain files. The body is the
// base64 of the exact wire bytes, so any conforming implementation can
// consume it after stripping the armor.
package sharefile

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/seb-m/tss"
	"github.com/seb-m/tss/internal/crypto"
)

const (
	begin = "-----BEGIN TSS SHARE-----"
	end   = "-----END TSS SHARE-----"
)

// File is one armored share plus the metadata kept outside the wire bytes.
type File struct {
	Holder   string    // person holding this share, may be empty
	Created  time.Time // when the share was written
	Checksum string    // SHA-256 of the wire bytes
	Share    *tss.Share
}

// New wraps a share for holder and computes its checksum.
func New(share *tss.Share, holder string) *File {
	return &File{
		Holder:   holder,
		Created:  time.Now().UTC(),
		Checksum: crypto.HashBytes(share.Bytes()),
		Share:    share,
	}
}

// Encode renders the armored representation.
func (f *File) Encode() string {
	var sb strings.Builder

	sb.WriteString(begin + "\n")
	if f.Holder != "" {
		sb.WriteString(fmt.Sprintf("Holder: %s\n", f.Holder))
	}
	sb.WriteString(fmt.Sprintf("Index: %d\n", f.Share.Index))
	sb.WriteString(fmt.Sprintf("Threshold: %d\n", f.Share.Threshold))
	sb.WriteString(fmt.Sprintf("Hash: %s\n", f.Share.Hash))
	sb.WriteString(fmt.Sprintf("Created: %s\n", f.Created.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Checksum: %s\n", f.Checksum))
	sb.WriteString("\n")
	sb.WriteString(wrap(base64.StdEncoding.EncodeToString(f.Share.Bytes()), 64))
	sb.WriteString("\n")
	sb.WriteString(end + "\n")

	return sb.String()
}

// Parse reads an armored share back. The Index/Threshold/Hash header lines
// are informational; the decoded wire bytes are authoritative, and the
// checksum must match them.
func Parse(content []byte) (*File, error) {
	text := string(content)

	beginIdx := strings.Index(text, begin)
	endIdx := strings.Index(text, end)
	if beginIdx == -1 || endIdx == -1 || endIdx <= beginIdx {
		return nil, fmt.Errorf("invalid share file: missing BEGIN/END markers")
	}

	inner := text[beginIdx+len(begin) : endIdx]
	lines := strings.Split(strings.TrimSpace(inner), "\n")

	f := &File{}
	var dataLines []string
	inData := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			inData = true
			continue
		}
		if inData {
			dataLines = append(dataLines, line)
			continue
		}

		parts := strings.SplitN(line, ": ", 2)
		if len(parts) != 2 {
			continue
		}
		switch parts[0] {
		case "Holder":
			f.Holder = parts[1]
		case "Created":
			t, err := time.Parse(time.RFC3339, parts[1])
			if err != nil {
				return nil, fmt.Errorf("invalid created time: %w", err)
			}
			f.Created = t
		case "Checksum":
			f.Checksum = parts[1]
		}
	}

	wire, err := base64.StdEncoding.DecodeString(strings.Join(dataLines, ""))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	if len(wire) == 0 {
		return nil, fmt.Errorf("missing share data")
	}

	if f.Checksum == "" {
		return nil, fmt.Errorf("missing checksum")
	}
	if got := crypto.HashBytes(wire); got != f.Checksum {
		return nil, fmt.Errorf("checksum mismatch: file says %s, data hashes to %s", f.Checksum, got)
	}

	share, err := tss.ParseShare(wire)
	if err != nil {
		return nil, err
	}
	f.Share = share

	return f, nil
}

// Filename suggests a filesystem name for this share.
func (f *File) Filename() string {
	name := f.Holder
	if name == "" {
		name = fmt.Sprintf("%d", f.Share.Index)
	}
	return fmt.Sprintf("SHARE-%s.txt", strings.ToLower(sanitize(name)))
}

func sanitize(name string) string {
	name = strings.ReplaceAll(name, " ", "-")
	return regexp.MustCompile(`[^a-zA-Z0-9\-_]`).ReplaceAllString(name, "")
}

// wrap breaks s into lines of at most width characters.
func wrap(s string, width int) string {
	var sb strings.Builder
	for len(s) > width {
		sb.WriteString(s[:width])
		sb.WriteString("\n")
		s = s[width:]
	}
	sb.WriteString(s)
	return sb.String()
}
