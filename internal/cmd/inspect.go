package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seb-m/tss/internal/sharefile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect SHARE-FILE...",
	Short: "Show share metadata without reconstructing anything",
	Long: `Inspect parses armored share files, verifies their checksums and prints
their metadata. Useful for checking which shares belong together before
attempting recovery.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	for _, path := range args {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		f, err := sharefile.Parse(content)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Printf("%s %s\n", green("✓"), path)
		if f.Holder != "" {
			fmt.Printf("  Holder:     %s\n", f.Holder)
		}
		fmt.Printf("  Identifier: %s\n", printableIdentifier(f.Share.Identifier))
		fmt.Printf("  Share:      %d\n", f.Share.Index)
		fmt.Printf("  Threshold:  %d\n", f.Share.Threshold)
		fmt.Printf("  Hash:       %s\n", f.Share.Hash)
		fmt.Printf("  Payload:    %d bytes\n", len(f.Share.Data))
		fmt.Printf("  Checksum:   %s\n", truncateHash(f.Checksum))
	}
	return nil
}

// printableIdentifier renders the 16 identifier bytes for humans: padding
// stripped, non-printable bytes hex escaped.
func printableIdentifier(id []byte) string {
	trimmed := bytes.TrimRight(id, "\x00")
	if len(trimmed) == 0 {
		return "(empty)"
	}
	var sb strings.Builder
	for _, b := range trimmed {
		if b >= 0x20 && b < 0x7f {
			sb.WriteByte(b)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", b)
		}
	}
	return sb.String()
}

func truncateHash(hash string) string {
	if len(hash) > 20 {
		return hash[:20] + "..."
	}
	return hash
}
