package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seb-m/tss"
	"github.com/seb-m/tss/internal/card"
	"github.com/seb-m/tss/internal/project"
	"github.com/seb-m/tss/internal/sharefile"
)

var splitCmd = &cobra.Command{
	Use:   "split [secret-file]",
	Short: "Split a secret into shares",
	Long: `Split reads a secret from a file (or stdin) and writes one armored share
file per share. Any threshold of the share files recover the secret with
'tss combine'.

A yaml plan file can replace the flags and name who holds each share:

  identifier: backup-2026
  threshold: 3
  holders:
    - name: Alice
    - name: Bob
    - name: Carol`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

var (
	splitThreshold int
	splitShares    int
	splitID        string
	splitHash      string
	splitOut       string
	splitPlan      string
	splitCards     bool
)

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().IntVarP(&splitThreshold, "threshold", "k", 0, "Shares required to reconstruct")
	splitCmd.Flags().IntVarP(&splitShares, "shares", "n", 0, "Total shares to create")
	splitCmd.Flags().StringVar(&splitID, "id", "", "Identifier correlating the shares (at most 16 bytes)")
	splitCmd.Flags().StringVar(&splitHash, "hash", "sha256", "Integrity hash: none, sha1 or sha256")
	splitCmd.Flags().StringVarP(&splitOut, "out", "o", ".", "Directory for the share files")
	splitCmd.Flags().StringVar(&splitPlan, "plan", "", "Yaml plan file (replaces -k/-n/--id/--hash)")
	splitCmd.Flags().BoolVar(&splitCards, "cards", false, "Also render a printable PDF card per share")
}

func runSplit(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	hash, err := plan.HashChoice()
	if err != nil {
		return err
	}

	secret, err := readSecret(args)
	if err != nil {
		return err
	}

	count := plan.ShareCount()
	fmt.Printf("Splitting into %d shares (threshold: %d, hash: %s)...\n", count, plan.Threshold, hash)

	shares, err := tss.ShareSecret(plan.Threshold, count, secret, []byte(plan.Identifier), hash)
	if err != nil {
		return err
	}

	if err := writeShareFiles(shares, plan); err != nil {
		return err
	}

	fmt.Printf("\nAny %d of the %d share files recover the secret.\n", plan.Threshold, count)
	return nil
}

// writeShareFiles armors the shares into splitOut, one file per share, plus
// a PDF card each when --cards is set. Shared by split and seal.
func writeShareFiles(shares []tss.Share, plan *project.Plan) error {
	if err := os.MkdirAll(splitOut, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i := range shares {
		f := sharefile.New(&shares[i], plan.HolderName(i))

		path := filepath.Join(splitOut, f.Filename())
		if err := os.WriteFile(path, []byte(f.Encode()), 0600); err != nil {
			return fmt.Errorf("writing share %d: %w", i+1, err)
		}
		fmt.Printf("  %s %s\n", green("✓"), path)

		if splitCards {
			pdf, err := card.Generate(f)
			if err != nil {
				return fmt.Errorf("rendering card for share %d: %w", i+1, err)
			}
			cardPath := strings.TrimSuffix(path, ".txt") + ".pdf"
			if err := os.WriteFile(cardPath, pdf, 0600); err != nil {
				return fmt.Errorf("writing card for share %d: %w", i+1, err)
			}
			fmt.Printf("  %s %s\n", green("✓"), cardPath)
		}
	}
	return nil
}

// loadPlan resolves the split parameters, either from the yaml plan file or
// from the flags.
func loadPlan() (*project.Plan, error) {
	if splitPlan != "" {
		p, err := project.Load(splitPlan)
		if err != nil {
			return nil, err
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("invalid plan: %w", err)
		}
		return p, nil
	}

	p := &project.Plan{
		Identifier: splitID,
		Threshold:  splitThreshold,
		Shares:     splitShares,
		Hash:       splitHash,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func readSecret(args []string) ([]byte, error) {
	if len(args) == 1 {
		secret, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading secret: %w", err)
		}
		return secret, nil
	}
	secret, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading secret from stdin: %w", err)
	}
	return secret, nil
}
