package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seb-m/tss"
	"github.com/seb-m/tss/internal/crypto"
)

var sealCmd = &cobra.Command{
	Use:   "seal FILE",
	Short: "Encrypt a file and split the passphrase into shares",
	Long: `Seal is for secrets too large to split directly. It encrypts FILE with
age under a freshly generated random passphrase, then splits the
passphrase into shares. Recover with 'tss open'.

This command:
  1. Generates a random passphrase
  2. Encrypts FILE to FILE.age
  3. Splits the passphrase bytes into shares
  4. Verifies the shares reconstruct the passphrase
  5. Writes one armored share file per share`,
	Args: cobra.ExactArgs(1),
	RunE: runSeal,
}

func init() {
	rootCmd.AddCommand(sealCmd)
	sealCmd.Flags().IntVarP(&splitThreshold, "threshold", "k", 0, "Shares required to reconstruct")
	sealCmd.Flags().IntVarP(&splitShares, "shares", "n", 0, "Total shares to create")
	sealCmd.Flags().StringVar(&splitID, "id", "", "Identifier correlating the shares (at most 16 bytes)")
	sealCmd.Flags().StringVar(&splitHash, "hash", "sha256", "Integrity hash: none, sha1 or sha256")
	sealCmd.Flags().StringVarP(&splitOut, "out", "o", ".", "Directory for the share files")
	sealCmd.Flags().StringVar(&splitPlan, "plan", "", "Yaml plan file (replaces -k/-n/--id/--hash)")
	sealCmd.Flags().BoolVar(&splitCards, "cards", false, "Also render a printable PDF card per share")
}

func runSeal(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}
	hash, err := plan.HashChoice()
	if err != nil {
		return err
	}

	plaintext, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	raw, passphrase, err := crypto.NewPassphrase()
	if err != nil {
		return err
	}

	fmt.Println("Encrypting with age...")
	var encrypted bytes.Buffer
	if err := crypto.Encrypt(&encrypted, bytes.NewReader(plaintext), passphrase); err != nil {
		return err
	}

	if err := os.MkdirAll(splitOut, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	sealedPath := filepath.Join(splitOut, filepath.Base(args[0])+".age")
	if err := os.WriteFile(sealedPath, encrypted.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing sealed file: %w", err)
	}

	count := plan.ShareCount()
	fmt.Printf("Splitting passphrase into %d shares (threshold: %d)...\n", count, plan.Threshold)
	shares, err := tss.ShareSecret(plan.Threshold, count, raw, []byte(plan.Identifier), hash)
	if err != nil {
		return err
	}

	fmt.Print("Verifying reconstruction... ")
	recovered, err := tss.Reconstruct(shares[:plan.Threshold])
	if err != nil || !bytes.Equal(recovered, raw) {
		fmt.Println("FAILED")
		return fmt.Errorf("verification failed: %v", err)
	}
	fmt.Println("OK")

	fmt.Printf("  %s %s\n", green("✓"), sealedPath)
	if err := writeShareFiles(shares, plan); err != nil {
		return err
	}

	fmt.Printf("\nRecover with: tss open --sealed %s SHARE...\n", sealedPath)
	return nil
}
