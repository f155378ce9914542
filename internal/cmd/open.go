package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seb-m/tss"
	"github.com/seb-m/tss/internal/crypto"
)

var openCmd = &cobra.Command{
	Use:   "open SHARE-FILE... --sealed FILE.age",
	Short: "Reconstruct a passphrase from shares and decrypt a sealed file",
	Long: `Open reverses 'tss seal': it reconstructs the passphrase from the share
files, then decrypts the sealed file with it.

Example:
  tss open SHARE-alice.txt SHARE-bob.txt --sealed backup.tar.age`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOpen,
}

var (
	openSealed string
	openOutput string
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringVarP(&openSealed, "sealed", "s", "", "Path to the sealed .age file")
	openCmd.Flags().StringVarP(&openOutput, "output", "o", "", "Output file (default: sealed name without .age)")
	openCmd.MarkFlagRequired("sealed")
}

func runOpen(cmd *cobra.Command, args []string) error {
	shares, err := readShares(args)
	if err != nil {
		return err
	}

	raw, err := tss.Reconstruct(shares)
	if err != nil {
		return fmt.Errorf("reconstructing passphrase: %w", err)
	}
	passphrase := crypto.EncodePassphrase(raw)

	sealed, err := os.ReadFile(openSealed)
	if err != nil {
		return fmt.Errorf("reading sealed file: %w", err)
	}

	fmt.Println("Decrypting...")
	var plaintext bytes.Buffer
	if err := crypto.Decrypt(&plaintext, bytes.NewReader(sealed), passphrase); err != nil {
		return fmt.Errorf("decryption failed (shares may be from a different seal): %w", err)
	}

	out := openOutput
	if out == "" {
		out = strings.TrimSuffix(openSealed, ".age")
		if out == openSealed {
			out = openSealed + ".out"
		}
	}
	if err := os.WriteFile(out, plaintext.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Recovered %d bytes to %s\n", plaintext.Len(), out)
	return nil
}
