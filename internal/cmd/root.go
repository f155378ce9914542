package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tss",
	Short: "Split secrets into threshold shares and recover them",
	Long: `tss splits a secret into N shares with Shamir's scheme over GF(256),
any K of which reconstruct it exactly. Shares use the interoperable
threshold secret sharing wire format, armored as plain text files.

Split a secret:     tss split -k 3 -n 5 secret.key
Recover it:         tss combine SHARE-1.txt SHARE-3.txt SHARE-5.txt
Seal a large file:  tss seal backup.tar`,
}

func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func green(s string) string { return "\033[32m" + s + "\033[0m" }
