package main

import "github.com/spf13/cobra"

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt [key]...",
	Short: "Decrypt text with the selected cipher",
	Long: `Decrypt text with the cipher selected by --cipher, using the same
key resolution as encrypt. Digram ciphers keep their padding letters;
stripping fillers is left to the reader.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(false, args)
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
