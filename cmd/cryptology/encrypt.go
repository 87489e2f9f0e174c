package main

import "github.com/spf13/cobra"

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt [key]...",
	Short: "Encrypt text with the selected cipher",
	Long: `Encrypt text with the cipher selected by --cipher. Keys come from
repeated --key flags, positional arguments, the CRYPTOLOGY_KEYS
environment variable, or an interactive prompt.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(true, args)
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
}
