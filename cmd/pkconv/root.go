package main

import (
	"github.com/spf13/cobra"

	"github.com/cosmoskit/pubkeycodec/cmd/pkconv/convert"
	"github.com/cosmoskit/pubkeycodec/constants"
)

// NewRootCmd creates the root command for the converter binary. It is called
// once in the main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.ApplicationBinaryName,
		Short: "Convert cosmos public keys between raw bytes, tagged binary and bech32 text",
	}

	rootCmd.AddCommand(
		convert.PubKeyCmd(),
	)

	return rootCmd
}
