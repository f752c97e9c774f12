package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

var statusCmd = &cobra.Command{
	Use:   "print-status",
	Short: "Print the operator's on-chain status and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperator(cmd, config.PrintStatus())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
