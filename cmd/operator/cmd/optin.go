package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

var optInCmd = &cobra.Command{
	Use:   "opt-in-avs",
	Short: "Register the operator with the AVS and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperator(cmd, config.OptInAVS())
	},
}

func init() {
	rootCmd.AddCommand(optInCmd)
}
