package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

var optOutCmd = &cobra.Command{
	Use:   "opt-out-avs",
	Short: "Deregister the operator from the AVS and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperator(cmd, config.OptOutAVS())
	},
}

func init() {
	rootCmd.AddCommand(optOutCmd)
}
