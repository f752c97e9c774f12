package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

var testnetStake uint32

var testnetCmd = &cobra.Command{
	Use:   "testnet",
	Short: "Run the local-network staking flow",
	Long: `Run the mock staking flow against a local anvil network.
Only available with --chain-id=31337.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperator(cmd, config.Testnet(testnetStake))
	},
}

func init() {
	testnetCmd.Flags().Uint32Var(&testnetStake, "stake", config.DefaultTestnetStake, "amount to stake")
	rootCmd.AddCommand(testnetCmd)
}
