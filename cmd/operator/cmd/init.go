package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize operator configuration",
	Long: `Initialize operator configuration with interactive prompts.
Default values will be used if you press enter without input.
Passwords are never written to the file; supply them via flags or the
environment at start time.`,
	RunE: runInit,
}

var initConfigPath string

func init() {
	initCmd.Flags().StringVarP(&initConfigPath, "config", "c", "config/operator.yaml", "config file path to write")
	rootCmd.AddCommand(initCmd)
}

// configAnswers holds the interactive answers; its yaml shape matches the
// config file schema read at startup.
type configAnswers struct {
	AVSServiceManagerAddr         string `yaml:"avs_service_manager_addr"`
	BLSCompendiumAddr             string `yaml:"bls_compendium_addr"`
	BLSOperatorStateRetrieverAddr string `yaml:"bls_operator_state_retriever_addr"`
	SubstrateRPCURL               string `yaml:"substrate_rpc_url"`
	EthRPCURL                     string `yaml:"eth_rpc_url"`
	EthWSURL                      string `yaml:"eth_ws_url"`
	AVSRPCURL                     string `yaml:"avs_rpc_url"`
	ChainID                       uint64 `yaml:"chain_id"`
	EcdsaKeyFile                  string `yaml:"ecdsa_key_file"`
	BlsKeyFile                    string `yaml:"bls_key_file"`
	RegisterAtStartup             bool   `yaml:"register_at_startup"`
}

func runInit(cmd *cobra.Command, args []string) error {
	questions := []*survey.Question{
		{
			Name:     "AVSServiceManagerAddr",
			Prompt:   &survey.Input{Message: "AVS service manager contract address:"},
			Validate: survey.Required,
		},
		{
			Name:     "BLSCompendiumAddr",
			Prompt:   &survey.Input{Message: "BLS compendium contract address:"},
			Validate: survey.Required,
		},
		{
			Name:     "BLSOperatorStateRetrieverAddr",
			Prompt:   &survey.Input{Message: "BLS operator state retriever contract address:"},
			Validate: survey.Required,
		},
		{
			Name:   "SubstrateRPCURL",
			Prompt: &survey.Input{Message: "Substrate RPC endpoint:", Default: "ws://localhost:9944"},
		},
		{
			Name:   "EthRPCURL",
			Prompt: &survey.Input{Message: "Ethereum RPC endpoint:", Default: "http://localhost:8545"},
		},
		{
			Name:   "EthWSURL",
			Prompt: &survey.Input{Message: "Ethereum websocket endpoint:", Default: "ws://localhost:8546"},
		},
		{
			Name:   "AVSRPCURL",
			Prompt: &survey.Input{Message: "AVS RPC endpoint for this node:", Default: "http://0.0.0.0:8645"},
		},
		{
			Name:   "ChainID",
			Prompt: &survey.Input{Message: "Chain id:", Default: "31337"},
		},
		{
			Name:   "EcdsaKeyFile",
			Prompt: &survey.Input{Message: "ECDSA keystore file path (leave empty to pass by flag):"},
		},
		{
			Name:   "BlsKeyFile",
			Prompt: &survey.Input{Message: "BLS keystore file path (leave empty to pass by flag):"},
		},
		{
			Name:   "RegisterAtStartup",
			Prompt: &survey.Confirm{Message: "Opt in to the AVS at startup?", Default: false},
		},
	}

	var answers configAnswers
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	data, err := yaml.Marshal(&answers)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(initConfigPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(initConfigPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", initConfigPath)
	return nil
}
