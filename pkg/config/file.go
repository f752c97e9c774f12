package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileValues mirrors the flag surface in an operator.yaml file. The file is
// the lowest-precedence configuration source: it only fills options that
// neither argv nor the environment provided. Passwords are deliberately not
// part of the file schema.
type fileValues struct {
	AVSServiceManagerAddr         string `yaml:"avs_service_manager_addr"`
	BLSCompendiumAddr             string `yaml:"bls_compendium_addr"`
	BLSOperatorStateRetrieverAddr string `yaml:"bls_operator_state_retriever_addr"`

	SubstrateRPCURL string `yaml:"substrate_rpc_url"`
	EthRPCURL       string `yaml:"eth_rpc_url"`
	EthWSURL        string `yaml:"eth_ws_url"`
	AVSRPCURL       string `yaml:"avs_rpc_url"`

	ChainID uint64 `yaml:"chain_id"`

	EcdsaKeyFile string `yaml:"ecdsa_key_file"`
	BlsKeyFile   string `yaml:"bls_key_file"`

	RegisterAtStartup bool `yaml:"register_at_startup"`
}

// ApplyFile merges values from the yaml file at path into any options left
// unset by flags and environment. Environment references inside the file
// ($VAR) are expanded before parsing.
func (o *Options) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fv fileValues
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &fv); err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	if o.AVSServiceManagerAddr == "" {
		o.AVSServiceManagerAddr = fv.AVSServiceManagerAddr
	}
	if o.BLSCompendiumAddr == "" {
		o.BLSCompendiumAddr = fv.BLSCompendiumAddr
	}
	if o.BLSOperatorStateRetrieverAddr == "" {
		o.BLSOperatorStateRetrieverAddr = fv.BLSOperatorStateRetrieverAddr
	}
	if o.SubstrateRPCURL == "" {
		o.SubstrateRPCURL = fv.SubstrateRPCURL
	}
	if o.EthRPCURL == "" {
		o.EthRPCURL = fv.EthRPCURL
	}
	if o.EthWSURL == "" {
		o.EthWSURL = fv.EthWSURL
	}
	if o.AVSRPCURL == "" {
		o.AVSRPCURL = fv.AVSRPCURL
	}
	if o.ChainID == 0 {
		o.ChainID = fv.ChainID
	}
	if o.EcdsaKeyFile == "" && o.EcdsaKeyJSON == "" && !o.EcdsaEphemeralKey {
		o.EcdsaKeyFile = fv.EcdsaKeyFile
	}
	if o.BlsKeyFile == "" && o.BlsKeyJSON == "" && !o.BlsEphemeralKey {
		o.BlsKeyFile = fv.BlsKeyFile
	}
	if !o.RegisterAtStartup {
		o.RegisterAtStartup = fv.RegisterAtStartup
	}
	return nil
}
