package config

import (
	"errors"
	"fmt"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// AnvilChainID is the conventional anvil/hardhat local network chain id.
// Everything else is treated as a real network.
const AnvilChainID = uint64(31337)

// ErrCommandNotAllowedOnNetwork is returned when a subcommand restricted to
// the local test network is selected while --chain-id points elsewhere.
var ErrCommandNotAllowedOnNetwork = errors.New("testnet command is only available with anvil testnet `--chain-id=31337`")

// Options carries the raw flag/environment input of one invocation. It is
// folded into a validated Config by Build and discarded afterwards.
type Options struct {
	AVSServiceManagerAddr         string
	BLSCompendiumAddr             string
	BLSOperatorStateRetrieverAddr string

	SubstrateRPCURL string
	EthRPCURL       string
	EthWSURL        string
	AVSRPCURL       string

	ChainID uint64

	EcdsaKeyFile      string
	EcdsaKeyJSON      string
	EcdsaEphemeralKey bool
	EcdsaKeyPassword  string

	BlsKeyFile      string
	BlsKeyJSON      string
	BlsEphemeralKey bool
	BlsKeyPassword  string

	RegisterAtStartup bool

	Command *Command
}

// Config is the validated, immutable operator configuration. It is built
// once at startup; nothing mutates it afterwards. Passwords and inline key
// material are held in Secret wrappers and never serialize.
type Config struct {
	AVSServiceManagerAddr         ethcommon.Address `yaml:"avs_service_manager_addr" json:"avs_service_manager_addr"`
	BLSCompendiumAddr             ethcommon.Address `yaml:"bls_compendium_addr" json:"bls_compendium_addr"`
	BLSOperatorStateRetrieverAddr ethcommon.Address `yaml:"bls_operator_state_retriever_addr" json:"bls_operator_state_retriever_addr"`

	SubstrateRPCURL string `yaml:"substrate_rpc_url" json:"substrate_rpc_url"`
	EthRPCURL       string `yaml:"eth_rpc_url" json:"eth_rpc_url"`
	EthWSURL        string `yaml:"eth_ws_url" json:"eth_ws_url"`
	AVSRPCURL       string `yaml:"avs_rpc_url" json:"avs_rpc_url"`

	ChainID uint64 `yaml:"chain_id" json:"chain_id"`

	EcdsaKey         KeySource `yaml:"ecdsa_key" json:"ecdsa_key"`
	EcdsaKeyPassword Secret    `yaml:"ecdsa_key_password" json:"ecdsa_key_password"`

	BlsKey         KeySource `yaml:"bls_key" json:"bls_key"`
	BlsKeyPassword Secret    `yaml:"bls_key_password" json:"bls_key_password"`

	RegisterAtStartup bool `yaml:"register_at_startup" json:"register_at_startup"`

	Command *Command `yaml:"command,omitempty" json:"command,omitempty"`
}

// Build validates the raw options and produces the Config. It never
// terminates the process itself; the CLI boundary decides how to report a
// returned error.
func (o Options) Build() (*Config, error) {
	serviceManager, err := parseAddress("avs-service-manager-addr", o.AVSServiceManagerAddr)
	if err != nil {
		return nil, err
	}
	compendium, err := parseAddress("bls-compendium-addr", o.BLSCompendiumAddr)
	if err != nil {
		return nil, err
	}
	stateRetriever, err := parseAddress("bls-operator-state-retriever-addr", o.BLSOperatorStateRetrieverAddr)
	if err != nil {
		return nil, err
	}

	for _, ep := range []struct {
		flag  string
		value string
	}{
		{"substrate-rpc-url", o.SubstrateRPCURL},
		{"eth-rpc-url", o.EthRPCURL},
		{"eth-ws-url", o.EthWSURL},
		{"avs-rpc-url", o.AVSRPCURL},
	} {
		if ep.value == "" {
			return nil, fmt.Errorf("--%s is required", ep.flag)
		}
	}

	if o.ChainID == 0 {
		return nil, fmt.Errorf("--chain-id is required")
	}

	ecdsaKey, err := newKeySource("ecdsa", o.EcdsaKeyFile, o.EcdsaKeyJSON, o.EcdsaEphemeralKey)
	if err != nil {
		return nil, err
	}
	blsKey, err := newKeySource("bls", o.BlsKeyFile, o.BlsKeyJSON, o.BlsEphemeralKey)
	if err != nil {
		return nil, err
	}

	if o.ChainID != AnvilChainID {
		if o.Command != nil && o.Command.Kind == CommandTestnet {
			return nil, ErrCommandNotAllowedOnNetwork
		}
		if ecdsaKey.Kind() == SourceEphemeral || blsKey.Kind() == SourceEphemeral {
			log.Warn().
				Uint64("chain_id", o.ChainID).
				Msg("running with ephemeral keys is unsafe outside test networks")
		}
	}

	return &Config{
		AVSServiceManagerAddr:         serviceManager,
		BLSCompendiumAddr:             compendium,
		BLSOperatorStateRetrieverAddr: stateRetriever,
		SubstrateRPCURL:               o.SubstrateRPCURL,
		EthRPCURL:                     o.EthRPCURL,
		EthWSURL:                      o.EthWSURL,
		AVSRPCURL:                     o.AVSRPCURL,
		ChainID:                       o.ChainID,
		EcdsaKey:                      ecdsaKey,
		EcdsaKeyPassword:              NewSecret(o.EcdsaKeyPassword),
		BlsKey:                        blsKey,
		BlsKeyPassword:                NewSecret(o.BlsKeyPassword),
		RegisterAtStartup:             o.RegisterAtStartup,
		Command:                       o.Command,
	}, nil
}

func parseAddress(flag string, value string) (ethcommon.Address, error) {
	if value == "" {
		return ethcommon.Address{}, fmt.Errorf("--%s is required", flag)
	}
	if !ethcommon.IsHexAddress(value) {
		return ethcommon.Address{}, fmt.Errorf("--%s: invalid address %q", flag, value)
	}
	return ethcommon.HexToAddress(value), nil
}
