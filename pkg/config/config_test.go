package config_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

func validOptions() config.Options {
	return config.Options{
		AVSServiceManagerAddr:         "0x0000000000000000000000000000000000000001",
		BLSCompendiumAddr:             "0x0000000000000000000000000000000000000002",
		BLSOperatorStateRetrieverAddr: "0x0000000000000000000000000000000000000003",
		SubstrateRPCURL:               "ws://localhost:9944",
		EthRPCURL:                     "http://localhost:8545",
		EthWSURL:                      "ws://localhost:8546",
		AVSRPCURL:                     "http://localhost:8645",
		ChainID:                       31337,
		EcdsaKeyFile:                  "/keys/ecdsa.json",
		EcdsaKeyPassword:              "ecdsa-hunter2",
		BlsKeyFile:                    "/keys/bls.json",
		BlsKeyPassword:                "bls-hunter2",
	}
}

func TestBuildValid(t *testing.T) {
	cfg, err := validOptions().Build()
	require.NoError(t, err)

	assert.Equal(t, uint64(31337), cfg.ChainID)
	assert.Equal(t, config.SourceFile, cfg.EcdsaKey.Kind())
	assert.Equal(t, "/keys/ecdsa.json", cfg.EcdsaKey.Path())
	assert.Equal(t, config.SourceFile, cfg.BlsKey.Kind())
	assert.False(t, cfg.RegisterAtStartup)
	assert.Nil(t, cfg.Command)
	assert.Equal(t, "ecdsa-hunter2", cfg.EcdsaKeyPassword.Unwrap())
}

func TestBuildKeyGroupExclusivity(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *config.Options)
		wantErr bool
		kind    config.SourceKind
	}{
		{
			name:    "no source",
			mutate:  func(o *config.Options) { o.EcdsaKeyFile = "" },
			wantErr: true,
		},
		{
			name:    "file and json",
			mutate:  func(o *config.Options) { o.EcdsaKeyJSON = `{"version":3}` },
			wantErr: true,
		},
		{
			name: "file and ephemeral",
			mutate: func(o *config.Options) {
				o.EcdsaEphemeralKey = true
			},
			wantErr: true,
		},
		{
			name: "all three",
			mutate: func(o *config.Options) {
				o.EcdsaKeyJSON = `{"version":3}`
				o.EcdsaEphemeralKey = true
			},
			wantErr: true,
		},
		{
			name:   "file only",
			mutate: func(o *config.Options) {},
			kind:   config.SourceFile,
		},
		{
			name: "json only",
			mutate: func(o *config.Options) {
				o.EcdsaKeyFile = ""
				o.EcdsaKeyJSON = `{"version":3}`
			},
			kind: config.SourceInline,
		},
		{
			name: "ephemeral only",
			mutate: func(o *config.Options) {
				o.EcdsaKeyFile = ""
				o.EcdsaEphemeralKey = true
			},
			kind: config.SourceEphemeral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)
			cfg, err := opts.Build()
			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidKeyGroup)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, cfg.EcdsaKey.Kind())
		})
	}
}

func TestBuildBlsKeyGroupValidatedIndependently(t *testing.T) {
	opts := validOptions()
	opts.BlsKeyFile = ""
	_, err := opts.Build()
	require.ErrorIs(t, err, config.ErrInvalidKeyGroup)

	opts = validOptions()
	opts.BlsKeyFile = ""
	opts.BlsEphemeralKey = true
	cfg, err := opts.Build()
	require.NoError(t, err)
	assert.Equal(t, config.SourceEphemeral, cfg.BlsKey.Kind())
	assert.Equal(t, config.SourceFile, cfg.EcdsaKey.Kind())
}

func TestBuildTestnetGate(t *testing.T) {
	opts := validOptions()
	opts.ChainID = 1
	opts.Command = config.Testnet(config.DefaultTestnetStake)

	_, err := opts.Build()
	require.ErrorIs(t, err, config.ErrCommandNotAllowedOnNetwork)

	// Same command passes on anvil.
	opts.ChainID = 31337
	cfg, err := opts.Build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Command)
	assert.Equal(t, config.CommandTestnet, cfg.Command.Kind)
	assert.Equal(t, uint32(100), cfg.Command.Stake)
}

func TestBuildTestnetStakeOverride(t *testing.T) {
	opts := validOptions()
	opts.Command = config.Testnet(500)
	cfg, err := opts.Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(500), cfg.Command.Stake)
}

func TestBuildEphemeralWarningOnRealNetwork(t *testing.T) {
	var buf bytes.Buffer
	orig := zlog.Logger
	zlog.Logger = zerolog.New(&buf)
	defer func() { zlog.Logger = orig }()

	opts := validOptions()
	opts.ChainID = 1
	opts.EcdsaKeyFile = ""
	opts.EcdsaEphemeralKey = true

	cfg, err := opts.Build()
	require.NoError(t, err)
	assert.Equal(t, config.SourceEphemeral, cfg.EcdsaKey.Kind())
	assert.Contains(t, buf.String(), "ephemeral keys is unsafe")

	// No warning on anvil.
	buf.Reset()
	opts.ChainID = 31337
	_, err = opts.Build()
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestBuildInvalidAddress(t *testing.T) {
	opts := validOptions()
	opts.BLSCompendiumAddr = "not-an-address"
	_, err := opts.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bls-compendium-addr")
}

func TestBuildMissingEndpoint(t *testing.T) {
	opts := validOptions()
	opts.EthWSURL = ""
	_, err := opts.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eth-ws-url")
}

func TestSecretsNeverSerialized(t *testing.T) {
	opts := validOptions()
	opts.BlsKeyFile = ""
	opts.BlsKeyJSON = `{"version":3,"crypto":{"cipher":"aes-128-ctr"}}`
	cfg, err := opts.Build()
	require.NoError(t, err)

	yamlOut, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	jsonOut, err := json.Marshal(cfg)
	require.NoError(t, err)
	debugOut := fmt.Sprintf("%+v %#v %v", cfg, cfg, cfg)

	for _, rendered := range []string{string(yamlOut), string(jsonOut), debugOut} {
		assert.NotContains(t, rendered, "ecdsa-hunter2")
		assert.NotContains(t, rendered, "bls-hunter2")
		assert.NotContains(t, rendered, "aes-128-ctr")
	}
}

func TestKeySourceRenderingOmitsInlineContent(t *testing.T) {
	inline := config.InlineKeySource(`{"version":3,"crypto":{"cipher":"aes-128-ctr"}}`)

	// fmt cannot reach the wrapped secret's own redaction through the
	// unexported field, so the source must stop the traversal itself.
	for _, rendered := range []string{
		fmt.Sprintf("%v", inline),
		fmt.Sprintf("%+v", inline),
		fmt.Sprintf("%#v", inline),
		fmt.Sprintf("%s", inline),
	} {
		assert.NotContains(t, rendered, "aes-128-ctr")
		assert.Contains(t, rendered, "inline")
	}

	file := config.FileKeySource("/keys/op.json")
	assert.Equal(t, "file(/keys/op.json)", file.String())
	assert.Equal(t, "ephemeral", config.EphemeralKeySource().String())
}

func TestApplyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "operator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
avs_service_manager_addr: "0x0000000000000000000000000000000000000011"
eth_rpc_url: "http://file:8545"
chain_id: 31337
ecdsa_key_file: "/file/ecdsa.json"
`), 0o600))

	opts := config.Options{
		// Flag/env value must win over the file.
		EthRPCURL: "http://flag:8545",
		// Ephemeral choice must suppress the file's key path.
		BlsEphemeralKey: true,
	}
	require.NoError(t, opts.ApplyFile(path))

	assert.Equal(t, "0x0000000000000000000000000000000000000011", opts.AVSServiceManagerAddr)
	assert.Equal(t, "http://flag:8545", opts.EthRPCURL)
	assert.Equal(t, uint64(31337), opts.ChainID)
	assert.Equal(t, "/file/ecdsa.json", opts.EcdsaKeyFile)
	assert.Empty(t, opts.BlsKeyFile)
}

func TestApplyFileMissing(t *testing.T) {
	opts := config.Options{}
	err := opts.ApplyFile("/nonexistent/operator.yaml")
	require.Error(t, err)
}
