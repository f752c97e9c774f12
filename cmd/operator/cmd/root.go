package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Saeed76a/eigen-layer-monorepo/cmd/operator/app"
	otelzerolog "github.com/Saeed76a/eigen-layer-monorepo/internal/zerolog"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

var (
	// Version information, set at build time
	Version   = "1.0.0"
	CommitSHA = "unknown"
	BuildTime = "unknown"

	// Global flags
	cfgFile   string
	debugMode bool

	opts config.Options
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "avs-finalizer",
	Short: "AVS Finalizer Operator Node",
	Long: `AVS Finalizer Operator Node registers with the AVS contracts and
finalizes rollup blocks.

Every flag can also be supplied through an identically named environment
variable (SCREAMING_SNAKE_CASE, e.g. ETH_RPC_URL for --eth-rpc-url); flags
given on the command line take precedence. A .env file in the working
directory is loaded first.

Key sources (per key group, exactly one required):
1. Encrypted keystore file:
   --ecdsa-key-file /path/to/keystore.json --ecdsa-key-password yourpassword

2. Inline keystore JSON:
   --ecdsa-key-json '{"version":3,...}'

3. Fresh random key (test networks only):
   --ecdsa-ephemeral-key`,
	Version:      fmt.Sprintf("%s (Build: %s, Commit: %s)", Version, BuildTime, CommitSHA),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		_ = godotenv.Load()
		if err := applyEnvFallback(cmd.Flags()); err != nil {
			return err
		}
		otelzerolog.InitLogger(debugMode)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperator(cmd, nil)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	fl := rootCmd.PersistentFlags()

	fl.StringVar(&cfgFile, "config", "", "optional config file (lowest precedence source)")
	fl.BoolVar(&debugMode, "debug", false, "enable debug logging")

	fl.StringVar(&opts.AVSServiceManagerAddr, "avs-service-manager-addr", "", "AVS service manager contract address")
	fl.StringVar(&opts.BLSCompendiumAddr, "bls-compendium-addr", "", "BLS public key compendium contract address")
	fl.StringVar(&opts.BLSOperatorStateRetrieverAddr, "bls-operator-state-retriever-addr", "", "BLS operator state retriever contract address")

	fl.StringVar(&opts.SubstrateRPCURL, "substrate-rpc-url", "", "substrate chain RPC endpoint")
	fl.StringVar(&opts.EthRPCURL, "eth-rpc-url", "", "ethereum RPC endpoint")
	fl.StringVar(&opts.EthWSURL, "eth-ws-url", "", "ethereum websocket endpoint")
	fl.StringVar(&opts.AVSRPCURL, "avs-rpc-url", "", "this node's AVS RPC endpoint")

	fl.Uint64Var(&opts.ChainID, "chain-id", 0, "ethereum chain id")

	fl.StringVar(&opts.EcdsaKeyFile, "ecdsa-key-file", "", "path to encrypted ECDSA keystore file")
	fl.StringVar(&opts.EcdsaKeyJSON, "ecdsa-key-json", "", "inline encrypted ECDSA keystore JSON")
	fl.BoolVar(&opts.EcdsaEphemeralKey, "ecdsa-ephemeral-key", false, "generate a fresh ECDSA key (test networks only)")
	fl.StringVar(&opts.EcdsaKeyPassword, "ecdsa-key-password", "", "password for the ECDSA keystore")

	fl.StringVar(&opts.BlsKeyFile, "bls-key-file", "", "path to encrypted BLS keystore file")
	fl.StringVar(&opts.BlsKeyJSON, "bls-key-json", "", "inline encrypted BLS keystore JSON")
	fl.BoolVar(&opts.BlsEphemeralKey, "bls-ephemeral-key", false, "generate a fresh BLS key (test networks only)")
	fl.StringVar(&opts.BlsKeyPassword, "bls-key-password", "", "password for the BLS keystore")

	fl.BoolVar(&opts.RegisterAtStartup, "register-at-startup", false, "opt in to the AVS before starting the operator loop")

	rootCmd.SetVersionTemplate(`Version: {{.Version}}
`)
}

// applyEnvFallback lets every unset flag fall back to the identically named
// environment variable. Resolved once at startup; the environment is never
// consulted again. A malformed value fails here rather than reappearing
// later as a missing-flag error.
func applyEnvFallback(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		if value, ok := os.LookupEnv(envKey(f.Name)); ok {
			if setErr := flags.Set(f.Name, value); setErr != nil {
				err = fmt.Errorf("environment variable %s: %w", envKey(f.Name), setErr)
			}
		}
	})
	return err
}

func envKey(flagName string) string {
	return strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// runOperator folds flags, environment and the optional config file into a
// validated configuration, then hands off to the app. Validation errors are
// returned so cobra reports them usage-style on stderr and main exits
// non-zero; nothing network- or crypto-related has run by then.
func runOperator(cmd *cobra.Command, command *config.Command) error {
	if cfgFile != "" {
		if err := opts.ApplyFile(cfgFile); err != nil {
			return err
		}
	}
	opts.Command = command

	cfg, err := opts.Build()
	if err != nil {
		return err
	}

	return app.New(cmd.Context()).Run(cfg)
}
