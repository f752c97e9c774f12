// Package app wires a validated configuration into a running operator
// process: credential resolution, signer construction, chain clients and
// command dispatch.
package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Saeed76a/eigen-layer-monorepo/internal/metric"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/avs"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/keystore"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/operator/api"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/signer"
)

const defaultAPIPort = 8645

// App holds the wired dependencies of one operator invocation.
type App struct {
	ctx context.Context
	cfg *config.Config

	provider keystore.Provider
	signer   signer.Signer
	client   avs.Registrar

	metricServer *metric.Server
	apiServer    *api.Server
}

// New creates an application instance with the default keystore provider.
func New(ctx context.Context) *App {
	return &App{
		ctx:      ctx,
		provider: keystore.NewEthProvider(),
	}
}

// Run resolves credentials, connects to the chain and executes the selected
// command (or the default operator loop). All failures are terminal; nothing
// is retried.
func (a *App) Run(cfg *config.Config) error {
	a.cfg = cfg

	if err := a.initSigner(); err != nil {
		return err
	}
	if err := a.initClient(); err != nil {
		return err
	}
	defer a.client.Close()

	return a.dispatch()
}

// initSigner resolves both key groups and builds the signer. The two
// resolutions are independent; neither sees the other's state.
func (a *App) initSigner() error {
	ecdsaKs, err := keystore.Resolve(a.provider, a.cfg.EcdsaKey, a.cfg.EcdsaKeyPassword)
	if err != nil {
		return fmt.Errorf("ecdsa key group: %w", err)
	}
	blsKs, err := keystore.Resolve(a.provider, a.cfg.BlsKey, a.cfg.BlsKeyPassword)
	if err != nil {
		return fmt.Errorf("bls key group: %w", err)
	}

	s, err := signer.New(ecdsaKs, blsKs)
	if err != nil {
		return fmt.Errorf("failed to build signer: %w", err)
	}
	a.signer = s

	log.Info().
		Str("operator", s.OperatorAddress().Hex()).
		Str("ecdsa_source", a.cfg.EcdsaKey.Kind().String()).
		Str("bls_source", a.cfg.BlsKey.Kind().String()).
		Msg("signing identities resolved")
	return nil
}

func (a *App) initClient() error {
	client, err := avs.NewClient(a.ctx, a.cfg, a.signer)
	if err != nil {
		return fmt.Errorf("failed to connect to chain: %w", err)
	}
	a.client = client
	return nil
}

// dispatch hands the validated command to its collaborator. It performs no
// chain or cryptographic work of its own.
func (a *App) dispatch() error {
	if a.cfg.Command == nil {
		return a.runOperatorLoop()
	}

	name := a.cfg.Command.Kind.String()
	started := time.Now()
	metric.RecordCommand(name)
	defer func() { metric.RecordCommandDuration(name, time.Since(started)) }()

	switch a.cfg.Command.Kind {
	case config.CommandOptInAVS:
		return a.client.OptIn(a.ctx)
	case config.CommandOptOutAVS:
		return a.client.OptOut(a.ctx)
	case config.CommandPrintStatus:
		return a.client.PrintStatus(a.ctx)
	case config.CommandTestnet:
		return a.client.TestnetStake(a.ctx, a.cfg.Command.Stake)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

// runOperatorLoop is the default mode: optionally opt in, then serve the
// metric and status endpoints until interrupted.
func (a *App) runOperatorLoop() error {
	if a.cfg.RegisterAtStartup {
		if err := a.client.OptIn(a.ctx); err != nil {
			return fmt.Errorf("register at startup: %w", err)
		}
	}

	a.metricServer = metric.New(nil)
	go func() {
		if err := a.metricServer.Start(); err != nil {
			log.Error().Err(err).Msg("metric server stopped")
		}
	}()

	statusReader, ok := a.client.(api.StatusReader)
	if ok {
		a.apiServer = api.NewServer(api.NewHandler(statusReader), apiPort(a.cfg.AVSRPCURL))
		go func() {
			if err := a.apiServer.Start(); err != nil {
				log.Error().Err(err).Msg("api server stopped")
			}
		}()
	}

	metric.RecordCommand("operator_loop")
	log.Info().Msg("operator node started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("received interrupt signal, shutting down")
	return a.Shutdown()
}

// Shutdown stops the long-running servers gracefully.
func (a *App) Shutdown() error {
	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			return fmt.Errorf("api server shutdown: %w", err)
		}
	}
	return nil
}

// apiPort extracts the port of the configured AVS RPC endpoint, which is
// the address this node serves its own API on.
func apiPort(avsRPCURL string) int {
	u, err := url.Parse(avsRPCURL)
	if err != nil || u.Port() == "" {
		return defaultAPIPort
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return defaultAPIPort
	}
	return port
}
