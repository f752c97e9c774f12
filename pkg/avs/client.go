// Package avs talks to the AVS contracts on behalf of the operator:
// opt-in/opt-out registration, status queries and the local-network staking
// flow. Heavy lifting (ABI encoding, transports) is go-ethereum's.
package avs

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/signer"
)

// Registrar is the command-dispatch surface consumed by the app layer.
type Registrar interface {
	OptIn(ctx context.Context) error
	OptOut(ctx context.Context) error
	PrintStatus(ctx context.Context) error
	TestnetStake(ctx context.Context, stake uint32) error
	IsRegistered(ctx context.Context) (bool, error)
	Close()
}

// Client implements Registrar over an HTTP RPC connection plus a websocket
// connection for subscriptions.
type Client struct {
	eth *ethclient.Client
	ws  *ethclient.Client

	serviceManager *bind.BoundContract
	compendium     *bind.BoundContract

	cfg    *config.Config
	signer signer.Signer
}

var _ Registrar = (*Client)(nil)

// NewClient dials both endpoints and verifies the node is actually serving
// the configured chain id before anything else happens.
func NewClient(ctx context.Context, cfg *config.Config, s signer.Signer) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.EthRPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial eth rpc %s: %w", cfg.EthRPCURL, err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to query chain id: %w", err)
	}
	if chainID.Uint64() != cfg.ChainID {
		eth.Close()
		return nil, fmt.Errorf("chain id mismatch: node reports %d, configured %d", chainID.Uint64(), cfg.ChainID)
	}

	ws, err := ethclient.DialContext(ctx, cfg.EthWSURL)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("failed to dial eth ws %s: %w", cfg.EthWSURL, err)
	}

	serviceManager, err := bindServiceManager(cfg.AVSServiceManagerAddr, eth)
	if err != nil {
		eth.Close()
		ws.Close()
		return nil, err
	}
	compendium, err := bindCompendium(cfg.BLSCompendiumAddr, eth)
	if err != nil {
		eth.Close()
		ws.Close()
		return nil, err
	}

	return &Client{
		eth:            eth,
		ws:             ws,
		serviceManager: serviceManager,
		compendium:     compendium,
		cfg:            cfg,
		signer:         s,
	}, nil
}

// OperatorStatusNone is the unregistered operatorStatus value.
const OperatorStatusNone = uint8(0)

// IsRegistered reports whether the operator is opted in to the AVS.
func (c *Client) IsRegistered(ctx context.Context) (bool, error) {
	var out []interface{}
	err := c.serviceManager.Call(&bind.CallOpts{Context: ctx}, &out, "operatorStatus", c.signer.OperatorAddress())
	if err != nil {
		return false, fmt.Errorf("operatorStatus call failed: %w", err)
	}
	status, ok := out[0].(uint8)
	if !ok {
		return false, fmt.Errorf("operatorStatus: unexpected return type %T", out[0])
	}
	return status != OperatorStatusNone, nil
}

// OptIn registers the operator with the AVS.
func (c *Client) OptIn(ctx context.Context) error {
	registered, err := c.IsRegistered(ctx)
	if err != nil {
		return err
	}
	if registered {
		log.Info().Msg("operator already registered with AVS")
		return nil
	}

	opts, err := c.transactorOpts(ctx)
	if err != nil {
		return err
	}
	tx, err := c.serviceManager.Transact(opts, "registerOperator", c.signer.OperatorAddress())
	if err != nil {
		return fmt.Errorf("registerOperator failed: %w", err)
	}
	log.Info().Str("tx", tx.Hash().Hex()).Msg("opt-in transaction submitted")
	return nil
}

// OptOut deregisters the operator from the AVS.
func (c *Client) OptOut(ctx context.Context) error {
	opts, err := c.transactorOpts(ctx)
	if err != nil {
		return err
	}
	tx, err := c.serviceManager.Transact(opts, "deregisterOperator", c.signer.OperatorAddress())
	if err != nil {
		return fmt.Errorf("deregisterOperator failed: %w", err)
	}
	log.Info().Str("tx", tx.Hash().Hex()).Msg("opt-out transaction submitted")
	return nil
}

// TestnetStake runs the anvil-only mock staking flow.
func (c *Client) TestnetStake(ctx context.Context, stake uint32) error {
	opts, err := c.transactorOpts(ctx)
	if err != nil {
		return err
	}
	tx, err := c.serviceManager.Transact(opts, "stakeIntoMockStrategy", new(big.Int).SetUint64(uint64(stake)))
	if err != nil {
		return fmt.Errorf("stakeIntoMockStrategy failed: %w", err)
	}
	log.Info().Str("tx", tx.Hash().Hex()).Uint32("stake", stake).Msg("testnet stake transaction submitted")
	return nil
}

// PrintStatus queries and logs the operator's on-chain standing.
func (c *Client) PrintStatus(ctx context.Context) error {
	status, err := c.Status(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Str("operator", status.Operator.Hex()).
		Uint64("chain_id", status.ChainID).
		Uint64("block", status.BlockNumber).
		Str("balance_wei", status.Balance.String()).
		Bool("registered", status.Registered).
		Str("substrate_rpc", status.SubstrateRPCURL).
		Str("avs_rpc", status.AVSRPCURL).
		Msg("operator status")
	return nil
}

// Status is a point-in-time snapshot of the operator's standing.
type Status struct {
	Operator        ethcommon.Address
	ChainID         uint64
	BlockNumber     uint64
	Balance         *big.Int
	Registered      bool
	SubstrateRPCURL string
	AVSRPCURL       string
}

// Status collects the snapshot behind PrintStatus.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	operator := c.signer.OperatorAddress()

	block, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query block number: %w", err)
	}
	balance, err := c.eth.BalanceAt(ctx, operator, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance: %w", err)
	}
	registered, err := c.IsRegistered(ctx)
	if err != nil {
		return nil, err
	}

	return &Status{
		Operator:        operator,
		ChainID:         c.cfg.ChainID,
		BlockNumber:     block,
		Balance:         balance,
		Registered:      registered,
		SubstrateRPCURL: c.cfg.SubstrateRPCURL,
		AVSRPCURL:       c.cfg.AVSRPCURL,
	}, nil
}

func (c *Client) transactorOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := c.signer.TransactorOpts(new(big.Int).SetUint64(c.cfg.ChainID))
	if err != nil {
		return nil, fmt.Errorf("failed to build transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// Close tears down both connections.
func (c *Client) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
	if c.ws != nil {
		c.ws.Close()
	}
}
