package avs

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// Minimal ABI fragments for the calls this node makes. The full generated
// bindings live with the contract repo; only the operator-facing surface is
// bound here.
const serviceManagerABI = `[
  {"inputs":[{"name":"operator","type":"address"}],"name":"registerOperator","outputs":[],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[{"name":"operator","type":"address"}],"name":"deregisterOperator","outputs":[],"stateMutability":"nonpayable","type":"function"},
  {"inputs":[{"name":"operator","type":"address"}],"name":"operatorStatus","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"},
  {"inputs":[{"name":"amount","type":"uint256"}],"name":"stakeIntoMockStrategy","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const compendiumABI = `[
  {"inputs":[{"name":"operator","type":"address"}],"name":"getRegisteredPubkey","outputs":[{"name":"x","type":"uint256"},{"name":"y","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

func bindServiceManager(addr ethcommon.Address, backend bind.ContractBackend) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(serviceManagerABI))
	if err != nil {
		return nil, fmt.Errorf("parse service manager abi: %w", err)
	}
	return bind.NewBoundContract(addr, parsed, backend, backend, backend), nil
}

func bindCompendium(addr ethcommon.Address, backend bind.ContractBackend) (*bind.BoundContract, error) {
	parsed, err := abi.JSON(strings.NewReader(compendiumABI))
	if err != nil {
		return nil, fmt.Errorf("parse compendium abi: %w", err)
	}
	return bind.NewBoundContract(addr, parsed, backend, backend, backend), nil
}
