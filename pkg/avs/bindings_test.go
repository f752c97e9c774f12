package avs

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceManagerABIParses(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(serviceManagerABI))
	require.NoError(t, err)

	for _, method := range []string{"registerOperator", "deregisterOperator", "operatorStatus", "stakeIntoMockStrategy"} {
		_, ok := parsed.Methods[method]
		assert.True(t, ok, "missing method %s", method)
	}
	assert.False(t, parsed.Methods["operatorStatus"].IsPayable())
	assert.True(t, parsed.Methods["operatorStatus"].IsConstant())
}

func TestCompendiumABIParses(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(compendiumABI))
	require.NoError(t, err)
	method, ok := parsed.Methods["getRegisteredPubkey"]
	require.True(t, ok)
	assert.Len(t, method.Outputs, 2)
}
