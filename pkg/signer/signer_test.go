package signer_test

import (
	"math/big"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/keystore"
	"github.com/Saeed76a/eigen-layer-monorepo/pkg/signer"
)

func newTestSigner(t *testing.T) *signer.FinalizerSigner {
	t.Helper()
	provider := keystore.NewEthProvider()
	ecdsaKs, err := provider.Random()
	require.NoError(t, err)
	blsKs, err := provider.Random()
	require.NoError(t, err)

	s, err := signer.New(ecdsaKs, blsKs)
	require.NoError(t, err)
	return s
}

func TestSignAndVerify(t *testing.T) {
	s := newTestSigner(t)
	message := []byte("finalizer test message")

	sig, err := s.Sign(message)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	assert.True(t, signer.VerifySignature(s.OperatorAddress(), message, sig))
	assert.False(t, signer.VerifySignature(s.OperatorAddress(), []byte("other"), sig))
}

func TestOperatorAddressMatchesKey(t *testing.T) {
	provider := keystore.NewEthProvider()
	ecdsaKs, err := provider.Random()
	require.NoError(t, err)
	blsKs, err := provider.Random()
	require.NoError(t, err)

	priv, err := ecdsaKs.ECDSAPrivateKey()
	require.NoError(t, err)

	s, err := signer.New(ecdsaKs, blsKs)
	require.NoError(t, err)
	assert.Equal(t, ethcrypto.PubkeyToAddress(priv.PublicKey), s.OperatorAddress())
}

func TestBLSKeyPair(t *testing.T) {
	s := newTestSigner(t)
	kp := s.BLSKeyPair()
	require.NotNil(t, kp)

	var digest [32]byte
	copy(digest[:], ethcrypto.Keccak256([]byte("bls message")))
	sig := kp.SignMessage(digest)

	ok, err := sig.Verify(kp.GetPubKeyG2(), digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTransactorOpts(t *testing.T) {
	s := newTestSigner(t)
	opts, err := s.TransactorOpts(big.NewInt(31337))
	require.NoError(t, err)
	assert.Equal(t, s.OperatorAddress(), opts.From)
	require.NotNil(t, opts.Signer)
}
