package signer

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/eigensdk-go/crypto/bls"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/keystore"
)

// Signer exposes the two operator identities to the registration and
// finalization flows.
type Signer interface {
	// OperatorAddress returns the address derived from the ECDSA key.
	OperatorAddress() ethcommon.Address
	// Sign signs the keccak256 hash of message with the ECDSA key.
	Sign(message []byte) ([]byte, error)
	// SignHash signs a prehashed 32-byte digest with the ECDSA key.
	SignHash(hash [32]byte) ([]byte, error)
	// BLSKeyPair returns the BLS identity used for quorum signing.
	BLSKeyPair() *bls.KeyPair
	// TransactorOpts builds transaction-signing options for chainID.
	TransactorOpts(chainID *big.Int) (*bind.TransactOpts, error)
}

// FinalizerSigner implements Signer from two resolved keystores.
type FinalizerSigner struct {
	ecdsaKey *ecdsa.PrivateKey
	blsKey   *bls.KeyPair
	address  ethcommon.Address
}

var _ Signer = (*FinalizerSigner)(nil)

// New builds a signer from the resolved ECDSA-role and BLS-role keystores.
// The two handles are consumed here; nothing else retains them.
func New(ecdsaKs, blsKs *keystore.EncodedKeystore) (*FinalizerSigner, error) {
	ecdsaKey, err := ecdsaKs.ECDSAPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load ecdsa key: %w", err)
	}

	// The BLS scalar is fed in decimal, the same form eigensdk's own
	// keystore files carry; values beyond the bn254 group order reduce.
	blsKey, err := bls.NewKeyPairFromString(blsKs.Scalar().String())
	if err != nil {
		return nil, fmt.Errorf("failed to load bls key: %w", err)
	}

	return &FinalizerSigner{
		ecdsaKey: ecdsaKey,
		blsKey:   blsKey,
		address:  crypto.PubkeyToAddress(ecdsaKey.PublicKey),
	}, nil
}

// OperatorAddress returns the operator's on-chain address.
func (s *FinalizerSigner) OperatorAddress() ethcommon.Address {
	return s.address
}

// Sign signs the keccak256 hash of message.
func (s *FinalizerSigner) Sign(message []byte) ([]byte, error) {
	hash := crypto.Keccak256Hash(message)
	signature, err := crypto.Sign(hash.Bytes(), s.ecdsaKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}
	return signature, nil
}

// SignHash signs a prehashed digest, as required by the AVS registration
// digest flow.
func (s *FinalizerSigner) SignHash(hash [32]byte) ([]byte, error) {
	signature, err := crypto.Sign(hash[:], s.ecdsaKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	return signature, nil
}

// BLSKeyPair returns the BLS identity.
func (s *FinalizerSigner) BLSKeyPair() *bls.KeyPair {
	return s.blsKey
}

// TransactorOpts builds keyed transactor options bound to chainID.
func (s *FinalizerSigner) TransactorOpts(chainID *big.Int) (*bind.TransactOpts, error) {
	return bind.NewKeyedTransactorWithChainID(s.ecdsaKey, chainID)
}

// VerifySignature reports whether signature over message recovers address.
func VerifySignature(address ethcommon.Address, message []byte, signature []byte) bool {
	hash := crypto.Keccak256Hash(message)
	pubkey, err := crypto.SigToPub(hash.Bytes(), signature)
	if err != nil {
		return false
	}
	return address == crypto.PubkeyToAddress(*pubkey)
}
