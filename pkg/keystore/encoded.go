package keystore

import (
	"crypto/ecdsa"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// EncodedKeystore is a decrypted, in-memory credential. It holds the raw
// 32-byte secret scalar and stays role-agnostic: the signer layer decides
// whether the bytes back an ECDSA key or a BLS key. It is never persisted
// and has no textual representation of its secret.
type EncodedKeystore struct {
	secret []byte
}

func newEncodedKeystore(secret []byte) *EncodedKeystore {
	return &EncodedKeystore{secret: secret}
}

// Bytes returns the raw secret scalar.
func (k *EncodedKeystore) Bytes() []byte {
	return k.secret
}

// ECDSAPrivateKey interprets the secret as a secp256k1 private key.
func (k *EncodedKeystore) ECDSAPrivateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.ToECDSA(k.secret)
}

// Scalar returns the secret as an integer, used to seed the BLS keypair.
// Callers must not log it.
func (k *EncodedKeystore) Scalar() *big.Int {
	return new(big.Int).SetBytes(k.secret)
}

func (k *EncodedKeystore) String() string {
	return "keystore.EncodedKeystore(kept in memory)"
}
