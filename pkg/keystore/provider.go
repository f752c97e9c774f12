package keystore

import (
	"encoding/json"
	"fmt"
	"os"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// EthProvider implements Provider on top of go-ethereum's encrypted
// web3 keystore format (the same container is used for both key roles).
type EthProvider struct{}

var _ Provider = EthProvider{}

func NewEthProvider() EthProvider {
	return EthProvider{}
}

// Random generates a fresh secp256k1-sized secret.
func (EthProvider) Random() (*EncodedKeystore, error) {
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate ephemeral key: %w", err)
	}
	return newEncodedKeystore(ethcrypto.FromECDSA(key)), nil
}

// FromPath loads and decrypts the keystore file at path.
func (p EthProvider) FromPath(path string, password string) (*EncodedKeystore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return p.decrypt(data, password)
}

// FromString parses and decrypts inline keystore content.
func (p EthProvider) FromString(content string, password string) (*EncodedKeystore, error) {
	return p.decrypt([]byte(content), password)
}

func (EthProvider) decrypt(data []byte, password string) (*EncodedKeystore, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid keystore JSON", ErrParse)
	}
	key, err := gethkeystore.DecryptKey(data, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return newEncodedKeystore(ethcrypto.FromECDSA(key.PrivateKey)), nil
}
