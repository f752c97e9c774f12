//go:build ignore

// Generates encrypted test keystores for a local anvil run: one ECDSA-role
// and one BLS-role key file under keys/, both locked with "testpassword".
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

func main() {
	keysDir := "keys"
	if err := os.MkdirAll(keysDir, 0755); err != nil {
		panic(err)
	}

	password := "testpassword"

	for _, role := range []string{"ecdsa", "bls"} {
		privateKey, err := crypto.GenerateKey()
		if err != nil {
			panic(err)
		}

		ks := keystore.NewKeyStore(keysDir, keystore.StandardScryptN, keystore.StandardScryptP)
		if _, err = ks.ImportECDSA(privateKey, password); err != nil {
			panic(err)
		}

		// The keystore writes a UTC-- file; rename it to <role>.key.json.
		files, err := filepath.Glob(filepath.Join(keysDir, "UTC--*"))
		if err != nil {
			panic(err)
		}
		if len(files) == 0 {
			panic("could not find generated keystore file")
		}
		utcFile := files[0]
		if !strings.HasPrefix(filepath.Base(utcFile), "UTC--") {
			panic("unexpected keystore file name")
		}

		newPath := filepath.Join(keysDir, fmt.Sprintf("%s.key.json", role))
		if err := os.Rename(utcFile, newPath); err != nil {
			panic(err)
		}

		fmt.Printf("%s key: %s\n", role, newPath)
		fmt.Printf("address: %s\n", crypto.PubkeyToAddress(privateKey.PublicKey).Hex())
		fmt.Println("-------------------")
	}
}
