// Package keystore resolves a configured key source into an in-memory
// keystore handle. It owns no cryptographic format itself: encryption,
// decryption and key generation are delegated to a Provider.
package keystore

import (
	"errors"
	"fmt"

	"github.com/Saeed76a/eigen-layer-monorepo/pkg/config"
)

var (
	// ErrRead signals an unreadable or missing keystore file.
	ErrRead = errors.New("keystore read failed")
	// ErrParse signals malformed keystore content.
	ErrParse = errors.New("keystore parse failed")
	// ErrDecrypt signals a wrong or missing password for encrypted content.
	ErrDecrypt = errors.New("keystore decrypt failed")
)

// Provider produces keystore handles from the three supported sources.
type Provider interface {
	// Random generates a fresh key with no persisted backing.
	Random() (*EncodedKeystore, error)
	// FromPath loads and decrypts the keystore file at path. An empty
	// password is passed through as-is, never substituted.
	FromPath(path string, password string) (*EncodedKeystore, error)
	// FromString parses and decrypts inline keystore content.
	FromString(content string, password string) (*EncodedKeystore, error)
}

// Resolve turns one validated key source into a keystore handle by
// dispatching to exactly one provider strategy. The ephemeral strategy wins
// over file, file over inline; config validation guarantees a single active
// source, so the order only matters for totality. An unset source is an
// internal-consistency defect, not user input, and panics.
func Resolve(p Provider, source config.KeySource, password config.Secret) (*EncodedKeystore, error) {
	switch source.Kind() {
	case config.SourceEphemeral:
		// A freshly generated key has nothing to unlock; the password is
		// deliberately ignored.
		return p.Random()
	case config.SourceFile:
		ks, err := p.FromPath(source.Path(), password.Unwrap())
		if err != nil {
			return nil, fmt.Errorf("key file %s: %w", source.Path(), err)
		}
		return ks, nil
	case config.SourceInline:
		ks, err := p.FromString(source.InlineJSON().Unwrap(), password.Unwrap())
		if err != nil {
			return nil, fmt.Errorf("inline key: %w", err)
		}
		return ks, nil
	default:
		panic("keystore: no key source configured; config validation must reject this")
	}
}
