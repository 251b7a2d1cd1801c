package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	tmcrypto "github.com/cometbft/cometbft/crypto"
	"github.com/cometbft/cometbft/crypto/ed25519"
	"github.com/cometbft/cometbft/crypto/secp256k1"
	"github.com/cometbft/cometbft/crypto/sr25519"
)

// Algorithm identifies the signing algorithm a public key belongs to.
type Algorithm int

const (
	Secp256k1 Algorithm = iota
	Ed25519
	Sr25519
)

// Size returns the exact key length, in bytes, required for the algorithm.
// It panics for an algorithm outside the defined set.
func (a Algorithm) Size() int {
	switch a {
	case Secp256k1:
		return secp256k1.PubKeySize
	case Ed25519:
		return ed25519.PubKeySize
	case Sr25519:
		return sr25519.PubKeySize
	default:
		panic(fmt.Sprintf("unknown algorithm %d", int(a)))
	}
}

func (a Algorithm) String() string {
	switch a {
	case Secp256k1:
		return "secp256k1"
	case Ed25519:
		return "ed25519"
	case Sr25519:
		return "sr25519"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// PubKey is the canonical representation of a public key, the pivot between
// the tagged binary and bech32 encodings.
//
// The key length is deliberately not enforced at construction: decoding paths
// validate it against the algorithm, encoding paths trust their input.
type PubKey struct {
	Algorithm Algorithm
	Key       []byte
}

// ToComet converts the key into the matching CometBFT concrete key type.
// Unlike the encode path, the conversion checks the key length because the
// resulting value is handed to consensus code that assumes it.
func (pk PubKey) ToComet() (tmcrypto.PubKey, error) {
	switch pk.Algorithm {
	case Secp256k1:
		if err := pk.validateSize(); err != nil {
			return nil, err
		}
		return secp256k1.PubKey(pk.Key), nil
	case Ed25519:
		if err := pk.validateSize(); err != nil {
			return nil, err
		}
		return ed25519.PubKey(pk.Key), nil
	case Sr25519:
		if err := pk.validateSize(); err != nil {
			return nil, err
		}
		return sr25519.PubKey(pk.Key), nil
	default:
		return nil, errorsmod.Wrapf(ErrUnsupportedAlgorithm, "unknown algorithm %d", int(pk.Algorithm))
	}
}

func (pk PubKey) validateSize() error {
	if want := pk.Algorithm.Size(); len(pk.Key) != want {
		return errorsmod.Wrapf(ErrInvalidPayloadLength, "got %d bytes, want %d for %s", len(pk.Key), want, pk.Algorithm)
	}
	return nil
}
