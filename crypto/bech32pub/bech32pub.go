// Package bech32pub renders public keys as bech32 strings carrying one of
// the accepted pubkey prefixes, with the tagged binary form as payload.
package bech32pub

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/cosmoskit/pubkeycodec/constants"
	"github.com/cosmoskit/pubkeycodec/crypto/aminopub"
	"github.com/cosmoskit/pubkeycodec/types"
)

// AcceptedPrefixes lists the human-readable prefixes recognized for public
// key bech32 strings, in the order they appear in diagnostics.
var AcceptedPrefixes = []string{
	constants.Bech32PrefixAccPub,
	constants.Bech32PrefixValPub,
	constants.Bech32PrefixConsPub,
}

// Decode parses a bech32 public key string: checksum first, then the prefix
// against the accepted set, then the payload as tagged binary.
func Decode(text string) (types.PubKey, error) {
	hrp, data, err := bech32.DecodeAndConvert(text)
	if err != nil {
		return types.PubKey{}, errorsmod.Wrap(types.ErrInvalidBech32, err.Error())
	}

	if !isAcceptedPrefix(hrp) {
		return types.PubKey{}, errorsmod.Wrapf(
			types.ErrInvalidPrefix,
			"prefix %q is not one of: %s", hrp, strings.Join(AcceptedPrefixes, ", "),
		)
	}

	return aminopub.Decode(data)
}

// Encode renders the key as a bech32 string under the given prefix, which
// must be one of AcceptedPrefixes. Algorithms the binary encoder does not
// support fail here as well.
func Encode(pk types.PubKey, prefix string) (string, error) {
	if !isAcceptedPrefix(prefix) {
		return "", errorsmod.Wrapf(
			types.ErrInvalidPrefix,
			"prefix %q is not one of: %s", prefix, strings.Join(AcceptedPrefixes, ", "),
		)
	}

	data, err := aminopub.Encode(pk)
	if err != nil {
		return "", err
	}

	return bech32.ConvertAndEncode(prefix, data)
}

// MustDecode calls Decode and panics on failure.
func MustDecode(text string) types.PubKey {
	pk, err := Decode(text)
	if err != nil {
		panic(err)
	}
	return pk
}

// MustEncode calls Encode and panics on failure.
func MustEncode(pk types.PubKey, prefix string) string {
	text, err := Encode(pk, prefix)
	if err != nil {
		panic(err)
	}
	return text
}

// FromRawSecp256k1 parses raw secp256k1 point bytes in compressed,
// uncompressed or hybrid form and wraps the compressed form as the canonical
// key value.
func FromRawSecp256k1(raw []byte) (types.PubKey, error) {
	point, err := btcec.ParsePubKey(raw)
	if err != nil {
		return types.PubKey{}, errorsmod.Wrap(types.ErrInvalidCurvePoint, err.Error())
	}

	return types.PubKey{Algorithm: types.Secp256k1, Key: point.SerializeCompressed()}, nil
}

func isAcceptedPrefix(hrp string) bool {
	for _, accepted := range AcceptedPrefixes {
		if hrp == accepted {
			return true
		}
	}
	return false
}
