// Package aminopub implements the amino-style tagged binary encoding of
// public keys: a fixed algorithm marker followed by the raw key bytes, with
// no explicit length field.
package aminopub

import (
	"bytes"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"

	"github.com/cosmoskit/pubkeycodec/types"
)

// Registered amino type prefixes, each including the trailing payload length
// byte of the registered key type.
var (
	markerSecp256k1 = []byte{0xEB, 0x5A, 0xE9, 0x87, 0x21}
	markerEd25519   = []byte{0x16, 0x24, 0xDE, 0x64, 0x20}
	markerSr25519   = []byte{0x0D, 0xFB, 0x10, 0x05, 0x20}
)

// marker ties an algorithm to its tag bytes. Each marker carries its own
// length; the three current markers happen to share one, but decoding slices
// per marker so a differently sized future marker cannot corrupt parsing.
type marker struct {
	algorithm types.Algorithm
	tag       []byte
}

// Decode candidates, tried in this order.
var markers = []marker{
	{types.Secp256k1, markerSecp256k1},
	{types.Ed25519, markerEd25519},
	{types.Sr25519, markerSr25519},
}

// Decode parses tagged binary public key bytes. The marker selects the
// algorithm and the remaining payload must have exactly the key length that
// algorithm requires.
func Decode(bz []byte) (types.PubKey, error) {
	for _, m := range markers {
		if len(bz) < len(m.tag) || !bytes.Equal(bz[:len(m.tag)], m.tag) {
			continue
		}

		payload := bz[len(m.tag):]
		if want := m.algorithm.Size(); len(payload) != want {
			return types.PubKey{}, errorsmod.Wrapf(
				types.ErrInvalidPayloadLength,
				"got %d bytes, want %d for %s", len(payload), want, m.algorithm,
			)
		}

		return types.PubKey{Algorithm: m.algorithm, Key: payload}, nil
	}

	return types.PubKey{}, errorsmod.Wrapf(
		types.ErrUnsupportedKeyEncoding,
		"unrecognized marker 0x%s", hex.EncodeToString(leadingMarkerBytes(bz)),
	)
}

// Encode serializes the key with its algorithm marker. Only secp256k1 keys
// are serializable; decoding intentionally recognizes more algorithms than
// encoding emits, and widening the switch requires matching test vectors.
//
// The key length is not validated here: parsing untrusted external data is
// strict, serializing already-trusted internal data is permissive.
func Encode(pk types.PubKey) ([]byte, error) {
	switch pk.Algorithm {
	case types.Secp256k1:
		out := make([]byte, 0, len(markerSecp256k1)+len(pk.Key))
		out = append(out, markerSecp256k1...)
		return append(out, pk.Key...), nil
	case types.Ed25519, types.Sr25519:
		return nil, errorsmod.Wrapf(types.ErrUnsupportedAlgorithm, "cannot serialize %s public keys", pk.Algorithm)
	default:
		return nil, errorsmod.Wrapf(types.ErrUnsupportedAlgorithm, "unknown algorithm %d", int(pk.Algorithm))
	}
}

// leadingMarkerBytes returns the would-be marker portion of bz for
// diagnostics, capped at the longest defined marker length.
func leadingMarkerBytes(bz []byte) []byte {
	longest := 0
	for _, m := range markers {
		if len(m.tag) > longest {
			longest = len(m.tag)
		}
	}
	if len(bz) < longest {
		return bz
	}
	return bz[:longest]
}
