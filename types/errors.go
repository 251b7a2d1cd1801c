package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmoskit/pubkeycodec/constants"
)

const (
	codeErrInvalidBech32 = uint32(iota) + 2
	codeErrInvalidPrefix
	codeErrUnsupportedKeyEncoding
	codeErrInvalidPayloadLength
	codeErrUnsupportedAlgorithm
	codeErrInvalidCurvePoint
)

var (
	// ErrInvalidBech32 returns an error if the input is not a well-formed bech32 string (bad checksum or charset)
	ErrInvalidBech32 = errorsmod.Register(constants.ApplicationName, codeErrInvalidBech32, "invalid bech32 string")

	// ErrInvalidPrefix returns an error if the bech32 prefix is not an accepted public key prefix
	ErrInvalidPrefix = errorsmod.Register(constants.ApplicationName, codeErrInvalidPrefix, "invalid bech32 public key prefix")

	// ErrUnsupportedKeyEncoding returns an error if the tagged binary marker does not match any known algorithm
	ErrUnsupportedKeyEncoding = errorsmod.Register(constants.ApplicationName, codeErrUnsupportedKeyEncoding, "unsupported public key encoding")

	// ErrInvalidPayloadLength returns an error if the key payload length is wrong for the matched algorithm
	ErrInvalidPayloadLength = errorsmod.Register(constants.ApplicationName, codeErrInvalidPayloadLength, "invalid public key payload length")

	// ErrUnsupportedAlgorithm returns an error if the algorithm cannot be serialized by the binary encoder
	ErrUnsupportedAlgorithm = errorsmod.Register(constants.ApplicationName, codeErrUnsupportedAlgorithm, "unsupported algorithm for encoding")

	// ErrInvalidCurvePoint returns an error if raw bytes do not form a valid secp256k1 curve point
	ErrInvalidCurvePoint = errorsmod.Register(constants.ApplicationName, codeErrInvalidCurvePoint, "invalid secp256k1 curve point")
)
