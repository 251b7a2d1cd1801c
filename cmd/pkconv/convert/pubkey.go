package convert

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/spf13/cobra"

	"github.com/cosmoskit/pubkeycodec/crypto/aminopub"
	"github.com/cosmoskit/pubkeycodec/crypto/bech32pub"
	"github.com/cosmoskit/pubkeycodec/types"
)

func PubKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey [bech32 | hex | base64]",
		Short: "Parse a public key given as bech32 text, tagged binary or raw point bytes, and print every representation",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input := strings.TrimSpace(args[0])

			if pk, err := bech32pub.Decode(input); err == nil {
				printPubKey(pk)
				return
			} else if !errors.Is(err, types.ErrInvalidBech32) {
				// checksum passed, so the input was a bech32 string with a
				// bad prefix or payload; raw byte parsing would only confuse
				panic(err)
			}

			bz, err := bytesFromString(input)
			if err != nil {
				panic(errorsmod.Wrap(err, "input is neither bech32 text nor hex/base64 bytes"))
			}

			pk, err := aminopub.Decode(bz)
			if errors.Is(err, types.ErrUnsupportedKeyEncoding) {
				pk, err = bech32pub.FromRawSecp256k1(bz)
			}
			if err != nil {
				panic(errorsmod.Wrap(err, "failed to parse public key bytes"))
			}

			printPubKey(pk)
		},
	}

	return cmd
}

func printPubKey(pk types.PubKey) {
	fmt.Println("Algorithm:", pk.Algorithm)
	fmt.Println("Key (hex):", hex.EncodeToString(pk.Key))
	fmt.Println("Key (base64):", base64.StdEncoding.EncodeToString(pk.Key))

	bz, err := aminopub.Encode(pk)
	if err != nil {
		if errors.Is(err, types.ErrUnsupportedAlgorithm) {
			fmt.Printf("Tagged binary and bech32 forms are not available: serialization of %s keys is not supported\n", pk.Algorithm)
			return
		}
		panic(err)
	}

	fmt.Println("Tagged binary (hex):", hex.EncodeToString(bz))
	fmt.Println("Bech32:")
	for _, prefix := range bech32pub.AcceptedPrefixes {
		fmt.Println("  " + bech32pub.MustEncode(pk, prefix))
	}
}

// bytesFromString accepts hex with optional 0x prefix, or standard base64.
func bytesFromString(s string) ([]byte, error) {
	if bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x")); err == nil {
		return bz, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
