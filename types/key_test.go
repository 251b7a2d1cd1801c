package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cometbft/cometbft/crypto/ed25519"
	"github.com/cometbft/cometbft/crypto/secp256k1"
	"github.com/cometbft/cometbft/crypto/sr25519"
)

func seq(from byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = from + byte(i)
	}
	return out
}

func TestAlgorithmSize(t *testing.T) {
	require.Equal(t, 33, Secp256k1.Size())
	require.Equal(t, 32, Ed25519.Size())
	require.Equal(t, 32, Sr25519.Size())

	require.Panics(t, func() {
		_ = Algorithm(99).Size()
	})
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "secp256k1", Secp256k1.String())
	require.Equal(t, "ed25519", Ed25519.String())
	require.Equal(t, "sr25519", Sr25519.String())
	require.Equal(t, "unknown(99)", Algorithm(99).String())
}

func TestPubKeyToComet(t *testing.T) {
	testCases := []struct {
		name    string
		pk      PubKey
		want    any
		wantErr error
	}{
		{
			name: "secp256k1",
			pk:   PubKey{Algorithm: Secp256k1, Key: seq(1, 33)},
			want: secp256k1.PubKey(seq(1, 33)),
		},
		{
			name: "ed25519",
			pk:   PubKey{Algorithm: Ed25519, Key: seq(1, 32)},
			want: ed25519.PubKey(seq(1, 32)),
		},
		{
			name: "sr25519",
			pk:   PubKey{Algorithm: Sr25519, Key: seq(1, 32)},
			want: sr25519.PubKey(seq(1, 32)),
		},
		{
			name:    "wrong key length",
			pk:      PubKey{Algorithm: Secp256k1, Key: seq(1, 32)},
			wantErr: ErrInvalidPayloadLength,
		},
		{
			name:    "unknown algorithm",
			pk:      PubKey{Algorithm: Algorithm(99), Key: seq(1, 32)},
			wantErr: ErrUnsupportedAlgorithm,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.pk.ToComet()

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.EqualValues(t, tc.want, got)
		})
	}
}
