package constants

const (
	// ApplicationName is the canonical name of this toolkit, also used as the error codespace.
	ApplicationName = "pubkeycodec"

	// ApplicationBinaryName is the name of the converter binary
	ApplicationBinaryName = "pkconv"
)

const (
	// Bech32PrefixAccPub defines the bech32 prefix of an account's public key
	Bech32PrefixAccPub = "cosmospub"

	// Bech32PrefixValPub defines the bech32 prefix of a validator's operator public key
	Bech32PrefixValPub = "cosmosvaloperpub"

	// Bech32PrefixConsPub defines the bech32 prefix of a consensus node public key
	Bech32PrefixConsPub = "cosmosvalconspub"
)
