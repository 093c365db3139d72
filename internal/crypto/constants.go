package crypto

const (
	// Version is the payload format version byte produced and accepted.
	Version = 2

	// ConversationKeySalt is the HKDF-Extract salt used to derive a
	// conversation key from an ECDH shared secret.
	ConversationKeySalt = "nip44-v2"

	// SecretKeySize is the size of a secp256k1 secret key in bytes.
	SecretKeySize = 32
	// XOnlyPublicKeySize is the size of an x-only (BIP-340) public key in bytes.
	XOnlyPublicKeySize = 32
	// CompressedPublicKeySize is the size of a SEC1 compressed public key in bytes.
	CompressedPublicKeySize = 33
	// SharedSecretSize is the size of the ECDH shared x-coordinate in bytes.
	SharedSecretSize = 32

	// ConversationKeySize is the size of a conversation key in bytes.
	ConversationKeySize = 32
	// NonceSize is the size of a per-message nonce in bytes.
	NonceSize = 32

	// CipherKeySize is the size of the ChaCha20 key in bytes.
	CipherKeySize = 32
	// CipherNonceSize is the size of the ChaCha20 (IETF) nonce in bytes.
	CipherNonceSize = 12
	// MACKeySize is the size of the HMAC-SHA256 key in bytes.
	MACKeySize = 32
	// MACSize is the size of the HMAC-SHA256 tag in bytes.
	MACSize = 32

	// messageKeysSize is the HKDF-Expand output length split into the
	// cipher key, cipher nonce and MAC key.
	messageKeysSize = CipherKeySize + CipherNonceSize + MACKeySize

	// MinPlaintextSize is the smallest plaintext, in UTF-8 bytes, that may be encrypted.
	MinPlaintextSize = 1
	// MaxPlaintextSize is the largest plaintext, in UTF-8 bytes, that may be encrypted.
	MaxPlaintextSize = 65535

	// MinPayloadSize is the shortest accepted base64 payload string.
	MinPayloadSize = 132
	// MaxPayloadSize is the longest accepted base64 payload string.
	MaxPayloadSize = 87472

	// MinDecodedSize is the smallest accepted decoded payload in bytes.
	MinDecodedSize = 99
	// MaxDecodedSize is the largest accepted decoded payload in bytes.
	MaxDecodedSize = 65603

	// lengthPrefixSize is the size of the big-endian plaintext length prefix.
	lengthPrefixSize = 2
	// minPaddedSize is the smallest padding bucket.
	minPaddedSize = 32

	// reservedPrefix marks a payload encoding that is not base64 and must
	// not be parsed.
	reservedPrefix = '#'
)
