package crypto

import "errors"

// Input-shape errors.
var (
	// ErrPlaintextLengthInvalid is returned when a plaintext is empty or
	// longer than MaxPlaintextSize bytes.
	ErrPlaintextLengthInvalid = errors.New("invalid plaintext length")

	// ErrUnpaddedLengthInvalid is returned when a padded length is requested
	// for a non-positive size.
	ErrUnpaddedLengthInvalid = errors.New("invalid unpadded length")

	// ErrConversationKeyLengthInvalid is returned when the conversation key
	// is not ConversationKeySize bytes.
	ErrConversationKeyLengthInvalid = errors.New("invalid conversation key length")

	// ErrNonceLengthInvalid is returned when the nonce is not NonceSize bytes.
	ErrNonceLengthInvalid = errors.New("invalid nonce length")

	// ErrAADLengthInvalid is returned when the associated data bound into
	// the MAC is not NonceSize bytes.
	ErrAADLengthInvalid = errors.New("invalid aad length")

	// ErrPrivateKeyInvalid is returned when a secret key cannot be parsed
	// or is outside [1, n-1].
	ErrPrivateKeyInvalid = errors.New("invalid private key")

	// ErrPublicKeyInvalid is returned when a public key cannot be parsed
	// or is not on the curve.
	ErrPublicKeyInvalid = errors.New("invalid public key")
)

// Wire-format errors.
var (
	// ErrPayloadSizeInvalid is returned when the encoded payload string is
	// outside [MinPayloadSize, MaxPayloadSize].
	ErrPayloadSizeInvalid = errors.New("invalid payload size")

	// ErrDataSizeInvalid is returned when the decoded payload is outside
	// [MinDecodedSize, MaxDecodedSize].
	ErrDataSizeInvalid = errors.New("invalid data size")

	// ErrUnknownVersion is returned for an unsupported version byte or a
	// payload using the reserved '#' prefix.
	ErrUnknownVersion = errors.New("unknown version")

	// ErrBase64EncodingFailed is returned when the payload is not valid base64.
	ErrBase64EncodingFailed = errors.New("invalid base64")

	// ErrUTF8EncodingFailed is returned when a plaintext is not valid UTF-8.
	ErrUTF8EncodingFailed = errors.New("invalid utf-8")

	// ErrPaddingInvalid is returned when decrypted bytes are not a
	// well-formed padded plaintext.
	ErrPaddingInvalid = errors.New("invalid padding")
)

// Cryptographic failures.
var (
	// ErrSharedSecretComputationFailed is returned when ECDH yields the
	// point at infinity.
	ErrSharedSecretComputationFailed = errors.New("shared secret computation failed")

	// ErrRandomSourceFailed is returned when the random reader cannot
	// supply a nonce or secret key.
	ErrRandomSourceFailed = errors.New("random source failed")

	// ErrMACInvalid is returned when the payload MAC does not verify.
	ErrMACInvalid = errors.New("invalid mac")

	// ErrChaCha20EncryptionFailed is returned when the stream cipher cannot
	// be initialised for encryption.
	ErrChaCha20EncryptionFailed = errors.New("chacha20 encryption failed")

	// ErrChaCha20DecryptionFailed is returned when the stream cipher cannot
	// be initialised for decryption.
	ErrChaCha20DecryptionFailed = errors.New("chacha20 decryption failed")
)

// ErrInvalidHexLength is returned when a hex-encoded key decodes to the
// wrong number of bytes.
var ErrInvalidHexLength = errors.New("invalid hex key length")
