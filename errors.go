package nostrbox

import (
	"errors"
	"fmt"

	"github.com/nostrbox/client-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingKeypair is returned when a nil key pair is supplied.
	ErrMissingKeypair = errors.New("key pair is required")

	// ErrEncryptionFailed matches every *EncryptionError.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrDecryptionFailed matches every *DecryptionError.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKey matches every *KeyError.
	ErrInvalidKey = errors.New("invalid key")
)

// Protocol errors. These are the values the encryption pipeline fails with;
// the typed errors below wrap them, so errors.Is() reaches them too.
var (
	ErrPlaintextLengthInvalid        = crypto.ErrPlaintextLengthInvalid
	ErrUnpaddedLengthInvalid         = crypto.ErrUnpaddedLengthInvalid
	ErrConversationKeyLengthInvalid  = crypto.ErrConversationKeyLengthInvalid
	ErrNonceLengthInvalid            = crypto.ErrNonceLengthInvalid
	ErrAADLengthInvalid              = crypto.ErrAADLengthInvalid
	ErrPrivateKeyInvalid             = crypto.ErrPrivateKeyInvalid
	ErrPublicKeyInvalid              = crypto.ErrPublicKeyInvalid
	ErrPayloadSizeInvalid            = crypto.ErrPayloadSizeInvalid
	ErrDataSizeInvalid               = crypto.ErrDataSizeInvalid
	ErrUnknownVersion                = crypto.ErrUnknownVersion
	ErrBase64EncodingFailed          = crypto.ErrBase64EncodingFailed
	ErrUTF8EncodingFailed            = crypto.ErrUTF8EncodingFailed
	ErrPaddingInvalid                = crypto.ErrPaddingInvalid
	ErrSharedSecretComputationFailed = crypto.ErrSharedSecretComputationFailed
	ErrMACInvalid                    = crypto.ErrMACInvalid
	ErrChaCha20EncryptionFailed      = crypto.ErrChaCha20EncryptionFailed
	ErrChaCha20DecryptionFailed      = crypto.ErrChaCha20DecryptionFailed
	ErrRandomSourceFailed            = crypto.ErrRandomSourceFailed
	ErrInvalidHexLength              = crypto.ErrInvalidHexLength
)

// NostrBoxError is implemented by all SDK errors.
type NostrBoxError interface {
	error
	NostrBoxError() // marker method
}

// Pipeline stages reported in EncryptionError and DecryptionError.
const (
	StageKeys     = "keys"
	StageNonce    = "nonce"
	StagePadding  = "padding"
	StageDecode   = "decode"
	StageChaCha20 = "chacha20"
	StageMAC      = "mac"
	StageUnknown  = "unknown"
)

// Key stages reported in KeyError.
const (
	StageSecretKey = "secret key"
	StagePublicKey = "public key"
	StageECDH      = "ecdh"
)

// EncryptionError represents a failure to produce a payload.
type EncryptionError struct {
	Stage string // "keys", "nonce", "padding", "chacha20", "mac"
	Err   error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("encryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncryptionError) Is(target error) bool {
	return target == ErrEncryptionFailed
}

// NostrBoxError implements the NostrBoxError interface.
func (e *EncryptionError) NostrBoxError() {}

// DecryptionError represents a payload that was rejected. No plaintext is
// ever returned alongside one.
type DecryptionError struct {
	Stage string // "decode", "keys", "mac", "chacha20", "padding"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryptionFailed
}

// NostrBoxError implements the NostrBoxError interface.
func (e *DecryptionError) NostrBoxError() {}

// KeyError represents a secret or public key that could not be used.
type KeyError struct {
	Stage string // "secret key", "public key", "ecdh"
	Err   error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	return target == ErrInvalidKey
}

// NostrBoxError implements the NostrBoxError interface.
func (e *KeyError) NostrBoxError() {}

// pipelineStage maps a crypto error to the stage that produced it.
func pipelineStage(err error) string {
	switch {
	case errors.Is(err, crypto.ErrConversationKeyLengthInvalid),
		errors.Is(err, crypto.ErrNonceLengthInvalid):
		return StageKeys
	case errors.Is(err, crypto.ErrPlaintextLengthInvalid),
		errors.Is(err, crypto.ErrUTF8EncodingFailed),
		errors.Is(err, crypto.ErrPaddingInvalid):
		return StagePadding
	case errors.Is(err, crypto.ErrPayloadSizeInvalid),
		errors.Is(err, crypto.ErrDataSizeInvalid),
		errors.Is(err, crypto.ErrUnknownVersion),
		errors.Is(err, crypto.ErrBase64EncodingFailed):
		return StageDecode
	case errors.Is(err, crypto.ErrMACInvalid),
		errors.Is(err, crypto.ErrAADLengthInvalid):
		return StageMAC
	case errors.Is(err, crypto.ErrChaCha20EncryptionFailed),
		errors.Is(err, crypto.ErrChaCha20DecryptionFailed):
		return StageChaCha20
	case errors.Is(err, crypto.ErrRandomSourceFailed):
		return StageNonce
	}
	return StageUnknown
}

func wrapEncryptError(err error) error {
	if err == nil {
		return nil
	}
	return &EncryptionError{Stage: pipelineStage(err), Err: err}
}

func wrapDecryptError(err error) error {
	if err == nil {
		return nil
	}
	return &DecryptionError{Stage: pipelineStage(err), Err: err}
}

// wrapKeyError converts key parsing and ECDH failures to *KeyError.
func wrapKeyError(stage string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, crypto.ErrSharedSecretComputationFailed) {
		stage = StageECDH
	}
	return &KeyError{Stage: stage, Err: err}
}
