package nostrbox

import "github.com/nostrbox/client-go/internal/crypto"

// Version is the payload format version produced and accepted.
const Version = crypto.Version

// Plaintext limits in UTF-8 bytes.
const (
	MinPlaintextSize = crypto.MinPlaintextSize
	MaxPlaintextSize = crypto.MaxPlaintextSize
)

// ConversationKey derives the 32-byte key shared between the owner of a
// hex secret key and the owner of a hex public key. The result is the same
// from either side.
func ConversationKey(secretKeyHex, publicKeyHex string) ([]byte, error) {
	kp, err := KeypairFromHex(secretKeyHex)
	if err != nil {
		return nil, err
	}
	return kp.ConversationKey(publicKeyHex)
}

// Encrypt encrypts plaintext under a conversation key with a fresh random
// nonce and returns the base64 payload.
func Encrypt(plaintext string, conversationKey []byte) (string, error) {
	payload, err := crypto.Encrypt(plaintext, conversationKey)
	if err != nil {
		return "", wrapEncryptError(err)
	}
	return payload, nil
}

// Decrypt authenticates and decrypts a base64 payload under a conversation
// key.
func Decrypt(payload string, conversationKey []byte) (string, error) {
	plaintext, err := crypto.Decrypt(payload, conversationKey)
	if err != nil {
		return "", wrapDecryptError(err)
	}
	return plaintext, nil
}

// EncryptTo encrypts plaintext from sender to the holder of
// recipientPublicKeyHex.
func EncryptTo(plaintext string, sender *Keypair, recipientPublicKeyHex string) (string, error) {
	if sender == nil {
		return "", ErrMissingKeypair
	}

	key, err := sender.ConversationKey(recipientPublicKeyHex)
	if err != nil {
		return "", err
	}

	return Encrypt(plaintext, key)
}

// DecryptFrom decrypts a payload that the holder of senderPublicKeyHex
// encrypted for recipient.
func DecryptFrom(payload string, recipient *Keypair, senderPublicKeyHex string) (string, error) {
	if recipient == nil {
		return "", ErrMissingKeypair
	}

	key, err := recipient.ConversationKey(senderPublicKeyHex)
	if err != nil {
		return "", err
	}

	return Decrypt(payload, key)
}

// PaddedLength returns the padded size of an n-byte plaintext, before the
// 2-byte length prefix.
func PaddedLength(n int) (int, error) {
	return crypto.CalcPaddedLen(n)
}
