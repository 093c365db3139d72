package crypto

import "fmt"

// MessageKeys holds the per-message subkeys derived from a conversation key
// and a nonce.
type MessageKeys struct {
	// CipherKey is the ChaCha20 key.
	CipherKey [CipherKeySize]byte
	// CipherNonce is the ChaCha20 (IETF) nonce.
	CipherNonce [CipherNonceSize]byte
	// MACKey is the HMAC-SHA256 key.
	MACKey [MACKeySize]byte
}

// DeriveMessageKeys expands conversationKey with nonce as HKDF info into
// 76 bytes and splits them as cipher key [0,32), cipher nonce [32,44) and
// MAC key [44,76).
func DeriveMessageKeys(conversationKey, nonce []byte) (*MessageKeys, error) {
	if len(conversationKey) != ConversationKeySize {
		return nil, fmt.Errorf("%w: %d", ErrConversationKeyLengthInvalid, len(conversationKey))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: %d", ErrNonceLengthInvalid, len(nonce))
	}

	okm, err := expandKey(conversationKey, nonce, messageKeysSize)
	if err != nil {
		return nil, err //coverage:ignore
	}

	keys := &MessageKeys{}
	copy(keys.CipherKey[:], okm[:CipherKeySize])
	copy(keys.CipherNonce[:], okm[CipherKeySize:CipherKeySize+CipherNonceSize])
	copy(keys.MACKey[:], okm[CipherKeySize+CipherNonceSize:])

	return keys, nil
}
