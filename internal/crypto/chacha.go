package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// xorChaCha20 runs IETF ChaCha20 (32-bit counter starting at 0) over src
// and returns a fresh buffer of the same length.
func xorChaCha20(key, nonce, src []byte) ([]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, len(src))
	c.XORKeyStream(dst, src)
	return dst, nil
}

// encryptChaCha20 encrypts padded plaintext with the message keys.
func encryptChaCha20(keys *MessageKeys, padded []byte) ([]byte, error) {
	ciphertext, err := xorChaCha20(keys.CipherKey[:], keys.CipherNonce[:], padded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChaCha20EncryptionFailed, err)
	}
	return ciphertext, nil
}

// decryptChaCha20 decrypts ciphertext with the message keys. Callers must
// have verified the MAC first.
func decryptChaCha20(keys *MessageKeys, ciphertext []byte) ([]byte, error) {
	padded, err := xorChaCha20(keys.CipherKey[:], keys.CipherNonce[:], ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChaCha20DecryptionFailed, err)
	}
	return padded, nil
}
