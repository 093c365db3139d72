package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// computeMAC returns HMAC-SHA256(key, aad || message). The AAD is the
// message nonce and must be exactly NonceSize bytes.
func computeMAC(key, aad, message []byte) ([]byte, error) {
	if len(aad) != NonceSize {
		return nil, fmt.Errorf("%w: %d", ErrAADLengthInvalid, len(aad))
	}

	h := hmac.New(sha256.New, key)
	h.Write(aad)
	h.Write(message)
	return h.Sum(nil), nil
}

// verifyMAC recomputes the MAC and compares it in constant time.
func verifyMAC(key, aad, message, mac []byte) error {
	expected, err := computeMAC(key, aad, message)
	if err != nil {
		return err
	}

	if !hmac.Equal(expected, mac) {
		return ErrMACInvalid
	}

	return nil
}
