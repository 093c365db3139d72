package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// DecodedPayload is the binary layout of a payload:
//
//	version (1) || nonce (32) || ciphertext (n) || mac (32)
type DecodedPayload struct {
	// Version is the format version byte.
	Version byte
	// Nonce is the per-message nonce, also used as MAC associated data.
	Nonce []byte
	// Ciphertext is the ChaCha20-encrypted padded plaintext.
	Ciphertext []byte
	// MAC is HMAC-SHA256 over nonce || ciphertext.
	MAC []byte
}

// Encrypt encrypts plaintext under conversationKey with a fresh random
// nonce and returns the base64 payload.
func Encrypt(plaintext string, conversationKey []byte) (string, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(random(), nonce); err != nil {
		return "", fmt.Errorf("%w: nonce: %w", ErrRandomSourceFailed, err)
	}

	return encrypt(plaintext, conversationKey, nonce)
}

func encrypt(plaintext string, conversationKey, nonce []byte) (string, error) {
	keys, err := DeriveMessageKeys(conversationKey, nonce)
	if err != nil {
		return "", err
	}

	padded, err := Pad(plaintext)
	if err != nil {
		return "", err
	}

	ciphertext, err := encryptChaCha20(keys, padded)
	if err != nil {
		return "", err
	}

	mac, err := computeMAC(keys.MACKey[:], nonce, ciphertext)
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, 1+NonceSize+len(ciphertext)+MACSize)
	out = append(out, Version)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	out = append(out, mac...)

	return ToBase64(out), nil
}

// DecodePayload validates the framing of a base64 payload and splits it.
// Checks run in order: reserved prefix, string length, base64, decoded
// length, version. Nothing is decoded for a payload that fails an earlier
// check.
func DecodePayload(payload string) (*DecodedPayload, error) {
	if payload == "" || payload[0] == reservedPrefix {
		return nil, ErrUnknownVersion
	}

	if n := len(payload); n < MinPayloadSize || n > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d", ErrPayloadSizeInvalid, n)
	}

	data, err := FromBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64EncodingFailed, err)
	}

	n := len(data)
	if n < MinDecodedSize || n > MaxDecodedSize {
		return nil, fmt.Errorf("%w: %d", ErrDataSizeInvalid, n)
	}

	if data[0] != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, data[0])
	}

	return &DecodedPayload{
		Version:    data[0],
		Nonce:      data[1 : 1+NonceSize],
		Ciphertext: data[1+NonceSize : n-MACSize],
		MAC:        data[n-MACSize:],
	}, nil
}

// Decrypt authenticates and decrypts a base64 payload under conversationKey.
//
// The MAC is verified before any decryption; a payload that fails
// authentication never reaches the stream cipher.
func Decrypt(payload string, conversationKey []byte) (string, error) {
	decoded, err := DecodePayload(payload)
	if err != nil {
		return "", err
	}

	keys, err := DeriveMessageKeys(conversationKey, decoded.Nonce)
	if err != nil {
		return "", err
	}

	if err := verifyMAC(keys.MACKey[:], decoded.Nonce, decoded.Ciphertext, decoded.MAC); err != nil {
		return "", err
	}

	padded, err := decryptChaCha20(keys, decoded.Ciphertext)
	if err != nil {
		return "", err
	}

	return Unpad(padded)
}

func random() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}
