package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ToBase64 encodes bytes to standard base64 with padding, the payload
// wire encoding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// FromHex32 decodes a hex string that must encode exactly 32 bytes, the
// textual form of secret keys, x-only public keys and conversation keys.
func FromHex32(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidHexLength, len(b))
	}
	return b, nil
}

// FromHexKey decodes a hex public key of 32 (x-only) or 33 (compressed) bytes.
func FromHexKey(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != XOnlyPublicKeySize && len(b) != CompressedPublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d or %d",
			ErrInvalidHexLength, len(b), XOnlyPublicKeySize, CompressedPublicKeySize)
	}
	return b, nil
}
