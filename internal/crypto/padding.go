package crypto

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"unicode/utf8"
)

// CalcPaddedLen returns the padding bucket for a plaintext of n bytes.
//
// Lengths up to 32 pad to 32. Above that, buckets are multiples of 32 up to
// 256 and multiples of nextPower/8 beyond, where nextPower is the smallest
// power of two not below n.
func CalcPaddedLen(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnpaddedLengthInvalid, n)
	}
	if n <= minPaddedSize {
		return minPaddedSize, nil
	}

	nextPower := 1 << bits.Len(uint(n-1))
	chunk := minPaddedSize
	if nextPower > 256 {
		chunk = nextPower / 8
	}

	return chunk * ((n-1)/chunk + 1), nil
}

// Pad encodes plaintext as a 2-byte big-endian length, the plaintext bytes
// and zero filler up to CalcPaddedLen.
func Pad(plaintext string) ([]byte, error) {
	if !utf8.ValidString(plaintext) {
		return nil, ErrUTF8EncodingFailed
	}

	n := len(plaintext)
	if n < MinPlaintextSize || n > MaxPlaintextSize {
		return nil, fmt.Errorf("%w: %d", ErrPlaintextLengthInvalid, n)
	}

	padded, err := CalcPaddedLen(n)
	if err != nil {
		return nil, err //coverage:ignore
	}

	out := make([]byte, lengthPrefixSize+padded)
	binary.BigEndian.PutUint16(out, uint16(n))
	copy(out[lengthPrefixSize:], plaintext)

	return out, nil
}

// Unpad reverses Pad. The total length must be exactly what Pad would
// produce for the recorded plaintext length, so truncated and over-padded
// inputs are rejected as well as malformed ones.
func Unpad(padded []byte) (string, error) {
	if len(padded) < lengthPrefixSize {
		return "", ErrPaddingInvalid
	}

	n := int(binary.BigEndian.Uint16(padded))
	if lengthPrefixSize+n > len(padded) {
		return "", ErrPaddingInvalid
	}

	plaintext := padded[lengthPrefixSize : lengthPrefixSize+n]
	if n == 0 || !utf8.Valid(plaintext) {
		return "", ErrPaddingInvalid
	}

	want, err := CalcPaddedLen(n)
	if err != nil || len(padded) != lengthPrefixSize+want {
		return "", ErrPaddingInvalid
	}

	return string(plaintext), nil
}
