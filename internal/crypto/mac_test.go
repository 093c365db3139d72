package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestComputeMAC_AADLength(t *testing.T) {
	key := make([]byte, MACKeySize)

	for _, n := range []int{0, NonceSize - 1, NonceSize + 1} {
		if _, err := computeMAC(key, make([]byte, n), []byte("msg")); !errors.Is(err, ErrAADLengthInvalid) {
			t.Errorf("aad %d bytes: expected ErrAADLengthInvalid, got %v", n, err)
		}
	}
}

func TestComputeMAC_BindsAAD(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, MACKeySize)
	msg := []byte("ciphertext")

	a, err := computeMAC(key, bytes.Repeat([]byte{0x02}, NonceSize), msg)
	if err != nil {
		t.Fatalf("computeMAC() error = %v", err)
	}
	b, err := computeMAC(key, bytes.Repeat([]byte{0x03}, NonceSize), msg)
	if err != nil {
		t.Fatalf("computeMAC() error = %v", err)
	}

	if len(a) != MACSize {
		t.Errorf("mac size = %d, want %d", len(a), MACSize)
	}
	if bytes.Equal(a, b) {
		t.Error("mac does not depend on aad")
	}
}

func TestVerifyMAC(t *testing.T) {
	key := bytes.Repeat([]byte{0x01}, MACKeySize)
	aad := bytes.Repeat([]byte{0x02}, NonceSize)
	msg := []byte("ciphertext")

	mac, err := computeMAC(key, aad, msg)
	if err != nil {
		t.Fatalf("computeMAC() error = %v", err)
	}

	if err := verifyMAC(key, aad, msg, mac); err != nil {
		t.Errorf("verifyMAC() error = %v", err)
	}

	t.Run("flipped bit", func(t *testing.T) {
		bad := append([]byte(nil), mac...)
		bad[0] ^= 0x80
		if err := verifyMAC(key, aad, msg, bad); !errors.Is(err, ErrMACInvalid) {
			t.Errorf("expected ErrMACInvalid, got %v", err)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		if err := verifyMAC(key, aad, msg, mac[:MACSize-1]); !errors.Is(err, ErrMACInvalid) {
			t.Errorf("expected ErrMACInvalid, got %v", err)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		other := bytes.Repeat([]byte{0x09}, MACKeySize)
		if err := verifyMAC(other, aad, msg, mac); !errors.Is(err, ErrMACInvalid) {
			t.Errorf("expected ErrMACInvalid, got %v", err)
		}
	})
}
