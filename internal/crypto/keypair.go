package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// randReader is the random source used for key and nonce generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Keypair represents a secp256k1 keypair used for conversation key agreement.
type Keypair struct {
	// SecretKey is the raw 32-byte secret scalar.
	SecretKey []byte
	// PublicKey is the 32-byte x-only public key.
	PublicKey []byte
	// PublicKeyHex is the public key encoded as lowercase hex.
	PublicKeyHex string
}

// GenerateKeypair creates a new secp256k1 keypair.
func GenerateKeypair() (*Keypair, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(random())
	if err != nil {
		return nil, fmt.Errorf("%w: secret key: %w", ErrRandomSourceFailed, err)
	}

	return newKeypair(priv), nil
}

// KeypairFromSecretKey reconstructs a keypair from the secret key.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	priv, err := ParseSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	return newKeypair(priv), nil
}

func newKeypair(priv *btcec.PrivateKey) *Keypair {
	pub := schnorr.SerializePubKey(priv.PubKey())
	sk := priv.Key.Bytes()
	return &Keypair{
		SecretKey:    sk[:],
		PublicKey:    pub,
		PublicKeyHex: hex.EncodeToString(pub),
	}
}

// ValidateKeypair validates that a keypair has the correct structure and
// that the public key belongs to the secret key.
// Returns true if all validations pass, false otherwise.
func ValidateKeypair(keypair *Keypair) bool {
	if keypair == nil {
		return false
	}

	if len(keypair.SecretKey) != SecretKeySize || len(keypair.PublicKey) != XOnlyPublicKeySize {
		return false
	}

	if keypair.PublicKeyHex != hex.EncodeToString(keypair.PublicKey) {
		return false
	}

	derived, err := DerivePublicKey(keypair.SecretKey)
	if err != nil {
		return false
	}

	return bytes.Equal(derived, keypair.PublicKey)
}

// DerivePublicKey returns the x-only public key of a secret key.
func DerivePublicKey(secretKey []byte) ([]byte, error) {
	priv, err := ParseSecretKey(secretKey)
	if err != nil {
		return nil, err
	}
	return schnorr.SerializePubKey(priv.PubKey()), nil
}

// ParseSecretKey parses a 32-byte big-endian secret scalar. Zero and values
// not below the group order are rejected rather than reduced.
func ParseSecretKey(secretKey []byte) (*btcec.PrivateKey, error) {
	if len(secretKey) != SecretKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrPrivateKeyInvalid, len(secretKey), SecretKeySize)
	}

	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(secretKey); overflow || k.IsZero() {
		return nil, fmt.Errorf("%w: scalar out of range", ErrPrivateKeyInvalid)
	}

	return secp256k1.NewPrivateKey(&k), nil
}

// ParsePublicKey parses an x-only (32 bytes, even Y) or SEC1 compressed
// (33 bytes) public key.
func ParsePublicKey(publicKey []byte) (*btcec.PublicKey, error) {
	var (
		pub *btcec.PublicKey
		err error
	)

	switch len(publicKey) {
	case XOnlyPublicKeySize:
		pub, err = schnorr.ParsePubKey(publicKey)
	case CompressedPublicKeySize:
		pub, err = btcec.ParsePubKey(publicKey)
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want %d or %d",
			ErrPublicKeyInvalid, len(publicKey), XOnlyPublicKeySize, CompressedPublicKeySize)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPublicKeyInvalid, err)
	}

	return pub, nil
}

// SharedSecret computes the x-coordinate of secretKey·publicKey.
// Only X is used; it is not hashed.
func SharedSecret(secretKey *btcec.PrivateKey, publicKey *btcec.PublicKey) ([]byte, error) {
	var point, result secp256k1.JacobianPoint
	publicKey.AsJacobian(&point)
	secp256k1.ScalarMultNonConst(&secretKey.Key, &point, &result)

	if result.Z.IsZero() {
		return nil, ErrSharedSecretComputationFailed
	}
	result.ToAffine()

	x := result.X.Bytes()
	shared := make([]byte, SharedSecretSize)
	copy(shared, x[:])
	return shared, nil
}

// ConversationKey derives the long-term symmetric key shared by the owner
// of secretKey and the owner of publicKey:
//
//	HKDF-Extract(SHA-256, salt="nip44-v2", ikm=ECDH_x(secretKey, publicKey))
//
// ConversationKey(a, B) equals ConversationKey(b, A).
func ConversationKey(secretKey, publicKey []byte) ([]byte, error) {
	priv, err := ParseSecretKey(secretKey)
	if err != nil {
		return nil, err
	}

	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}

	shared, err := SharedSecret(priv, pub)
	if err != nil {
		return nil, err
	}

	return extractKey([]byte(ConversationKeySalt), shared), nil
}

// ConversationKey derives the conversation key between k and peer.
func (k *Keypair) ConversationKey(peer []byte) ([]byte, error) {
	return ConversationKey(k.SecretKey, peer)
}
