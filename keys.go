package nostrbox

import (
	"encoding/hex"

	"github.com/nostrbox/client-go/internal/crypto"
)

// Keypair is a secp256k1 identity key pair.
type Keypair struct {
	kp *crypto.Keypair
}

// GenerateKeypair creates a new random key pair.
func GenerateKeypair() (*Keypair, error) {
	kp, err := crypto.GenerateKeypair()
	if err != nil {
		return nil, wrapKeyError(StageSecretKey, err)
	}
	return &Keypair{kp: kp}, nil
}

// KeypairFromHex loads a key pair from a 64-character hex secret key.
func KeypairFromHex(secretKeyHex string) (*Keypair, error) {
	secretKey, err := crypto.FromHex32(secretKeyHex)
	if err != nil {
		return nil, wrapKeyError(StageSecretKey, err)
	}
	return KeypairFromBytes(secretKey)
}

// KeypairFromBytes loads a key pair from a raw 32-byte secret key.
func KeypairFromBytes(secretKey []byte) (*Keypair, error) {
	kp, err := crypto.KeypairFromSecretKey(secretKey)
	if err != nil {
		return nil, wrapKeyError(StageSecretKey, err)
	}
	return &Keypair{kp: kp}, nil
}

func (k *Keypair) loaded() bool {
	return k != nil && k.kp != nil
}

// SecretKeyHex returns the secret key as lowercase hex, or "" for a
// Keypair not built by one of the constructors.
func (k *Keypair) SecretKeyHex() string {
	if !k.loaded() {
		return ""
	}
	return hex.EncodeToString(k.kp.SecretKey)
}

// PublicKeyHex returns the x-only public key as lowercase hex, or "" for a
// Keypair not built by one of the constructors.
func (k *Keypair) PublicKeyHex() string {
	if !k.loaded() {
		return ""
	}
	return k.kp.PublicKeyHex
}

// PublicKey returns a copy of the 32-byte x-only public key.
func (k *Keypair) PublicKey() []byte {
	if !k.loaded() {
		return nil
	}
	out := make([]byte, len(k.kp.PublicKey))
	copy(out, k.kp.PublicKey)
	return out
}

// ConversationKey derives the conversation key shared with the owner of
// peerPublicKeyHex, an x-only or compressed public key.
func (k *Keypair) ConversationKey(peerPublicKeyHex string) ([]byte, error) {
	if !k.loaded() {
		return nil, ErrMissingKeypair
	}

	peer, err := crypto.FromHexKey(peerPublicKeyHex)
	if err != nil {
		return nil, wrapKeyError(StagePublicKey, err)
	}

	key, err := k.kp.ConversationKey(peer)
	if err != nil {
		return nil, wrapKeyError(StagePublicKey, err)
	}
	return key, nil
}
