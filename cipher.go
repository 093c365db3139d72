package nostrbox

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Cipher encrypts and decrypts payloads between a local identity and
// remote peers identified by hex public keys.
type Cipher interface {
	Encrypt(ctx context.Context, plaintext, recipientPublicKey string) (string, error)
	Decrypt(ctx context.Context, payload, senderPublicKey string) (string, error)
}

var _ Cipher = (*KeyCipher)(nil)

// KeyCipher is a Cipher backed by a local key pair. It is safe for
// concurrent use.
type KeyCipher struct {
	keypair *Keypair
	cache   bool
	logger  zerolog.Logger

	mu   sync.RWMutex
	keys map[string][]byte
}

// NewKeyCipher returns a Cipher for kp.
func NewKeyCipher(kp *Keypair, opts ...Option) (*KeyCipher, error) {
	if !kp.loaded() {
		return nil, ErrMissingKeypair
	}

	cfg := defaultCipherConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &KeyCipher{
		keypair: kp,
		cache:   cfg.cacheConversationKeys,
		logger:  cfg.logger.With().Str("pubkey", kp.PublicKeyHex()).Logger(),
	}
	if c.cache {
		c.keys = make(map[string][]byte)
	}

	return c, nil
}

// PublicKeyHex returns the local public key.
func (c *KeyCipher) PublicKeyHex() string {
	return c.keypair.PublicKeyHex()
}

// Encrypt encrypts plaintext for recipientPublicKey.
func (c *KeyCipher) Encrypt(ctx context.Context, plaintext, recipientPublicKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := c.conversationKey(recipientPublicKey)
	if err != nil {
		return "", err
	}

	payload, err := Encrypt(plaintext, key)
	if err != nil {
		c.logger.Debug().Err(err).Str("peer", recipientPublicKey).Msg("encrypt failed")
		return "", err
	}
	return payload, nil
}

// Decrypt decrypts a payload sent by senderPublicKey.
func (c *KeyCipher) Decrypt(ctx context.Context, payload, senderPublicKey string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key, err := c.conversationKey(senderPublicKey)
	if err != nil {
		return "", err
	}

	plaintext, err := Decrypt(payload, key)
	if err != nil {
		c.logger.Debug().Err(err).Str("peer", senderPublicKey).Msg("decrypt failed")
		return "", err
	}
	return plaintext, nil
}

// CachedPeers returns the number of peers with a cached conversation key.
func (c *KeyCipher) CachedPeers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// ForgetPeer drops the cached conversation key for peerPublicKey, if any.
func (c *KeyCipher) ForgetPeer(peerPublicKey string) {
	if !c.cache {
		return
	}
	c.mu.Lock()
	delete(c.keys, strings.ToLower(peerPublicKey))
	c.mu.Unlock()
}

func (c *KeyCipher) conversationKey(peer string) ([]byte, error) {
	if !c.cache {
		return c.keypair.ConversationKey(peer)
	}

	id := strings.ToLower(peer)

	c.mu.RLock()
	key, ok := c.keys[id]
	c.mu.RUnlock()
	if ok {
		c.logger.Debug().Str("peer", id).Msg("conversation key cache hit")
		return key, nil
	}

	key, err := c.keypair.ConversationKey(peer)
	if err != nil {
		c.logger.Debug().Err(err).Str("peer", id).Msg("conversation key derivation failed")
		return nil, err
	}

	c.mu.Lock()
	c.keys[id] = key
	c.mu.Unlock()
	c.logger.Debug().Str("peer", id).Msg("conversation key cache miss")

	return key, nil
}
