package nostrbox

import "github.com/rs/zerolog"

// cipherConfig holds configuration for a KeyCipher.
type cipherConfig struct {
	cacheConversationKeys bool
	logger                zerolog.Logger
}

func defaultCipherConfig() cipherConfig {
	return cipherConfig{
		logger: zerolog.Nop(),
	}
}

// Option configures a KeyCipher.
type Option func(*cipherConfig)

// WithConversationKeyCache enables or disables caching of conversation keys
// per peer. Caching is off by default. When on, the derived keys stay in
// memory for the lifetime of the cipher.
func WithConversationKeyCache(enabled bool) Option {
	return func(c *cipherConfig) {
		c.cacheConversationKeys = enabled
	}
}

// WithLogger sets the logger used for debug events. Key material and
// plaintexts are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *cipherConfig) {
		c.logger = logger
	}
}
