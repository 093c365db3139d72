// Package crypto implements NIP-44 version 2 payload encryption: the
// authenticated scheme nostr clients use for direct messages, sealed and
// gift-wrapped events, and private list content.
//
// # Algorithm Suite
//
//   - secp256k1 ECDH: the shared x-coordinate of secretKey·publicKey. Public
//     keys are x-only (BIP-340) or SEC1 compressed.
//
//   - HKDF-SHA256 (RFC 5869): Extract with salt "nip44-v2" turns the shared
//     x-coordinate into a conversation key; Expand with the message nonce as
//     info yields 76 bytes of per-message keys.
//
//   - ChaCha20 (RFC 8439, IETF variant): stream cipher over the padded
//     plaintext, counter starting at 0.
//
//   - HMAC-SHA256: authenticates nonce || ciphertext.
//
// # Payload Format
//
//	base64( 0x02 || nonce[32] || ciphertext[n] || mac[32] )
//
// Plaintexts are padded to one of a fixed schedule of bucket lengths (see
// [CalcPaddedLen]) so ciphertext length reveals only a size class.
//
// # Security Notes
//
// [Decrypt] verifies the MAC in constant time BEFORE running the stream
// cipher. Plaintext derived from tampered input is never produced.
//
// Nonces MUST be unique per conversation key. [Encrypt] always draws a fresh
// random nonce; the deterministic form exists only as
// [EncryptWithNonceForTesting] for reproducing published vectors.
//
// Every function is a pure function of its arguments and safe for concurrent
// use. Conversation keys may be cached by callers; this package keeps none.
package crypto
