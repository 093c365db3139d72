// Package nostrbox provides a Go SDK for NIP-44 version 2, the versioned
// encrypted payload format nostr clients use for private messages.
//
// Two parties holding secp256k1 keys derive the same conversation key with
// ECDH and HKDF. Each message is padded to a size bucket, encrypted with
// ChaCha20 under keys derived from a fresh random nonce and authenticated
// with HMAC-SHA256. The result is a base64 string that starts with the
// version byte 0x02.
//
// Basic usage:
//
//	alice, err := nostrbox.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encrypt for a recipient identified by their hex public key
//	payload, err := nostrbox.EncryptTo("hello", alice, bobPublicKeyHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The recipient decrypts with their own key pair and the sender's key
//	plaintext, err := nostrbox.DecryptFrom(payload, bob, alice.PublicKeyHex())
//
// Long-lived clients that exchange many messages with the same peers can
// use a [KeyCipher] with [WithConversationKeyCache] to skip repeated ECDH.
package nostrbox
