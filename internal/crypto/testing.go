package crypto

import "io"

// SetRandReaderForTesting sets the random reader used by GenerateKeypair and
// Encrypt. This is intended for testing only. Returns a function to restore
// the original reader.
// Since this package is internal, this function cannot be accessed by external code.
func SetRandReaderForTesting(r io.Reader) func() {
	original := randReader
	randReader = r
	return func() { randReader = original }
}

// EncryptWithNonceForTesting encrypts with a caller-chosen nonce so known
// vectors can be reproduced byte for byte. A fixed nonce breaks the scheme;
// production code must use Encrypt.
func EncryptWithNonceForTesting(plaintext string, conversationKey, nonce []byte) (string, error) {
	return encrypt(plaintext, conversationKey, nonce)
}
