//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	nostrbox "github.com/nostrbox/client-go"
)

var (
	vectorsFile   string
	secretKeyHex  string
	peerSecretHex string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	vectorsFile = os.Getenv("NOSTRBOX_VECTORS_FILE")
	secretKeyHex = os.Getenv("NOSTRBOX_SECRET_KEY")
	peerSecretHex = os.Getenv("NOSTRBOX_PEER_SECRET_KEY")

	os.Stderr.WriteString("Running integration tests...\n")
	if vectorsFile != "" {
		os.Stderr.WriteString("Vectors file: " + vectorsFile + "\n")
	}

	os.Exit(m.Run())
}

// keypairFromEnv loads a key pair from hex, or generates one when unset.
func keypairFromEnv(t *testing.T, secretHex string) *nostrbox.Keypair {
	t.Helper()

	if secretHex == "" {
		kp, err := nostrbox.GenerateKeypair()
		if err != nil {
			t.Fatalf("GenerateKeypair() error = %v", err)
		}
		return kp
	}

	kp, err := nostrbox.KeypairFromHex(secretHex)
	if err != nil {
		t.Fatalf("KeypairFromHex() error = %v", err)
	}
	return kp
}

func TestIntegration_ConfiguredKeysRoundTrip(t *testing.T) {
	alice := keypairFromEnv(t, secretKeyHex)
	bob := keypairFromEnv(t, peerSecretHex)
	ctx := context.Background()

	sender, err := nostrbox.NewKeyCipher(alice, nostrbox.WithConversationKeyCache(true))
	if err != nil {
		t.Fatalf("NewKeyCipher() error = %v", err)
	}
	receiver, err := nostrbox.NewKeyCipher(bob)
	if err != nil {
		t.Fatalf("NewKeyCipher() error = %v", err)
	}

	messages := []string{
		"gm",
		"multi\nline\nmessage",
		"🍕 and 表ポあA",
	}

	for _, msg := range messages {
		payload, err := sender.Encrypt(ctx, msg, bob.PublicKeyHex())
		if err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}

		got, err := receiver.Decrypt(ctx, payload, alice.PublicKeyHex())
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if got != msg {
			t.Errorf("Decrypt() = %q, want %q", got, msg)
		}
	}

	t.Logf("alice %s -> bob %s: %d messages", alice.PublicKeyHex(), bob.PublicKeyHex(), len(messages))
}
