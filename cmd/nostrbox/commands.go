package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	nostrbox "github.com/nostrbox/client-go"
)

// Flag name constants to avoid duplication
const (
	flagSecretKey       = "secret-key"
	flagPeer            = "peer"
	flagConversationKey = "conversation-key"
	flagVerbose         = "verbose"
)

var errMissingSecretKey = errors.New("secret key required: pass --" + flagSecretKey + " or set " + envSecretKey)

// KeygenOutput is printed by keygen.
type KeygenOutput struct {
	SecretKey string `json:"secretKey"`
	PublicKey string `json:"publicKey"`
}

// PublicKeyOutput is printed by pubkey.
type PublicKeyOutput struct {
	PublicKey string `json:"publicKey"`
}

// ConversationKeyOutput is printed by conversation-key.
type ConversationKeyOutput struct {
	ConversationKey string `json:"conversationKey"`
}

// PayloadOutput is printed by encrypt.
type PayloadOutput struct {
	Payload string `json:"payload"`
}

// PlaintextOutput is printed by decrypt.
type PlaintextOutput struct {
	Plaintext string `json:"plaintext"`
}

// PadLenOutput is printed by padlen.
type PadLenOutput struct {
	Unpadded int `json:"unpadded"`
	Padded   int `json:"padded"`
}

type app struct {
	cfg     *Config
	verbose bool
	logger  zerolog.Logger
}

func newRootCmd(cfg *Config) *cobra.Command {
	a := &app{cfg: cfg, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "nostrbox",
		Short:         "NIP-44 v2 payload encryption tool",
		Long:          "Generate secp256k1 keys, derive conversation keys and encrypt or decrypt NIP-44 version 2 payloads. Results are printed to stdout as JSON.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogger()
		},
	}
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, flagVerbose, "v", false, "log debug events to stderr")

	root.AddCommand(
		a.keygenCmd(),
		a.pubkeyCmd(),
		a.conversationKeyCmd(),
		a.encryptCmd(),
		a.decryptCmd(),
		a.padlenCmd(),
	)

	return root
}

func (a *app) setupLogger() {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.cfg.Stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}

func (a *app) keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := nostrbox.GenerateKeypair()
			if err != nil {
				return fmt.Errorf("generate key pair: %w", err)
			}
			a.logger.Debug().Str("pubkey", kp.PublicKeyHex()).Msg("generated key pair")

			return a.print(KeygenOutput{
				SecretKey: kp.SecretKeyHex(),
				PublicKey: kp.PublicKeyHex(),
			})
		},
	}
}

func (a *app) pubkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of a secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := a.keypair(cmd)
			if err != nil {
				return err
			}
			return a.print(PublicKeyOutput{PublicKey: kp.PublicKeyHex()})
		},
	}
	cmd.Flags().String(flagSecretKey, "", "hex secret key (default $"+envSecretKey+")")
	return cmd
}

func (a *app) conversationKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversation-key",
		Short: "Derive the conversation key shared with a peer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := a.keypair(cmd)
			if err != nil {
				return err
			}
			peer, _ := cmd.Flags().GetString(flagPeer)

			key, err := kp.ConversationKey(peer)
			if err != nil {
				return err
			}
			return a.print(ConversationKeyOutput{ConversationKey: hex.EncodeToString(key)})
		},
	}
	cmd.Flags().String(flagSecretKey, "", "hex secret key (default $"+envSecretKey+")")
	cmd.Flags().String(flagPeer, "", "peer hex public key, x-only or compressed")
	_ = cmd.MarkFlagRequired(flagPeer)
	return cmd
}

func (a *app) encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt stdin for a peer",
		Long: `Encrypt the message read from stdin. A single trailing newline is removed.

Keys come from either --conversation-key or --secret-key (or $` + envSecretKey + `) with --peer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.readInput()
			if err != nil {
				return err
			}
			plaintext := strings.TrimSuffix(strings.TrimSuffix(input, "\n"), "\r")

			if key, ok, err := conversationKeyFlag(cmd); err != nil {
				return err
			} else if ok {
				payload, err := nostrbox.Encrypt(plaintext, key)
				if err != nil {
					return err
				}
				return a.print(PayloadOutput{Payload: payload})
			}

			c, peer, err := a.cipher(cmd)
			if err != nil {
				return err
			}
			payload, err := c.Encrypt(cmd.Context(), plaintext, peer)
			if err != nil {
				return err
			}
			return a.print(PayloadOutput{Payload: payload})
		},
	}
	addCipherFlags(cmd)
	return cmd
}

func (a *app) decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a payload read from stdin",
		Long: `Decrypt the payload read from stdin. Surrounding whitespace is ignored.

Keys come from either --conversation-key or --secret-key (or $` + envSecretKey + `) with --peer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.readInput()
			if err != nil {
				return err
			}
			payload := strings.TrimSpace(input)

			if key, ok, err := conversationKeyFlag(cmd); err != nil {
				return err
			} else if ok {
				plaintext, err := nostrbox.Decrypt(payload, key)
				if err != nil {
					return err
				}
				return a.print(PlaintextOutput{Plaintext: plaintext})
			}

			c, peer, err := a.cipher(cmd)
			if err != nil {
				return err
			}
			plaintext, err := c.Decrypt(cmd.Context(), payload, peer)
			if err != nil {
				return err
			}
			return a.print(PlaintextOutput{Plaintext: plaintext})
		},
	}
	addCipherFlags(cmd)
	return cmd
}

func (a *app) padlenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "padlen <n>",
		Short: "Print the padded size of an n-byte plaintext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse length: %w", err)
			}
			padded, err := nostrbox.PaddedLength(n)
			if err != nil {
				return err
			}
			return a.print(PadLenOutput{Unpadded: n, Padded: padded})
		},
	}
}

func addCipherFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagSecretKey, "", "hex secret key (default $"+envSecretKey+")")
	cmd.Flags().String(flagPeer, "", "peer hex public key, x-only or compressed")
	cmd.Flags().String(flagConversationKey, "", "hex conversation key, replaces --secret-key and --peer")
	cmd.MarkFlagsMutuallyExclusive(flagConversationKey, flagPeer)
	cmd.MarkFlagsMutuallyExclusive(flagConversationKey, flagSecretKey)
}

// keypair loads the key pair from --secret-key or the environment.
func (a *app) keypair(cmd *cobra.Command) (*nostrbox.Keypair, error) {
	secret, _ := cmd.Flags().GetString(flagSecretKey)
	if secret == "" {
		secret = a.cfg.Getenv(envSecretKey)
		if secret != "" {
			a.logger.Debug().Msg("secret key loaded from environment")
		}
	}
	if secret == "" {
		return nil, errMissingSecretKey
	}
	return nostrbox.KeypairFromHex(strings.TrimSpace(secret))
}

func (a *app) cipher(cmd *cobra.Command) (*nostrbox.KeyCipher, string, error) {
	peer, _ := cmd.Flags().GetString(flagPeer)
	if peer == "" {
		return nil, "", fmt.Errorf("--%s or --%s is required", flagPeer, flagConversationKey)
	}

	kp, err := a.keypair(cmd)
	if err != nil {
		return nil, "", err
	}

	c, err := nostrbox.NewKeyCipher(kp, nostrbox.WithLogger(a.logger))
	if err != nil {
		return nil, "", err
	}
	return c, peer, nil
}

func conversationKeyFlag(cmd *cobra.Command) ([]byte, bool, error) {
	s, _ := cmd.Flags().GetString(flagConversationKey)
	if s == "" {
		return nil, false, nil
	}
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, false, fmt.Errorf("parse conversation key: %w", err)
	}
	return key, true, nil
}

func (a *app) readInput() (string, error) {
	data, err := io.ReadAll(a.cfg.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (a *app) print(v any) error {
	if err := json.NewEncoder(a.cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
