package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

// envSecretKey is read when --secret-key is not given.
const envSecretKey = "NOSTRBOX_SECRET_KEY"

// Config holds the I/O streams and environment for the CLI.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultConfig returns a Config wired to the process streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

func run(args []string, cfg *Config) error {
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	if cfg.Stderr == nil {
		cfg.Stderr = io.Discard
	}
	if cfg.Getenv == nil {
		cfg.Getenv = func(string) string { return "" }
	}

	root := newRootCmd(cfg)
	if len(args) > 0 {
		args = args[1:]
	}
	root.SetArgs(args)

	return root.ExecuteContext(context.Background())
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
