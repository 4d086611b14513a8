package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex"
)

type secretKeyCmd struct {
	Output string `arg:"" type:"path" help:"The output path for the secret key."`
}

func (cmd *secretKeyCmd) Run(_ *kong.Context) error {
	// Generate a new secret key.
	sk, err := kex.NewSecretKey()
	if err != nil {
		return err
	}

	defer sk.Zero()

	// Encode it as text.
	text, err := sk.MarshalText()
	if err != nil {
		return err
	}

	// Write out the secret key.
	return os.WriteFile(cmd.Output, text, 0600)
}
