package main

import (
	"io"

	"github.com/alecthomas/kong"
)

type publicKeyCmd struct {
	SecretKey string `arg:"" type:"existingfile" help:"The path to the secret key."`
	Output    string `arg:"" type:"path" default:"-" help:"The output path for the public key."`
}

func (cmd *publicKeyCmd) Run(_ *kong.Context) error {
	// Read the secret key.
	sk, err := readSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	defer sk.Zero()

	// Open the output.
	dst, err := openOutput(cmd.Output, false)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	// Encode the public key and write it to the output.
	_, err = io.WriteString(dst, sk.PublicKey().String()+"\n")

	return err
}
