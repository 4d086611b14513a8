package main

import (
	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex/suite"
)

type encryptCmd struct {
	PublicKey  string `arg:"" help:"The recipient's public key, or a path to it."`
	Plaintext  string `arg:"" type:"existingfile" help:"The path to the plaintext file."`
	Ciphertext string `arg:"" type:"path" default:"-" help:"The path to the ciphertext file."`

	Context string `default:"" help:"The application context to bind the key to."`
	Suite   string `default:"aes256-gcm" help:"The AEAD suite to use."`
	Armor   bool   `help:"Encode the ciphertext as base64."`
}

func (cmd *encryptCmd) Run(_ *kong.Context) error {
	if err := checkTerminal(cmd.Ciphertext, cmd.Armor); err != nil {
		return err
	}

	s, err := suite.ByName(cmd.Suite)
	if err != nil {
		return err
	}

	// Decode the recipient's public key.
	pk, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	// Create an AEAD with an ephemeral key.
	ephemeral, aead, err := pk.InitAEAD(s, []byte(cmd.Context))
	if err != nil {
		return err
	}

	// Open the plaintext input.
	src, err := openInput(cmd.Plaintext, false)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Open the ciphertext output.
	dst, err := openOutput(cmd.Ciphertext, cmd.Armor)
	if err != nil {
		return err
	}

	// Write the ephemeral public key and the sealed plaintext.
	if err := seal(dst, aead, ephemeral, src); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}
