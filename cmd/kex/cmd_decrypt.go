package main

import (
	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex"
	"github.com/codahale/kex/pkg/kex/suite"
)

type decryptCmd struct {
	SecretKey  string `arg:"" type:"existingfile" help:"The path to the secret key."`
	Ciphertext string `arg:"" type:"existingfile" help:"The path to the ciphertext file."`
	Plaintext  string `arg:"" type:"path" default:"-" help:"The path to the plaintext file."`

	Context string `default:"" help:"The application context the key was bound to."`
	Suite   string `default:"aes256-gcm" help:"The AEAD suite to use."`
	Armor   bool   `help:"Decode the ciphertext as base64."`
}

func (cmd *decryptCmd) Run(_ *kong.Context) error {
	s, err := suite.ByName(cmd.Suite)
	if err != nil {
		return err
	}

	// Read the secret key.
	sk, err := readSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	defer sk.Zero()

	// Open the ciphertext input.
	src, err := openInput(cmd.Ciphertext, cmd.Armor)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Read the ephemeral public key and recreate the AEAD.
	ephemeral, err := readHeader(src, kex.PublicKeySize)
	if err != nil {
		return err
	}

	aead, err := sk.AcceptAEAD(s, []byte(cmd.Context), ephemeral)
	if err != nil {
		return err
	}

	// Decrypt the ciphertext.
	plaintext, err := open(aead, ephemeral, src)
	if err != nil {
		return err
	}

	// Write the plaintext output.
	return writeOutput(cmd.Plaintext, false, plaintext)
}
