package main

import (
	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex/suite"
	"github.com/codahale/kex/pkg/kex/transcript"
)

type encryptCertCmd struct {
	SecretKey  string `arg:"" type:"existingfile" help:"The path to the sender's secret key."`
	PublicKey  string `arg:"" help:"The recipient's public key, or a path to it."`
	Plaintext  string `arg:"" type:"existingfile" help:"The path to the plaintext file."`
	Ciphertext string `arg:"" type:"path" default:"-" help:"The path to the ciphertext file."`

	Label string `default:"kex" help:"The transcript label to bind the certificate to."`
	Suite string `default:"aes256-gcm" help:"The AEAD suite to use."`
	Armor bool   `help:"Encode the ciphertext as base64."`
}

func (cmd *encryptCertCmd) Run(_ *kong.Context) error {
	if err := checkTerminal(cmd.Ciphertext, cmd.Armor); err != nil {
		return err
	}

	s, err := suite.ByName(cmd.Suite)
	if err != nil {
		return err
	}

	// Read the sender's secret key.
	sk, err := readSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	defer sk.Zero()

	// Decode the recipient's public key.
	pk, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	// Issue a certificate for an ephemeral key and create an AEAD with it.
	cert, aead, err := sk.Keypair().SenderAEADWithCert(s, transcript.New([]byte(cmd.Label)), pk)
	if err != nil {
		return err
	}

	header, _ := cert.MarshalBinary()

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

	// Write the certificate and the sealed plaintext.
	if err := seal(dst, aead, header, src); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}
