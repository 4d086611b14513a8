package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex"
	"github.com/codahale/kex/pkg/kex/suite"
	"github.com/codahale/kex/pkg/kex/transcript"
)

type decryptCertCmd struct {
	SecretKey  string `arg:"" type:"existingfile" help:"The path to the recipient's secret key."`
	PublicKey  string `arg:"" help:"The sender's public key, or a path to it."`
	Ciphertext string `arg:"" type:"existingfile" help:"The path to the ciphertext file."`
	Plaintext  string `arg:"" type:"path" default:"-" help:"The path to the plaintext file."`

	Label string `default:"kex" help:"The transcript label the certificate was bound to."`
	Suite string `default:"aes256-gcm" help:"The AEAD suite to use."`
	Armor bool   `help:"Decode the ciphertext as base64."`
}

func (cmd *decryptCertCmd) Run(_ *kong.Context) error {
	s, err := suite.ByName(cmd.Suite)
	if err != nil {
		return err
	}

	// Read the recipient's secret key.
	sk, err := readSecretKey(cmd.SecretKey)
	if err != nil {
		return err
	}

	defer sk.Zero()

	// Decode the sender's public key.
	pk, err := decodePublicKey(cmd.PublicKey)
	if err != nil {
		return err
	}

	// Open the ciphertext input.
	src, err := openInput(cmd.Ciphertext, cmd.Armor)
	if err != nil {
		return err
	}

	defer func() { _ = src.Close() }()

	// Read the certificate and recreate the AEAD.
	header, err := readHeader(src, kex.CertificateSize)
	if err != nil {
		return err
	}

	var cert kex.Certificate
	if err := cert.UnmarshalBinary(header); err != nil {
		return err
	}

	aead, err := sk.ReceiverAEADWithCert(s, transcript.New([]byte(cmd.Label)), &cert, pk)
	if err != nil {
		return err
	}

	// Decrypt the ciphertext.
	plaintext, err := open(aead, header, src)
	if err != nil {
		return err
	}

	// Write the plaintext output.
	if err := writeOutput(cmd.Plaintext, false, plaintext); err != nil {
		return err
	}

	// Print the verified sender.
	_, _ = fmt.Fprintf(os.Stderr, "Message originally encrypted by %s\n", pk)

	return nil
}
