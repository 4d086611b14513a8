package main

import (
	"errors"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/codahale/kex/pkg/kex"
	"golang.org/x/term"
)

type cli struct {
	SecretKey   secretKeyCmd   `cmd:"" help:"Generate a new secret key."`
	PublicKey   publicKeyCmd   `cmd:"" help:"Derive a public key from a secret key."`
	Encrypt     encryptCmd     `cmd:"" help:"Encrypt a message for a public key with an ephemeral key."`
	Decrypt     decryptCmd     `cmd:"" help:"Decrypt a message encrypted with an ephemeral key."`
	EncryptCert encryptCertCmd `cmd:"" help:"Encrypt a message with a certified ephemeral key."`
	DecryptCert decryptCertCmd `cmd:"" help:"Decrypt a message encrypted with a certified ephemeral key."`
	Suites      suitesCmd      `cmd:"" help:"List the available AEAD suites."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli, kong.Description("Derive AEAD keys from ristretto255 key exchanges."))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

var errTerminalOutput = errors.New("refusing to write binary output to a terminal; use --armor")

func decodePublicKey(pathOrKey string) (*kex.PublicKey, error) {
	// Try decoding the key directly.
	var pk kex.PublicKey
	if err := pk.UnmarshalText([]byte(pathOrKey)); err == nil {
		return &pk, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	// Decode the public key.
	if err := pk.UnmarshalText(trimText(b)); err != nil {
		return nil, err
	}

	return &pk, nil
}

func readSecretKey(path string) (*kex.SecretKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sk kex.SecretKey
	if err := sk.UnmarshalText(trimText(b)); err != nil {
		return nil, err
	}

	return &sk, nil
}

func openOutput(path string, armored bool) (io.WriteCloser, error) {
	var dst io.WriteCloser = os.Stdout

	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		dst = f
	}

	if armored {
		return newArmorWriter(dst), nil
	}

	return dst, nil
}

// checkTerminal returns errTerminalOutput if binary data would be written to a terminal.
func checkTerminal(path string, armored bool) error {
	if path == "-" && !armored && term.IsTerminal(int(os.Stdout.Fd())) {
		return errTerminalOutput
	}

	return nil
}

func openInput(path string, armored bool) (io.ReadCloser, error) {
	var src io.ReadCloser = os.Stdin

	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}

		src = f
	}

	if armored {
		return newArmorReader(src), nil
	}

	return src, nil
}

func trimText(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}

	return b
}
