//go:build !nochacha
// +build !nochacha

package suite

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"
)

//nolint:gochecknoglobals // constants
var (
	// ChaCha20Poly1305 is the RFC 8439 ChaCha20-Poly1305 construction.
	ChaCha20Poly1305 Suite = chacha{name: "chacha20-poly1305", xNonce: false}

	// XChaCha20Poly1305 is ChaCha20-Poly1305 with an extended 24-byte nonce.
	XChaCha20Poly1305 Suite = chacha{name: "xchacha20-poly1305", xNonce: true}
)

func init() {
	register(ChaCha20Poly1305)
	register(XChaCha20Poly1305)
}

type chacha struct {
	name   string
	xNonce bool
}

func (s chacha) Name() string {
	return s.name
}

func (s chacha) KeySize() int {
	return chacha20poly1305.KeySize
}

func (s chacha) New(key []byte) cipher.AEAD {
	checkKeySize(s, key)

	newAEAD := chacha20poly1305.New
	if s.xNonce {
		newAEAD = chacha20poly1305.NewX
	}

	aead, err := newAEAD(key)
	if err != nil {
		panic(err)
	}

	return aead
}
