//go:build !nochacha
// +build !nochacha

package suite

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestChaCha20Poly1305(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "key size", 32, ChaCha20Poly1305.KeySize())
	assert.Equal(t, "nonce size", 12, ChaCha20Poly1305.New(make([]byte, 32)).NonceSize())

	testSuite(t, ChaCha20Poly1305)
}

func TestXChaCha20Poly1305(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "key size", 32, XChaCha20Poly1305.KeySize())
	assert.Equal(t, "nonce size", 24, XChaCha20Poly1305.New(make([]byte, 32)).NonceSize())

	testSuite(t, XChaCha20Poly1305)
}

func TestByName_ChaCha(t *testing.T) {
	t.Parallel()

	s, err := ByName("xchacha20-poly1305")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "suite", XChaCha20Poly1305.Name(), s.Name())
}
