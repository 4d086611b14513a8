package kex

import (
	"crypto/cipher"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/kex/pkg/kex/suite"
	"github.com/codahale/kex/pkg/kex/transcript"
)

type recordingSuite struct {
	suite.Suite
	key []byte
}

func (s *recordingSuite) New(key []byte) cipher.AEAD {
	s.key = append([]byte(nil), key...)

	return s.Suite.New(key)
}

func newKeypair(t *testing.T) *Keypair {
	t.Helper()

	kp, err := NewKeypair()
	if err != nil {
		t.Fatal(err)
	}

	return kp
}

func newTranscript() *transcript.Transcript {
	t := transcript.New([]byte("kex test"))
	t.AppendMessage([]byte("session"), []byte("one"))

	return t
}

// roundTrip asserts that a message sealed by one AEAD can be opened by the other.
func roundTrip(t *testing.T, name string, a, b cipher.AEAD) {
	t.Helper()

	message := []byte("one two three four I declare a thumb war")
	nonce := make([]byte, a.NonceSize())
	ciphertext := a.Seal(nil, nonce, message, []byte(name))

	plaintext, err := b.Open(nil, nonce, ciphertext, []byte(name))
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}

	assert.Equal(t, name+" plaintext", message, plaintext)
}

// canOpen returns true if a message sealed by one AEAD can be opened by the other.
func canOpen(t *testing.T, a, b cipher.AEAD) bool {
	t.Helper()

	nonce := make([]byte, a.NonceSize())
	ciphertext := a.Seal(nil, nonce, []byte("message"), nil)

	_, err := b.Open(nil, nonce, ciphertext, nil)

	return err == nil
}
