package suite

import (
	"bytes"
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestByName(t *testing.T) {
	t.Parallel()

	s, err := ByName("aes256-gcm")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "suite", AES256GCM.Name(), s.Name())

	if _, err := ByName("rot13"); !errors.Is(err, ErrUnknownSuite) {
		t.Errorf("expected ErrUnknownSuite but was %v", err)
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()

	for _, name := range []string{"aes128-gcm", "aes256-gcm"} {
		found := false

		for _, n := range names {
			if n == name {
				found = true
			}
		}

		if !found {
			t.Errorf("%s was not linked in", name)
		}
	}
}

func TestAESGCM(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AES-128 key size", 16, AES128GCM.KeySize())
	assert.Equal(t, "AES-256 key size", 32, AES256GCM.KeySize())

	for _, s := range []Suite{AES128GCM, AES256GCM} {
		testSuite(t, s)
	}
}

func TestSuite_New_InvalidKeySize(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("did not panic")
		}
	}()

	_ = AES256GCM.New(make([]byte, 16))
}

func testSuite(t *testing.T, s Suite) {
	t.Helper()

	key := bytes.Repeat([]byte{0x42}, s.KeySize())
	message := []byte("this is a message")

	aead := s.New(key)
	nonce := make([]byte, aead.NonceSize())
	ciphertext := aead.Seal(nil, nonce, message, nil)

	plaintext, err := s.New(key).Open(nil, nonce, ciphertext, nil)
	if err != nil {
		t.Fatalf("%s: %v", s.Name(), err)
	}

	assert.Equal(t, s.Name()+" plaintext", message, plaintext)

	ciphertext[0] ^= 1

	if _, err := aead.Open(nil, nonce, ciphertext, nil); err == nil {
		t.Errorf("%s: opened a modified ciphertext", s.Name())
	}
}
