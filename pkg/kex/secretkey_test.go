package kex

import (
	"errors"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestSecretKey_MarshalBinary(t *testing.T) {
	t.Parallel()

	sk, err := NewSecretKey()
	if err != nil {
		t.Fatal(err)
	}

	b, err := sk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "encoded size", SecretKeySize, len(b))

	var sk2 SecretKey
	if err := sk2.UnmarshalBinary(b); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "public key", sk.PublicKey().String(), sk2.PublicKey().String())
	assert.Equal(t, "nonce", sk.nonce, sk2.nonce)
}

func TestSecretKey_UnmarshalBinary(t *testing.T) {
	t.Parallel()

	var sk SecretKey

	if err := sk.UnmarshalBinary(make([]byte, 12)); !errors.Is(err, ErrInvalidSecretKey) {
		t.Errorf("expected ErrInvalidSecretKey but was %v", err)
	}

	// A non-canonical scalar.
	b := make([]byte, SecretKeySize)
	for i := 0; i < 32; i++ {
		b[i] = 0xff
	}

	if err := sk.UnmarshalBinary(b); !errors.Is(err, ErrInvalidSecretKey) {
		t.Errorf("expected ErrInvalidSecretKey but was %v", err)
	}
}

func TestSecretKey_MarshalText(t *testing.T) {
	t.Parallel()

	sk, err := NewSecretKey()
	if err != nil {
		t.Fatal(err)
	}

	text, err := sk.MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	var sk2 SecretKey
	if err := sk2.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "public key", sk.PublicKey().String(), sk2.PublicKey().String())

	if err := sk2.UnmarshalText([]byte("0OIl")); !errors.Is(err, ErrInvalidSecretKey) {
		t.Errorf("expected ErrInvalidSecretKey but was %v", err)
	}
}

func TestSecretKey_String(t *testing.T) {
	t.Parallel()

	sk, err := NewSecretKey()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "string representation", sk.PublicKey().String(), sk.String())
}

func TestSecretKey_Zero(t *testing.T) {
	t.Parallel()

	sk, err := NewSecretKey()
	if err != nil {
		t.Fatal(err)
	}

	sk.Zero()

	b, err := sk.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "zeroed key", make([]byte, SecretKeySize), b)
}

func TestNewKeypair(t *testing.T) {
	t.Parallel()

	kp, err := NewKeypair()
	if err != nil {
		t.Fatal(err)
	}

	if !kp.Public.Equal(kp.Secret.PublicKey()) {
		t.Error("public key does not match secret key")
	}
}
