package kex

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/codahale/kex/pkg/kex/internal/ecqv"
	"github.com/codahale/kex/pkg/kex/internal/rng"
	"github.com/gtank/ristretto255"
)

// SecretKeySize is the length of an encoded secret key in bytes.
const SecretKeySize = internal.ScalarSize + internal.NonceSize

// ErrInvalidSecretKey is returned when a secret key cannot be decoded.
var ErrInvalidSecretKey = errors.New("invalid secret key")

// SecretKey is a private ristretto255 scalar and a nonce used to derive witness values.
//
// It should never be serialized in plaintext outside of the holder's own storage.
type SecretKey struct {
	d     *ristretto255.Scalar
	nonce [internal.NonceSize]byte
}

// NewSecretKey creates a new secret key.
func NewSecretKey() (*SecretKey, error) {
	var (
		sk SecretKey
		r  [internal.UniformBytestringSize]byte
	)

	// Generate a random 64-byte string and map it to a scalar.
	if _, err := rng.Read(r[:]); err != nil {
		return nil, err
	}

	sk.d = ristretto255.NewScalar().FromUniformBytes(r[:])

	internal.Zero(r[:])

	// Generate a random nonce.
	if _, err := rng.Read(sk.nonce[:]); err != nil {
		return nil, err
	}

	return &sk, nil
}

// PublicKey returns the corresponding PublicKey for the receiver.
func (sk *SecretKey) PublicKey() *PublicKey {
	return &PublicKey{q: ristretto255.NewElement().ScalarBaseMult(sk.d)}
}

// Keypair returns a Keypair containing the receiver and its public key.
func (sk *SecretKey) Keypair() *Keypair {
	return &Keypair{Secret: sk, Public: sk.PublicKey()}
}

// Zero overwrites the secret key's material. The key must not be used afterwards.
func (sk *SecretKey) Zero() {
	var zero [internal.ScalarSize]byte

	internal.Must(sk.d.Decode(zero[:]))
	internal.Zero(sk.nonce[:])
}

// String returns the public key of the secret key as base58 text.
func (sk *SecretKey) String() string {
	return sk.PublicKey().String()
}

// MarshalBinary encodes the secret key into a 64-byte slice.
func (sk *SecretKey) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, SecretKeySize)
	data = sk.d.Encode(data)
	data = append(data, sk.nonce[:]...)

	return data, nil
}

// UnmarshalBinary decodes the secret key from a 64-byte slice.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	if len(data) != SecretKeySize {
		return ErrInvalidSecretKey
	}

	d := ristretto255.NewScalar()
	if err := d.Decode(data[:internal.ScalarSize]); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}

	sk.d = d
	copy(sk.nonce[:], data[internal.ScalarSize:])

	return nil
}

// MarshalText encodes the secret key into base58 text and returns the result.
func (sk *SecretKey) MarshalText() (text []byte, err error) {
	b, _ := sk.MarshalBinary()
	defer internal.Zero(b)

	return internal.ASCIIEncode(b), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// secret key.
func (sk *SecretKey) UnmarshalText(text []byte) error {
	data, err := internal.ASCIIDecode(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSecretKey, err)
	}

	defer internal.Zero(data)

	return sk.UnmarshalBinary(data)
}

func (sk *SecretKey) ecqvKey() *ecqv.Key {
	return &ecqv.Key{
		D:     sk.d,
		Q:     ristretto255.NewElement().ScalarBaseMult(sk.d),
		Nonce: sk.nonce[:],
	}
}

func secretKeyFromECQV(k *ecqv.Key) *SecretKey {
	sk := &SecretKey{d: k.D}
	copy(sk.nonce[:], k.Nonce)

	return sk
}

var (
	_ encoding.BinaryMarshaler   = &SecretKey{}
	_ encoding.BinaryUnmarshaler = &SecretKey{}
	_ encoding.TextMarshaler     = &SecretKey{}
	_ encoding.TextUnmarshaler   = &SecretKey{}
	_ fmt.Stringer               = &SecretKey{}
)
