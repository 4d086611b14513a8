package kex

import (
	"encoding"
	"fmt"

	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/gtank/ristretto255"
)

// PublicKeySize is the length of an encoded public key in bytes.
const PublicKeySize = internal.ElementSize

// PublicKey is a ristretto255 element which is used to exchange keys with the holder of the
// corresponding SecretKey.
//
// It can be marshalled and unmarshalled as a base58 string for human consumption.
type PublicKey struct {
	q *ristretto255.Element
}

// DecodePublicKey decodes a 32-byte public key.
func DecodePublicKey(data []byte) (*PublicKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalBinary(data); err != nil {
		return nil, err
	}

	return &pk, nil
}

// Equal returns true if the two public keys are equal.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.q.Equal(other.q) == 1
}

// String returns the public key as base58 text.
func (pk *PublicKey) String() string {
	text, err := pk.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// MarshalBinary encodes the public key into a 32-byte slice.
func (pk *PublicKey) MarshalBinary() (data []byte, err error) {
	return pk.q.Encode(nil), nil
}

// UnmarshalBinary decodes the public key from a 32-byte slice.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	q := ristretto255.NewElement()
	if err := q.Decode(data); err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}

	pk.q = q

	return nil
}

// MarshalText encodes the public key into base58 text and returns the result.
func (pk *PublicKey) MarshalText() (text []byte, err error) {
	return internal.ASCIIEncode(pk.q.Encode(nil)), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// public key.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	data, err := internal.ASCIIDecode(text)
	if err != nil {
		return fmt.Errorf("invalid public key: %w", err)
	}

	return pk.UnmarshalBinary(data)
}

var (
	_ encoding.BinaryMarshaler   = &PublicKey{}
	_ encoding.BinaryUnmarshaler = &PublicKey{}
	_ encoding.TextMarshaler     = &PublicKey{}
	_ encoding.TextUnmarshaler   = &PublicKey{}
	_ fmt.Stringer               = &PublicKey{}
)
