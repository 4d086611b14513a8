// Package internal contains various helper functions for writing STROBE protocols.
//
// The subpackages of internal contain the key exchange and certificate protocols kex uses.
package internal

import (
	"encoding/binary"

	"github.com/sammyne/strobe"
)

const (
	ElementSize = 32 // ElementSize is the length of an encoded ristretto255 element.
	ScalarSize  = 32 // ScalarSize is the length of an encoded ristretto255 scalar.
	NonceSize   = 32 // NonceSize is the length of a secret key's witness nonce.

	// UniformBytestringSize is the length of a uniform bytestring which can be mapped to either a
	// ristretto255 element or scalar.
	UniformBytestringSize = 64

	// RatchetSize determines the amount of state to reset during each ratchet.
	//
	//     Setting L = sec/8 bytes is sufficient when R ≥ sec/8. That is, set L to 16 bytes or 32
	//     bytes for Strobe-128/b and Strobe-256/b, respectively.
	RatchetSize = int(strobe.Bit256) / 8
)

// LittleEndianU32 returns n as a 32-bit little endian bit string.
func LittleEndianU32(n int) []byte {
	var b [4]byte

	binary.LittleEndian.PutUint32(b[:], uint32(n))

	return b[:]
}

// LittleEndianU64 returns n as a 64-bit little endian bit string.
func LittleEndianU64(n uint64) []byte {
	var b [8]byte

	binary.LittleEndian.PutUint64(b[:], n)

	return b[:]
}

// Strobe instantiates a new STROBE protocol with the given name and a 256-bit security level.
func Strobe(proto string) *strobe.Strobe {
	s, err := strobe.New(proto, strobe.Bit256)
	if err != nil {
		panic(err)
	}

	return s
}

// Must panics if the given error is not nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Copy returns a copy of the given slice for keying protocols without modifying arguments.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))

	copy(c, b)

	return c
}

// Zero overwrites the given slice with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
