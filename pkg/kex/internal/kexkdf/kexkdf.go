// Package kexkdf derives symmetric keys from Diffie-Hellman exchanges over ristretto255.
//
// Key derivation is as follows, given a private scalar d, a peer's public element Q, an
// application context C, and the size of the derived key N:
//
//     T = TRANSCRIPT('KEX')
//     T.APPEND('ctx', C)
//     ZZ = dQ
//     T.APPEND('kex', ZZ)
//     T.CHALLENGE('', N) -> K
//
// The shared element ZZ is committed using its canonical 32-byte encoding and is never returned.
package kexkdf

import (
	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/codahale/kex/pkg/kex/transcript"
	"github.com/gtank/ristretto255"
)

// Transcript is the subset of transcript operations required to commit to a key exchange and
// extract key material.
type Transcript interface {
	AppendMessage(label, message []byte)
	ChallengeBytes(label, dst []byte)
}

var _ Transcript = &transcript.Transcript{}

// Commit calculates the shared element between the private scalar d and the public element q and
// appends its encoding to t under the given label.
func Commit(t Transcript, label []byte, d *ristretto255.Scalar, q *ristretto255.Element) {
	var buf [internal.ElementSize]byte

	zz := ristretto255.NewElement().ScalarMult(d, q)
	t.AppendMessage(label, zz.Encode(buf[:0]))

	internal.Zero(buf[:])
}

// DeriveKey returns an n-byte key derived from the exchange between the private scalar d and the
// public element q, bound to the application context ctx.
func DeriveKey(d *ristretto255.Scalar, ctx []byte, q *ristretto255.Element, n int) []byte {
	t := transcript.New(kexLabel)
	t.AppendMessage(ctxLabel, ctx)

	Commit(t, commitLabel, d, q)

	k := make([]byte, n)
	t.ChallengeBytes(nil, k)

	return k
}

//nolint:gochecknoglobals // constants
var (
	kexLabel    = []byte("KEX")
	ctxLabel    = []byte("ctx")
	commitLabel = []byte("kex")
)
