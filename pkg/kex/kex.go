// Package kex derives AEAD keys from ristretto255 Diffie-Hellman exchanges.
//
// Keys are derived from a Merlin-style transcript which is bound to an application context and the
// shared element of the exchange. Three forms of exchange are supported: a bare exchange between a
// secret key and a public key, an ephemeral exchange initiated by someone holding only the
// recipient's public key, and an exchange in which the sender's ephemeral key is bound to their
// long-term key with an ECQV implicit certificate, allowing the recipient to reconstruct the
// ephemeral public key without an explicit signature.
//
// Ciphers are created from the suite package; the core never sees their encryption semantics.
package kex

import (
	"github.com/codahale/kex/pkg/kex/internal/ecqv"
)

// ErrInvalidCertificate is returned when a certificate cannot be opened or accepted, either due to
// malformed data, tampering, or a transcript mismatch.
var ErrInvalidCertificate = ecqv.ErrInvalidCertificate
