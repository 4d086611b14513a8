package kex

import (
	"crypto/cipher"

	"github.com/codahale/kex/pkg/kex/internal/ecqv"
	"github.com/codahale/kex/pkg/kex/internal/kexkdf"
	"github.com/codahale/kex/pkg/kex/internal/rng"
	"github.com/codahale/kex/pkg/kex/suite"
	"github.com/codahale/kex/pkg/kex/transcript"
)

// CommitKeyExchange appends the shared secret of the exchange between the receiver and pk to the
// transcript t under the given label.
func (sk *SecretKey) CommitKeyExchange(t *transcript.Transcript, label []byte, pk *PublicKey) {
	kexkdf.Commit(t, label, sk.d, pk.q)
}

// DeriveKey returns n bytes of key material derived from the exchange between the receiver and pk,
// bound to the application context ctx.
func (sk *SecretKey) DeriveKey(ctx []byte, pk *PublicKey, n int) []byte {
	return kexkdf.DeriveKey(sk.d, ctx, pk.q, n)
}

// AEAD returns an AEAD of the given suite keyed with material derived from the exchange between the
// receiver and pk, bound to the application context ctx.
func (sk *SecretKey) AEAD(s suite.Suite, ctx []byte, pk *PublicKey) cipher.AEAD {
	return s.New(sk.DeriveKey(ctx, pk, s.KeySize()))
}

// InitAEAD generates an ephemeral secret key and returns the encoded ephemeral public key and an
// AEAD of the given suite keyed with material derived from the exchange between the ephemeral
// secret key and the receiver, bound to the application context ctx.
//
// The ephemeral secret key is discarded. The holder of the receiver's secret key can recreate the
// AEAD with AcceptAEAD.
func (pk *PublicKey) InitAEAD(s suite.Suite, ctx []byte) ([]byte, cipher.AEAD, error) {
	d, q, err := rng.NewEphemeralKeys()
	if err != nil {
		return nil, nil, err
	}

	skE := &SecretKey{d: d}
	defer skE.Zero()

	var ephemeral [PublicKeySize]byte

	return q.Encode(ephemeral[:0]), skE.AEAD(s, ctx, pk), nil
}

// AcceptAEAD returns the AEAD created by InitAEAD for the receiver's public key, given the encoded
// ephemeral public key and the same application context.
func (sk *SecretKey) AcceptAEAD(s suite.Suite, ctx, ephemeral []byte) (cipher.AEAD, error) {
	pkE, err := DecodePublicKey(ephemeral)
	if err != nil {
		return nil, err
	}

	return sk.AEAD(s, ctx, pkE), nil
}

// SenderAEADWithCert issues a self-certificate for an ephemeral secret key bound to the transcript
// t, and returns the certificate and an AEAD of the given suite keyed with material derived from
// the exchange between the ephemeral secret key and the recipient's public key pkR. The transcript
// is modified.
//
// The recipient can recreate the AEAD with ReceiverAEADWithCert, given a transcript in the same
// state t was in before this call.
func (kp *Keypair) SenderAEADWithCert(
	s suite.Suite, t *transcript.Transcript, pkR *PublicKey,
) (*Certificate, cipher.AEAD, error) {
	cert, k, err := ecqv.IssueSelf(t, kp.ecqvKey())
	if err != nil {
		return nil, nil, err
	}

	// The certificate's transcript binds the exchange, so no application context is used.
	skE := secretKeyFromECQV(k)
	defer skE.Zero()

	return &Certificate{b: cert}, skE.AEAD(s, nil, pkR), nil
}

// ReceiverAEADWithCert reconstructs the sender's ephemeral public key from the certificate, the
// sender's public key pkS, and the transcript t, and returns an AEAD of the given suite keyed with
// material derived from the exchange between the receiver and the ephemeral public key. Returns
// ErrInvalidCertificate if the certificate cannot be opened. The transcript is modified.
func (sk *SecretKey) ReceiverAEADWithCert(
	s suite.Suite, t *transcript.Transcript, cert *Certificate, pkS *PublicKey,
) (cipher.AEAD, error) {
	pkE, err := pkS.OpenCert(t, cert)
	if err != nil {
		return nil, err
	}

	return sk.AEAD(s, nil, pkE), nil
}
