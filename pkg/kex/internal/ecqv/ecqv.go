// Package ecqv implements Elliptic Curve Qu-Vanstone implicit certificates over ristretto255.
//
// Issuance binds a requester's seed public element Q_s to the issuer's key pair (d_i, Q_i) and a
// caller-provided transcript T:
//
//     T.APPEND('proto-name', 'ECQV')
//     T.APPEND('Issuer-pk', Q_i)
//     k = T.WITNESS('ECQV', n_i)
//     γ = Q_s + kG
//     T.APPEND('gamma', γ)
//     T.CHALLENGE('s') -> s
//     c = sk + d_i
//
// The certificate's secret part is γ and c. The requester, holding d_s, accepts it by replaying the
// transcript and calculating their new private scalar:
//
//     d = sd_s + c
//
// Anyone holding γ, Q_i, and an identical transcript can then open the certificate and reconstruct
// the matching public element without an explicit signature:
//
//     Q = sγ + Q_i
//
// Self-issued certificates derive the seed key pair from the issuer's secrets, issue a certificate
// for it on a clone of T, and accept it on T.
package ecqv

import (
	"errors"

	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/codahale/kex/pkg/kex/internal/rng"
	"github.com/codahale/kex/pkg/kex/transcript"
	"github.com/gtank/ristretto255"
)

const (
	// PublicSize is the length of an encoded public certificate.
	PublicSize = internal.ElementSize

	// SecretSize is the length of an encoded secret certificate.
	SecretSize = internal.ElementSize + internal.ScalarSize
)

// ErrInvalidCertificate is returned when a certificate cannot be opened or accepted, either due to
// malformed data, tampering, or a transcript mismatch.
var ErrInvalidCertificate = errors.New("invalid certificate")

// Key is a private scalar, its corresponding public element, and a secret nonce used to derive
// witness values.
type Key struct {
	D     *ristretto255.Scalar
	Q     *ristretto255.Element
	Nonce []byte
}

// Issue returns a secret certificate for the owner of the seed public element qS, issued by the
// given key and bound to the transcript t.
func Issue(t *transcript.Transcript, issuer *Key, qS *ristretto255.Element) ([]byte, error) {
	t.ProtoName(protoName)
	t.CommitPoint(issuerLabel, issuer.Q)

	// Derive a nonce from the transcript, the issuer's nonce, and random data. The seed public
	// element is deliberately left out of the transcript.
	k, err := t.WitnessScalar(protoName, [][]byte{issuer.Nonce}, rng.Reader)
	if err != nil {
		return nil, err
	}

	// Calculate the reconstruction element.
	gamma := ristretto255.NewElement().Add(qS, ristretto255.NewElement().ScalarBaseMult(k))
	t.CommitPoint(gammaLabel, gamma)

	// Calculate the issuer's contribution to the private scalar.
	s := t.ChallengeScalar(sLabel)
	c := ristretto255.NewScalar().Add(ristretto255.NewScalar().Multiply(s, k), issuer.D)

	cert := make([]byte, 0, SecretSize)
	cert = gamma.Encode(cert)
	cert = c.Encode(cert)

	return cert, nil
}

// Accept verifies the secret certificate cert issued by the owner of qI for the owner of the seed
// key, and returns the public certificate and the new key.
func Accept(t *transcript.Transcript, qI *ristretto255.Element, seed *Key, cert []byte) ([]byte, *Key, error) {
	if len(cert) != SecretSize {
		return nil, nil, ErrInvalidCertificate
	}

	t.ProtoName(protoName)
	t.CommitPoint(issuerLabel, qI)

	// Derive a new nonce for the accepted key.
	nonce := make([]byte, internal.NonceSize)
	if err := t.WitnessBytes(acceptingLabel, nonce, [][]byte{cert, seed.Nonce}, rng.Reader); err != nil {
		return nil, nil, err
	}

	gamma := ristretto255.NewElement()
	if err := gamma.Decode(cert[:PublicSize]); err != nil {
		return nil, nil, ErrInvalidCertificate
	}

	c := ristretto255.NewScalar()
	if err := c.Decode(cert[PublicSize:]); err != nil {
		return nil, nil, ErrInvalidCertificate
	}

	t.CommitPoint(gammaLabel, gamma)
	s := t.ChallengeScalar(sLabel)

	// Calculate the new private scalar and ensure it matches the reconstructed public element.
	d := ristretto255.NewScalar().Add(ristretto255.NewScalar().Multiply(s, seed.D), c)
	q := ristretto255.NewElement().ScalarBaseMult(d)

	if q.Equal(reconstruct(s, gamma, qI)) != 1 {
		return nil, nil, ErrInvalidCertificate
	}

	return internal.Copy(cert[:PublicSize]), &Key{D: d, Q: q, Nonce: nonce}, nil
}

// IssueSelf issues a certificate for a freshly derived seed key, accepts it, and returns the public
// certificate and the new key. The key's private scalar is the only scalar which corresponds to the
// element reconstructed by Open.
func IssueSelf(t *transcript.Transcript, issuer *Key) ([]byte, *Key, error) {
	var buf [internal.UniformBytestringSize + internal.NonceSize]byte

	// Derive a seed key pair from the transcript and the issuer's secrets.
	if err := t.WitnessBytes(selfLabel, buf[:], [][]byte{issuer.Nonce, issuer.D.Encode(nil)}, rng.Reader); err != nil {
		return nil, nil, err
	}

	dS := ristretto255.NewScalar().FromUniformBytes(buf[:internal.UniformBytestringSize])
	seed := &Key{
		D:     dS,
		Q:     ristretto255.NewElement().ScalarBaseMult(dS),
		Nonce: internal.Copy(buf[internal.UniformBytestringSize:]),
	}

	internal.Zero(buf[:])

	cert, err := Issue(t.Clone(), issuer, seed.Q)
	if err != nil {
		return nil, nil, err
	}

	return Accept(t, issuer.Q, seed, cert)
}

// Open reconstructs the public element certified by the owner of qI from the public certificate
// cert and the transcript t.
func Open(t *transcript.Transcript, qI *ristretto255.Element, cert []byte) (*ristretto255.Element, error) {
	if len(cert) != PublicSize {
		return nil, ErrInvalidCertificate
	}

	t.ProtoName(protoName)
	t.CommitPoint(issuerLabel, qI)
	t.AppendMessage(gammaLabel, cert)

	gamma := ristretto255.NewElement()
	if err := gamma.Decode(cert); err != nil {
		return nil, ErrInvalidCertificate
	}

	return reconstruct(t.ChallengeScalar(sLabel), gamma, qI), nil
}

func reconstruct(s *ristretto255.Scalar, gamma, qI *ristretto255.Element) *ristretto255.Element {
	return ristretto255.NewElement().Add(ristretto255.NewElement().ScalarMult(s, gamma), qI)
}

//nolint:gochecknoglobals // constants
var (
	protoName      = []byte("ECQV")
	issuerLabel    = []byte("Issuer-pk")
	gammaLabel     = []byte("gamma")
	sLabel         = []byte("s")
	acceptingLabel = []byte("accepting")
	selfLabel      = []byte("issue_self_ecqv_cert")
)
