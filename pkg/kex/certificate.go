package kex

import (
	"encoding"
	"fmt"

	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/codahale/kex/pkg/kex/internal/ecqv"
	"github.com/codahale/kex/pkg/kex/transcript"
)

// CertificateSize is the length of an encoded Certificate in bytes.
const CertificateSize = ecqv.PublicSize

// Certificate is the public part of an ECQV implicit certificate. Given the issuer's public key and
// the transcript the certificate was issued with, it allows anyone to reconstruct the certified
// public key.
type Certificate struct {
	b []byte
}

// MarshalBinary encodes the certificate into bytes.
func (c *Certificate) MarshalBinary() (data []byte, err error) {
	return internal.Copy(c.b), nil
}

// UnmarshalBinary decodes the certificate from bytes. The contents of the certificate are not
// validated until it is opened.
func (c *Certificate) UnmarshalBinary(data []byte) error {
	if len(data) != CertificateSize {
		return ErrInvalidCertificate
	}

	c.b = internal.Copy(data)

	return nil
}

// MarshalText encodes the certificate into base58 text and returns the result.
func (c *Certificate) MarshalText() (text []byte, err error) {
	return internal.ASCIIEncode(c.b), nil
}

// UnmarshalText decodes the results of MarshalText and updates the receiver to contain the decoded
// certificate.
func (c *Certificate) UnmarshalText(text []byte) error {
	data, err := internal.ASCIIDecode(text)
	if err != nil {
		return fmt.Errorf("invalid certificate: %w", err)
	}

	return c.UnmarshalBinary(data)
}

// String returns the certificate as base58 text.
func (c *Certificate) String() string {
	text, err := c.MarshalText()
	if err != nil {
		panic(err)
	}

	return string(text)
}

// CertificateSecret is an issued ECQV certificate, which the requester must accept with their seed
// secret key to obtain the certified secret key.
type CertificateSecret struct {
	b []byte
}

// Certificate returns the public part of the issued certificate.
func (c *CertificateSecret) Certificate() *Certificate {
	return &Certificate{b: internal.Copy(c.b[:ecqv.PublicSize])}
}

// MarshalBinary encodes the certificate into bytes.
func (c *CertificateSecret) MarshalBinary() (data []byte, err error) {
	return internal.Copy(c.b), nil
}

// UnmarshalBinary decodes the certificate from bytes.
func (c *CertificateSecret) UnmarshalBinary(data []byte) error {
	if len(data) != ecqv.SecretSize {
		return ErrInvalidCertificate
	}

	c.b = internal.Copy(data)

	return nil
}

// IssueCert issues a certificate for the holder of the secret key corresponding to seed, bound to
// the transcript t. The transcript is modified.
func (kp *Keypair) IssueCert(t *transcript.Transcript, seed *PublicKey) (*CertificateSecret, error) {
	cert, err := ecqv.Issue(t, kp.ecqvKey(), seed.q)
	if err != nil {
		return nil, err
	}

	return &CertificateSecret{b: cert}, nil
}

// IssueSelfCert issues a certificate for a new key derived from the receiver and the transcript t,
// returning the certificate and the certified secret key. The transcript is modified.
func (kp *Keypair) IssueSelfCert(t *transcript.Transcript) (*Certificate, *SecretKey, error) {
	cert, k, err := ecqv.IssueSelf(t, kp.ecqvKey())
	if err != nil {
		return nil, nil, err
	}

	return &Certificate{b: cert}, secretKeyFromECQV(k), nil
}

// AcceptCert accepts a certificate issued by the owner of the receiver for the holder of seed,
// returning the public certificate and the certified secret key. Returns ErrInvalidCertificate if
// the certificate was not issued for seed with an identical transcript. The transcript is
// modified.
func (pk *PublicKey) AcceptCert(
	t *transcript.Transcript, seed *SecretKey, cert *CertificateSecret,
) (*Certificate, *SecretKey, error) {
	pub, k, err := ecqv.Accept(t, pk.q, seed.ecqvKey(), cert.b)
	if err != nil {
		return nil, nil, err
	}

	return &Certificate{b: pub}, secretKeyFromECQV(k), nil
}

// OpenCert reconstructs the public key certified by the owner of the receiver. Returns
// ErrInvalidCertificate if the certificate is malformed. A certificate opened with a different
// issuer or transcript yields an unrelated public key. The transcript is modified.
func (pk *PublicKey) OpenCert(t *transcript.Transcript, cert *Certificate) (*PublicKey, error) {
	q, err := ecqv.Open(t, pk.q, cert.b)
	if err != nil {
		return nil, err
	}

	return &PublicKey{q: q}, nil
}

var (
	_ encoding.BinaryMarshaler   = &Certificate{}
	_ encoding.BinaryUnmarshaler = &Certificate{}
	_ encoding.TextMarshaler     = &Certificate{}
	_ encoding.TextUnmarshaler   = &Certificate{}
	_ fmt.Stringer               = &Certificate{}
	_ encoding.BinaryMarshaler   = &CertificateSecret{}
	_ encoding.BinaryUnmarshaler = &CertificateSecret{}
)
