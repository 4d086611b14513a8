package kex

import (
	"github.com/codahale/kex/pkg/kex/internal/ecqv"
)

// Keypair is a SecretKey and its corresponding PublicKey.
type Keypair struct {
	Secret *SecretKey
	Public *PublicKey
}

// NewKeypair creates a new random key pair.
func NewKeypair() (*Keypair, error) {
	sk, err := NewSecretKey()
	if err != nil {
		return nil, err
	}

	return sk.Keypair(), nil
}

func (kp *Keypair) ecqvKey() *ecqv.Key {
	return &ecqv.Key{D: kp.Secret.d, Q: kp.Public.q, Nonce: kp.Secret.nonce[:]}
}
