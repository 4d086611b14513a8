package kex_test

import (
	"fmt"

	"github.com/codahale/kex/pkg/kex"
	"github.com/codahale/kex/pkg/kex/suite"
	"github.com/codahale/kex/pkg/kex/transcript"
)

func Example() {
	// Alice and Bea each generate a key pair and exchange public keys.
	alice, err := kex.NewKeypair()
	if err != nil {
		panic(err)
	}

	bea, err := kex.NewKeypair()
	if err != nil {
		panic(err)
	}

	// Alice issues a certificate for an ephemeral key, bound to the session's transcript, and
	// derives an AEAD from it and Bea's public key.
	t := transcript.New([]byte("example session"))
	t.AppendU64([]byte("session id"), 22)

	cert, aliceAEAD, err := alice.SenderAEADWithCert(suite.AES256GCM, t, bea.Public)
	if err != nil {
		panic(err)
	}

	nonce := make([]byte, aliceAEAD.NonceSize())
	ciphertext := aliceAEAD.Seal(nil, nonce, []byte("one two three four I declare a thumb war"), nil)

	// Bea recreates the transcript and the AEAD from the certificate and Alice's public key.
	t = transcript.New([]byte("example session"))
	t.AppendU64([]byte("session id"), 22)

	beaAEAD, err := bea.Secret.ReceiverAEADWithCert(suite.AES256GCM, t, cert, alice.Public)
	if err != nil {
		panic(err)
	}

	plaintext, err := beaAEAD.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(plaintext))
	// Output:
	// one two three four I declare a thumb war
}
