// Package suite provides the AEAD ciphers which derived keys can be used with.
//
// A Suite only declares its key size and constructs a cipher.AEAD from exactly that many bytes of
// key material. Which suites are available is decided at build time: the AES-GCM suites are always
// linked in, and the ChaCha20Poly1305 suites are linked in unless the nochacha build tag is set.
package suite

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSuite is returned when a suite name is not recognized.
var ErrUnknownSuite = errors.New("unknown suite")

// Suite is an AEAD construction with a fixed key size.
type Suite interface {
	// Name returns the suite's name.
	Name() string

	// KeySize returns the length of the suite's keys in bytes.
	KeySize() int

	// New returns an AEAD instance keyed with key. It panics if len(key) != KeySize().
	New(key []byte) cipher.AEAD
}

//nolint:gochecknoglobals // constants
var (
	// AES128GCM is AES-128 in Galois/Counter Mode.
	AES128GCM Suite = aesGCM{name: "aes128-gcm", keySize: 16}

	// AES256GCM is AES-256 in Galois/Counter Mode.
	AES256GCM Suite = aesGCM{name: "aes256-gcm", keySize: 32}

	suites = map[string]Suite{}
)

// ByName returns the linked-in suite with the given name.
func ByName(name string) (Suite, error) {
	s, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}

	return s, nil
}

// Names returns the names of all linked-in suites, sorted.
func Names() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func register(s Suite) {
	suites[s.Name()] = s
}

func init() {
	register(AES128GCM)
	register(AES256GCM)
}

type aesGCM struct {
	name    string
	keySize int
}

func (s aesGCM) Name() string {
	return s.name
}

func (s aesGCM) KeySize() int {
	return s.keySize
}

func (s aesGCM) New(key []byte) cipher.AEAD {
	checkKeySize(s, key)

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic(err)
	}

	return aead
}

func checkKeySize(s Suite, key []byte) {
	if len(key) != s.KeySize() {
		panic(fmt.Sprintf("%s: invalid key size %d", s.Name(), len(key)))
	}
}
