package main

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
)

var errInvalidCiphertext = errors.New("invalid ciphertext")

// seal writes header, a random nonce, and the sealed plaintext to dst. The header is authenticated
// as associated data.
func seal(dst io.Writer, aead cipher.AEAD, header []byte, src io.Reader) error {
	plaintext, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}

	out := make([]byte, 0, len(header)+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, plaintext, header)

	_, err = dst.Write(out)

	return err
}

// readHeader reads a fixed-size header from src.
func readHeader(src io.Reader, n int) ([]byte, error) {
	header := make([]byte, n)
	if _, err := io.ReadFull(src, header); err != nil {
		return nil, errInvalidCiphertext
	}

	return header, nil
}

// open reads the nonce and sealed plaintext from src and returns the plaintext. Nothing is returned
// unless the ciphertext and header are authentic.
func open(aead cipher.AEAD, header []byte, src io.Reader) ([]byte, error) {
	in, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	if len(in) < aead.NonceSize()+aead.Overhead() {
		return nil, errInvalidCiphertext
	}

	nonce, ciphertext := in[:aead.NonceSize()], in[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, errInvalidCiphertext
	}

	return plaintext, nil
}

// writeOutput writes b to the output at path, returning any error from closing it.
func writeOutput(path string, armored bool, b []byte) error {
	dst, err := openOutput(path, armored)
	if err != nil {
		return err
	}

	if _, err := dst.Write(b); err != nil {
		_ = dst.Close()
		return err
	}

	return dst.Close()
}
