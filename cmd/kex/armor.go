package main

import (
	"encoding/base64"
	"io"

	"github.com/emersion/go-textwrapper"
)

// armorWidth is the line length of armored output.
const armorWidth = 76

// armorWriter encodes data as URL-safe base64 wrapped at armorWidth columns. Closing it flushes the
// final block, terminates the last line, and closes the underlying writer.
type armorWriter struct {
	dst io.WriteCloser
	enc io.WriteCloser
}

func newArmorWriter(dst io.WriteCloser) *armorWriter {
	return &armorWriter{
		dst: dst,
		enc: base64.NewEncoder(base64.URLEncoding, textwrapper.New(dst, "\n", armorWidth)),
	}
}

func (w *armorWriter) Write(p []byte) (n int, err error) {
	return w.enc.Write(p)
}

func (w *armorWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		_ = w.dst.Close()
		return err
	}

	if _, err := io.WriteString(w.dst, "\n"); err != nil {
		_ = w.dst.Close()
		return err
	}

	return w.dst.Close()
}

// armorReader decodes the output of an armorWriter. Line breaks are ignored; any other byte outside
// the base64 alphabet is an error.
type armorReader struct {
	src io.ReadCloser
	dec io.Reader
}

func newArmorReader(src io.ReadCloser) *armorReader {
	return &armorReader{src: src, dec: base64.NewDecoder(base64.URLEncoding, src)}
}

func (r *armorReader) Read(p []byte) (n int, err error) {
	return r.dec.Read(p)
}

func (r *armorReader) Close() error {
	return r.src.Close()
}

var (
	_ io.WriteCloser = &armorWriter{}
	_ io.ReadCloser  = &armorReader{}
)
