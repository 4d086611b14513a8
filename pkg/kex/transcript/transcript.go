// Package transcript implements a Merlin-style transcript over STROBE-128.
//
// A transcript is initialized with a domain separation label:
//
//     INIT('Merlin v1.0', level=128)
//     AD('dom-sep',       meta=true)
//     AD(LE_U32(|L|),     meta=true, more=true)
//     AD(L)
//
// Messages are appended with a label and a length prefix:
//
//     AD(label,           meta=true)
//     AD(LE_U32(|M|),     meta=true, more=true)
//     AD(M)
//
// Challenges of N bytes are extracted in the same way:
//
//     AD(label,           meta=true)
//     AD(LE_U32(N),       meta=true, more=true)
//     PRF(N)
//
// Witness values (e.g. nonces for certificate issuance) are derived from a clone of the transcript
// which is rekeyed with secret seeds and random data and is then discarded:
//
//     AD(label,           meta=true)
//     AD(LE_U32(|W|),     meta=true, more=true)
//     KEY(W)
//     ...
//     AD('rng',           meta=true)
//     KEY(R)
//     AD(LE_U32(N),       meta=true)
//     PRF(N)
//
// A Transcript is not safe for concurrent use, and must not be reused across unrelated protocol
// runs.
package transcript

import (
	"io"

	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/gtank/ristretto255"
	"github.com/sammyne/strobe"
)

// Transcript is an append-only record of a protocol run from which challenges can be extracted.
type Transcript struct {
	s *strobe.Strobe
}

// New returns a new Transcript with the given domain separation label.
func New(label []byte) *Transcript {
	s, err := strobe.New(protocolLabel, strobe.Bit128)
	internal.Must(err)

	t := &Transcript{s: s}
	t.AppendMessage([]byte("dom-sep"), label)

	return t
}

// AppendMessage appends the given labeled message to the transcript.
func (t *Transcript) AppendMessage(label, message []byte) {
	t.metaAD(label, false)
	t.metaAD(internal.LittleEndianU32(len(message)), true)
	internal.Must(t.s.AD(message, defaultOpts))
}

// AppendU64 appends the given labeled integer to the transcript as a little endian value.
func (t *Transcript) AppendU64(label []byte, n uint64) {
	t.AppendMessage(label, internal.LittleEndianU64(n))
}

// ProtoName appends a protocol name to the transcript.
func (t *Transcript) ProtoName(name []byte) {
	t.AppendMessage([]byte("proto-name"), name)
}

// CommitPoint appends the canonical encoding of the given element to the transcript.
func (t *Transcript) CommitPoint(label []byte, q *ristretto255.Element) {
	var buf [internal.ElementSize]byte

	t.AppendMessage(label, q.Encode(buf[:0]))
}

// ChallengeBytes fills dst with challenge bytes derived from the transcript's state.
func (t *Transcript) ChallengeBytes(label, dst []byte) {
	t.metaAD(label, false)
	t.metaAD(internal.LittleEndianU32(len(dst)), true)
	internal.Must(t.s.PRF(dst, false))
}

// ChallengeScalar returns a challenge scalar derived from the transcript's state.
func (t *Transcript) ChallengeScalar(label []byte) *ristretto255.Scalar {
	var buf [internal.UniformBytestringSize]byte

	t.ChallengeBytes(label, buf[:])

	return ristretto255.NewScalar().FromUniformBytes(buf[:])
}

// WitnessBytes fills dst with bytes derived from the transcript's state, the given secret seeds,
// and random data read from rand. The transcript itself is not modified.
func (t *Transcript) WitnessBytes(label, dst []byte, seeds [][]byte, rand io.Reader) error {
	// Fork the transcript's state.
	w := t.s.Clone()

	// Rekey the fork with each witness seed.
	for _, seed := range seeds {
		internal.Must(w.AD(label, metaOpts))
		internal.Must(w.AD(internal.LittleEndianU32(len(seed)), metaMoreOpts))
		internal.Must(w.KEY(internal.Copy(seed), false))
	}

	// Finalize the fork with random data.
	var r [32]byte
	if _, err := io.ReadFull(rand, r[:]); err != nil {
		return err
	}

	internal.Must(w.AD([]byte("rng"), metaOpts))
	internal.Must(w.KEY(r[:], false))

	// Extract the witness bytes.
	internal.Must(w.AD(internal.LittleEndianU32(len(dst)), metaOpts))
	internal.Must(w.PRF(dst, false))

	return nil
}

// WitnessScalar returns a scalar derived from the transcript's state, the given secret seeds, and
// random data read from rand. The transcript itself is not modified.
func (t *Transcript) WitnessScalar(label []byte, seeds [][]byte, rand io.Reader) (*ristretto255.Scalar, error) {
	var buf [internal.UniformBytestringSize]byte

	if err := t.WitnessBytes(label, buf[:], seeds, rand); err != nil {
		return nil, err
	}

	return ristretto255.NewScalar().FromUniformBytes(buf[:]), nil
}

// Clone returns an independent copy of the transcript.
func (t *Transcript) Clone() *Transcript {
	return &Transcript{s: t.s.Clone()}
}

func (t *Transcript) metaAD(data []byte, more bool) {
	opts := metaOpts
	if more {
		opts = metaMoreOpts
	}

	internal.Must(t.s.AD(data, opts))
}

const protocolLabel = "Merlin v1.0"

//nolint:gochecknoglobals // constants
var (
	defaultOpts  = &strobe.Options{}
	metaOpts     = &strobe.Options{Meta: true}
	metaMoreOpts = &strobe.Options{Meta: true, Streaming: true}
)
