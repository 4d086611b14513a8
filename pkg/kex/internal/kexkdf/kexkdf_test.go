package kexkdf

import (
	"bytes"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/codahale/kex/pkg/kex/internal"
	"github.com/codahale/kex/pkg/kex/internal/rng"
	"github.com/codahale/kex/pkg/kex/transcript"
	"github.com/google/go-cmp/cmp"
	"github.com/gtank/ristretto255"
)

type message struct {
	Label, Message string
}

type recorder struct {
	messages []message
}

func (r *recorder) AppendMessage(label, msg []byte) {
	r.messages = append(r.messages, message{Label: string(label), Message: string(msg)})
}

func (r *recorder) ChallengeBytes(_, _ []byte) {
	panic("not implemented")
}

func TestCommit(t *testing.T) {
	t.Parallel()

	d := ristretto255.NewScalar().FromUniformBytes(bytes.Repeat([]byte{0x04}, internal.UniformBytestringSize))
	q := ristretto255.NewElement().FromUniformBytes(bytes.Repeat([]byte{0x88}, internal.UniformBytestringSize))
	zz := ristretto255.NewElement().ScalarMult(d, q)

	var r recorder

	Commit(&r, []byte("kex"), d, q)

	if diff := cmp.Diff([]message{{Label: "kex", Message: string(zz.Encode(nil))}}, r.messages); diff != "" {
		t.Errorf("commitment mismatch (-want +got):\n%s", diff)
	}
}

func TestCommit_Transcript(t *testing.T) {
	t.Parallel()

	dA, qA := keys(t)
	dB, qB := keys(t)

	a, b := transcript.New([]byte("commit")), transcript.New([]byte("commit"))
	Commit(a, []byte("kex"), dA, qB)
	Commit(b, []byte("kex"), dB, qA)

	assert.Equal(t, "committed challenge",
		a.ChallengeScalar([]byte("c")).Encode(nil), b.ChallengeScalar([]byte("c")).Encode(nil))
}

func TestDeriveKey(t *testing.T) {
	t.Parallel()

	dA, qA := keys(t)
	dB, qB := keys(t)
	_, qC := keys(t)

	ctx := []byte("example context")
	k := DeriveKey(dA, ctx, qB, 32)

	t.Run("determinism", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "derived key", k, DeriveKey(dA, ctx, qB, 32))
	})

	t.Run("symmetry", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "derived key", k, DeriveKey(dB, ctx, qA, 32))
	})

	t.Run("context separation", func(t *testing.T) {
		t.Parallel()

		if bytes.Equal(k, DeriveKey(dA, []byte("another context"), qB, 32)) {
			t.Error("different contexts produced the same key")
		}

		if bytes.Equal(k, DeriveKey(dA, nil, qB, 32)) {
			t.Error("empty context produced the same key")
		}
	})

	t.Run("peer separation", func(t *testing.T) {
		t.Parallel()

		if bytes.Equal(k, DeriveKey(dA, ctx, qC, 32)) {
			t.Error("different peers produced the same key")
		}
	})

	t.Run("key length", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{16, 24, 32, 64} {
			assert.Equal(t, "key length", n, len(DeriveKey(dA, ctx, qB, n)))
		}
	})
}

func TestDeriveKey_Transcript(t *testing.T) {
	t.Parallel()

	d, _ := keys(t)
	_, q := keys(t)

	// Rebuild the derivation by hand.
	tr := transcript.New([]byte("KEX"))
	tr.AppendMessage([]byte("ctx"), []byte("ctx"))
	tr.AppendMessage([]byte("kex"), ristretto255.NewElement().ScalarMult(d, q).Encode(nil))

	want := make([]byte, 32)
	tr.ChallengeBytes([]byte(""), want)

	assert.Equal(t, "derived key", want, DeriveKey(d, []byte("ctx"), q, 32))
}

func BenchmarkDeriveKey(b *testing.B) {
	d, _, err := rng.NewEphemeralKeys()
	if err != nil {
		b.Fatal(err)
	}

	_, q, err := rng.NewEphemeralKeys()
	if err != nil {
		b.Fatal(err)
	}

	ctx := []byte("benchmark")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = DeriveKey(d, ctx, q, 32)
	}
}

func keys(t *testing.T) (*ristretto255.Scalar, *ristretto255.Element) {
	t.Helper()

	d, q, err := rng.NewEphemeralKeys()
	if err != nil {
		t.Fatal(err)
	}

	return d, q
}
