// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package der

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordingDecoder(opts ...Option) (*Decoder, *[]Anomaly) {
	anomalies := &[]Anomaly{}
	opts = append(opts, WithAnomalyHook(func(a Anomaly) {
		*anomalies = append(*anomalies, a)
	}))

	return NewDecoder(opts...), anomalies
}

func TestParseMarshal(t *testing.T) {
	b := []byte{0x30, 0x07, 0x80, 0x01, 0x03, 0x81, 0x02, 0x07, 0xe5}

	v, err := Parse(b)
	require.NoError(t, err)
	require.True(t, v.IsSequence())
	require.Len(t, v.Children, 2)

	assert.Equal(t, ClassContextSpecific, v.Children[0].Class)
	assert.Equal(t, 0, v.Children[0].Tag)
	assert.False(t, v.Children[0].Constructed)
	assert.Equal(t, []byte{0x03}, v.Children[0].Bytes)

	out, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, b, out)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"Empty", []byte{}},
		{"Truncated", []byte{0x30, 0x05, 0x80, 0x01}},
		{"TrailingBytes", []byte{0x04, 0x00, 0x00}},
		{"NonMinimalLength", []byte{0x04, 0x81, 0x01, 0x00}},
		{"BrokenChild", []byte{0x30, 0x02, 0x80, 0x05}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.in)
			require.ErrorIs(t, err, ErrMalformedEncoding)
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	b := []byte{0x30, 0x02, 0x30, 0x00}

	_, err := NewDecoder(WithMaxDepth(1)).Parse(b)
	require.ErrorIs(t, err, ErrMalformedEncoding)

	_, err = NewDecoder(WithMaxDepth(2)).Parse(b)
	require.NoError(t, err)
}

func TestMarshalHighTag(t *testing.T) {
	_, err := Marshal(ContextTagged(31, EncodeInt(1)))
	require.ErrorIs(t, err, ErrSchemaViolation)

	_, err = Marshal(nil)
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestRead(t *testing.T) {
	long := bytes.Repeat([]byte{0xaa}, 200)

	var stream []byte
	stream = append(stream, 0x80, 0x01, 0x07)
	stream = append(stream, 0x04, 0x81, 0xc8)
	stream = append(stream, long...)

	d := NewDecoder()
	r := bytes.NewReader(stream)

	v, err := d.Read(r)
	require.NoError(t, err)
	require.Equal(t, []byte{0x07}, v.Bytes)

	v, err = d.Read(r)
	require.NoError(t, err)
	require.True(t, v.IsOctetString())
	require.Equal(t, long, v.Bytes)

	require.Zero(t, r.Len())
}

func TestReadLength(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		n    int
		raw  []byte
	}{
		{"Short", []byte{0x7f, 0xff}, 127, []byte{0x7f}},
		{"OneOctet", []byte{0x81, 0xc8}, 200, []byte{0x81, 0xc8}},
		{"FourOctets", []byte{0x84, 0x00, 0x01, 0x00, 0x00}, 1 << 16, []byte{0x84, 0x00, 0x01, 0x00, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, raw, err := ReadLength(bytes.NewReader(test.in))
			require.NoError(t, err)
			assert.Equal(t, test.n, n)
			assert.Equal(t, test.raw, raw)
		})
	}

	_, _, err := ReadLength(bytes.NewReader([]byte{0x80}))
	require.ErrorIs(t, err, ErrMalformedEncoding)

	_, _, err = ReadLength(bytes.NewReader([]byte{0x85, 0x01, 0x00, 0x00, 0x00, 0x00}))
	require.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		dec  *Decoder
		in   []byte
	}{
		{"Empty", NewDecoder(), []byte{}},
		{"HighTagNumber", NewDecoder(), []byte{0x7f, 0x61, 0x00}},
		{"IndefiniteLength", NewDecoder(), []byte{0x30, 0x80, 0x00, 0x00}},
		{"LongLength", NewDecoder(), []byte{0x04, 0x85, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{"ShortContent", NewDecoder(), []byte{0x04, 0x03, 0x00}},
		{"ExceedsLimit", NewDecoder(WithMaxLength(2)), []byte{0x04, 0x03, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.dec.Read(bytes.NewReader(test.in))
			require.ErrorIs(t, err, ErrMalformedEncoding)
		})
	}
}

func TestBase(t *testing.T) {
	prim := Implicit(ClassContextSpecific, 3, EncodeInt(5))
	assert.True(t, Base(prim).IsOctetString())
	assert.Equal(t, []byte{0x05}, Base(prim).Bytes)

	inner := ContextTagged(0, EncodeInt(1))
	single := Explicit(ClassContextSpecific, 1, inner)
	assert.Same(t, inner, Base(single))

	multi := Implicit(ClassContextSpecific, 2, Sequence(EncodeInt(1), EncodeInt(2)))
	base := Base(multi)
	assert.True(t, base.IsSequence())
	assert.Len(t, base.Children, 2)

	empty := Implicit(ClassContextSpecific, 2, Sequence())
	assert.True(t, Base(empty).IsSequence())
	assert.Empty(t, Base(empty).Children)

	assert.Nil(t, Base(nil))
}

func TestContextTagged(t *testing.T) {
	implicit := ContextTagged(1, EncodeInt(5))
	b, err := Marshal(implicit)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, 0x01, 0x05}, b)

	explicit := ContextTagged(1, ContextTagged(0, EncodeInt(5)))
	b, err = Marshal(explicit)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xa1, 0x03, 0x80, 0x01, 0x05}, b)
}

func TestExpectTag(t *testing.T) {
	block := Implicit(ClassApplication, 5, Sequence(ContextTagged(0, EncodeInt(1)), ContextTagged(1, EncodeInt(2))))

	t.Run("Match", func(t *testing.T) {
		d, anomalies := newRecordingDecoder()

		base, err := d.ExpectTag(block, ClassApplication, 5)
		require.NoError(t, err)
		require.True(t, base.IsSequence())
		require.Empty(t, *anomalies)
	})

	t.Run("PartialMismatch", func(t *testing.T) {
		d, anomalies := newRecordingDecoder()

		base, err := d.ExpectTag(block, ClassContextSpecific, 5)
		require.NoError(t, err)
		require.True(t, base.IsSequence())
		require.Equal(t, []Anomaly{AnomalyTagMismatch}, *anomalies)
	})

	t.Run("Mismatch", func(t *testing.T) {
		_, err := NewDecoder().ExpectTag(block, ClassContextSpecific, 6)
		require.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("Untagged", func(t *testing.T) {
		_, err := NewDecoder().ExpectTag(Sequence(), ClassApplication, 5)
		require.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := NewDecoder().ExpectTag(nil, ClassApplication, 5)
		require.ErrorIs(t, err, ErrSchemaViolation)
	})
}

func TestTaggedChildren(t *testing.T) {
	t.Run("Sequence", func(t *testing.T) {
		d, anomalies := newRecordingDecoder()

		v := Sequence(
			ContextTagged(0, EncodeInt(3)),
			EncodeInt(9),
			ContextTagged(1, EncodeInt(2020)),
			ContextTagged(1, EncodeInt(2021)),
		)

		tagged, err := d.TaggedChildren(v)
		require.NoError(t, err)
		require.Len(t, tagged, 2)

		n, err := DecodeInt(tagged[0])
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		n, err = DecodeInt(tagged[1])
		require.NoError(t, err)
		assert.Equal(t, 2021, n)

		assert.Equal(t, []Anomaly{AnomalyUntaggedChild, AnomalyDuplicateTag}, *anomalies)
	})

	t.Run("SingleTagged", func(t *testing.T) {
		tagged, err := NewDecoder().TaggedChildren(ContextTagged(4, EncodeBool(true)))
		require.NoError(t, err)
		require.Len(t, tagged, 1)
		require.True(t, tagged.Has(4))
	})

	t.Run("Nil", func(t *testing.T) {
		tagged, err := NewDecoder().TaggedChildren(nil)
		require.NoError(t, err)
		require.Empty(t, tagged)
	})

	t.Run("OctetString", func(t *testing.T) {
		_, err := NewDecoder().TaggedChildren(EncodeInt(1))
		require.ErrorIs(t, err, ErrSchemaViolation)
	})
}

func TestEncodeTaggedChildren(t *testing.T) {
	v := EncodeTaggedChildren(Tagged{
		2: EncodeBool(true),
		0: EncodeInt(1),
		1: nil,
	})

	b, err := Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x06, 0x80, 0x01, 0x01, 0x82, 0x01, 0xff}, b)

	v = EncodeTaggedChildren(Tagged{
		1: ContextTagged(0, EncodeInt(5)),
	})

	b, err = Marshal(v)
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x05, 0xa1, 0x03, 0x80, 0x01, 0x05}, b)

	require.Nil(t, EncodeTaggedChildren(nil))
}

func TestTaggedChildrenRoundTrip(t *testing.T) {
	in := Tagged{
		0: EncodeInt(-1),
		3: Sequence(ContextTagged(0, EncodeInt(7)), ContextTagged(1, EncodeInt(8))),
		7: EncodeBool(false),
	}

	b, err := Marshal(EncodeTaggedChildren(in))
	require.NoError(t, err)

	v, err := Parse(b)
	require.NoError(t, err)

	out, err := NewDecoder().TaggedChildren(v)
	require.NoError(t, err)
	require.Len(t, out, 3)

	n, err := DecodeInt(out[0])
	require.NoError(t, err)
	assert.Equal(t, -1, n)

	assert.True(t, out[3].IsSequence())
	assert.Len(t, out[3].Children, 2)

	ok, err := DecodeBool(out[7])
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSequenceOfSequences(t *testing.T) {
	assert.True(t, SequenceOfSequences(Sequence()))
	assert.True(t, SequenceOfSequences(Sequence(Sequence(), Sequence(EncodeInt(1)))))
	assert.False(t, SequenceOfSequences(Sequence(Sequence(), EncodeInt(1))))
	assert.False(t, SequenceOfSequences(EncodeInt(1)))
	assert.False(t, SequenceOfSequences(nil))
}

func TestListChildren(t *testing.T) {
	assert.Nil(t, ListChildren(nil))
	assert.Len(t, ListChildren(Sequence(EncodeInt(1), EncodeInt(2))), 2)

	single := EncodeInt(1)
	assert.Equal(t, []*Value{single}, ListChildren(single))
}

func TestIntegers(t *testing.T) {
	tests := []struct {
		n   int
		enc []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xff}},
		{256, []byte{0x01, 0x00}},
		{2021, []byte{0x07, 0xe5}},
		{-1, []byte{0xff}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{-256, []byte{0xff, 0x00}},
	}

	for _, test := range tests {
		v := EncodeInt(test.n)
		require.True(t, v.IsOctetString())
		require.Equal(t, test.enc, v.Bytes, "encoding %d", test.n)

		n, err := DecodeInt(v)
		require.NoError(t, err)
		require.Equal(t, test.n, n)
	}
}

func TestBigIntegers(t *testing.T) {
	n, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	for _, x := range []*big.Int{n, new(big.Int).Neg(n)} {
		got, err := DecodeBigInt(EncodeBigInt(x))
		require.NoError(t, err)
		require.Zero(t, x.Cmp(got))
	}
}

func TestIntegerErrors(t *testing.T) {
	_, err := DecodeInt(OctetString(nil))
	require.ErrorIs(t, err, ErrNumberFormat)

	_, err = DecodeInt(Sequence())
	require.ErrorIs(t, err, ErrNumberFormat)

	_, err = DecodeInt(nil)
	require.ErrorIs(t, err, ErrNumberFormat)

	_, err = DecodeInt(OctetString([]byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0}))
	require.ErrorIs(t, err, ErrNumberFormat)
}

func TestBooleans(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want bool
		err  error
	}{
		{"True", EncodeBool(true), true, nil},
		{"False", EncodeBool(false), false, nil},
		{"NonZero", OctetString([]byte{0x01}), true, nil},
		{"Universal", Boolean(true), true, nil},
		{"Empty", OctetString(nil), false, ErrSchemaViolation},
		{"Sequence", Sequence(), false, ErrSchemaViolation},
		{"Nil", nil, false, ErrSchemaViolation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := DecodeBool(test.v)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}

	assert.Equal(t, []byte{0xff}, EncodeBool(true).Bytes)
	assert.Equal(t, []byte{0x00}, EncodeBool(false).Bytes)
}

func TestVisibleString(t *testing.T) {
	s, err := DecodeVisibleString(VisibleString("left index"))
	require.NoError(t, err)
	require.Equal(t, "left index", s)

	s, err = DecodeVisibleString(Base(ContextTagged(15, VisibleString("scar"))))
	require.NoError(t, err)
	require.Equal(t, "scar", s)

	_, err = DecodeVisibleString(Sequence())
	require.ErrorIs(t, err, ErrSchemaViolation)
}
