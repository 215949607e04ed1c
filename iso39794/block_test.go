// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cunicu.li/go-lds/encoding/der"
)

func ptr[T any](v T) *T {
	return &v
}

func newRecordingDecoder() (*der.Decoder, *[]der.Anomaly) {
	anomalies := &[]der.Anomaly{}

	d := der.NewDecoder(der.WithAnomalyHook(func(a der.Anomaly) {
		*anomalies = append(*anomalies, a)
	}))

	return d, anomalies
}

func decodeRecording[T Block](t *testing.T, b []byte) (T, []der.Anomaly, error) {
	t.Helper()

	d, anomalies := newRecordingDecoder()

	v, err := d.Parse(b)
	require.NoError(t, err)

	blk, err := Decode[T](d, v)

	return blk, *anomalies, err
}

func TestVersion(t *testing.T) {
	encoded := []byte{0x30, 0x07, 0x80, 0x01, 0x03, 0x81, 0x02, 0x07, 0xe5}

	b, err := Marshal(Version{Generation: 3, Year: 2021})
	require.NoError(t, err)
	require.Equal(t, encoded, b)

	v, err := Unmarshal[Version](encoded)
	require.NoError(t, err)
	require.Equal(t, Version{Generation: 3, Year: 2021}, v)
}

func TestDateTimeYearOnly(t *testing.T) {
	encoded := []byte{0x30, 0x04, 0x80, 0x02, 0x07, 0xe5}

	dt, err := Unmarshal[DateTime](encoded)
	require.NoError(t, err)
	require.Equal(t, DateTime{
		Year:        2021,
		Month:       -1,
		Day:         -1,
		Hour:        -1,
		Minute:      -1,
		Second:      -1,
		Millisecond: -1,
	}, dt)

	b, err := Marshal(dt)
	require.NoError(t, err)
	require.Equal(t, encoded, b)

	assert.Equal(t, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC), dt.Time())
}

func TestDateTimeConversion(t *testing.T) {
	ts := time.Date(2024, time.May, 6, 7, 8, 9, 123*int(time.Millisecond), time.UTC)

	dt := NewDateTime(ts)
	assert.Equal(t, 123, dt.Millisecond)
	assert.Equal(t, ts, dt.Time())

	b, err := Marshal(dt)
	require.NoError(t, err)

	dt2, err := Unmarshal[DateTime](b)
	require.NoError(t, err)
	assert.Equal(t, dt, dt2)
}

func TestDecodeAnomalies(t *testing.T) {
	t.Run("UnknownTag", func(t *testing.T) {
		v, anomalies, err := decodeRecording[Version](t, []byte{
			0x30, 0x0a,
			0x80, 0x01, 0x03,
			0x81, 0x02, 0x07, 0xe5,
			0x85, 0x01, 0x00,
		})
		require.NoError(t, err)
		require.Equal(t, Version{Generation: 3, Year: 2021}, v)
		require.Equal(t, []der.Anomaly{AnomalyUnknownTag}, anomalies)
	})

	t.Run("DuplicateTag", func(t *testing.T) {
		v, anomalies, err := decodeRecording[Version](t, []byte{
			0x30, 0x0a,
			0x80, 0x01, 0x01,
			0x80, 0x01, 0x02,
			0x81, 0x02, 0x07, 0xe5,
		})
		require.NoError(t, err)
		require.Equal(t, 2, v.Generation)
		require.Equal(t, []der.Anomaly{der.AnomalyDuplicateTag}, anomalies)
	})

	t.Run("MissingMandatory", func(t *testing.T) {
		_, _, err := decodeRecording[Version](t, []byte{0x30, 0x03, 0x80, 0x01, 0x03})
		require.ErrorIs(t, err, der.ErrSchemaViolation)
		require.ErrorIs(t, err, errMissingField)
	})

	t.Run("NotASequence", func(t *testing.T) {
		_, _, err := decodeRecording[Version](t, []byte{0x04, 0x01, 0x03})
		require.ErrorIs(t, err, der.ErrSchemaViolation)
	})

	t.Run("BadInteger", func(t *testing.T) {
		_, _, err := decodeRecording[Version](t, []byte{
			0x30, 0x05,
			0xa0, 0x00,
			0x81, 0x01, 0x01,
		})
		require.ErrorIs(t, err, der.ErrNumberFormat)
	})
}

func TestUnrecognizedCodes(t *testing.T) {
	info, anomalies, err := decodeRecording[ImageInformation2D](t, []byte{
		0x30, 0x0a,
		0xa0, 0x03, 0x80, 0x01, 0x09, // data format 9
		0xa1, 0x03, 0x80, 0x01, 0x05, // kind 5
	})
	require.NoError(t, err)
	require.Equal(t, []der.Anomaly{AnomalyUnrecognizedCode, AnomalyUnrecognizedCode}, anomalies)

	require.Equal(t, FaceImageDataFormat(Unrecognized), info.DataFormat)
	require.NotNil(t, info.Kind)
	require.Equal(t, FaceImageKind(Unrecognized), *info.Kind)
	assert.Equal(t, "unrecognized", info.DataFormat.String())

	// Mandatory fields cannot hold unrecognized codes
	_, err = Marshal(info)
	require.ErrorIs(t, err, der.ErrSchemaViolation)
	require.ErrorIs(t, err, errUnencodableEnum)

	// Optional ones are omitted
	info.DataFormat = FaceImageDataFormatJPEG

	b, err := Marshal(info)
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x05, 0xa0, 0x03, 0x80, 0x01, 0x02}, b)
}

func TestFromCode(t *testing.T) {
	assert.Equal(t, FingerImpressionStationarySubjectContactlessPlain, FromCode[FingerImpression](24))
	assert.Equal(t, FingerImpression(Unrecognized), FromCode[FingerImpression](2))
	assert.Equal(t, EyeLabelRight, FromCode[EyeLabel](1))
	assert.Equal(t, AnthropometricTragion, FromCode[AnthropometricLandmarkName](60))
	assert.Equal(t, AnthropometricLandmarkName(Unrecognized), FromCode[AnthropometricLandmarkName](61))
	assert.Equal(t, "unknown(12)", FingerPosition(12).String())
}

func TestCodeChoice(t *testing.T) {
	d := der.NewDecoder()

	tests := []struct {
		name string
		v    *der.Value
		code int
		ok   bool
	}{
		{
			name: "Base",
			v:    EncodeCodeChoice(5),
			code: 5,
			ok:   true,
		},
		{
			name: "ExtensionBlockFallback",
			v: der.Sequence(
				der.ContextTagged(1, der.Sequence(
					der.ContextTagged(0, der.EncodeInt(7)),
				)),
			),
			code: 7,
			ok:   true,
		},
		{
			name: "ExtensionBlockWithoutFallback",
			v: der.Sequence(
				der.ContextTagged(1, der.Sequence(
					der.ContextTagged(3, der.EncodeInt(7)),
				)),
			),
		},
		{
			name: "Absent",
			v:    der.Sequence(),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, ok, err := DecodeCodeChoice(d, test.v)
			require.NoError(t, err)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.code, code)
		})
	}

	b, err := der.Marshal(EncodeCodeChoice(5))
	require.NoError(t, err)
	require.Equal(t, []byte{0x30, 0x03, 0x80, 0x01, 0x05}, b)
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		quality Quality
		encoded []byte
	}{
		{
			name:    "Score",
			quality: Quality{Algorithm: RegistryID{Organization: 1, ID: 2}, Score: 50},
			encoded: []byte{
				0x30, 0x0d,
				0xa0, 0x06, 0x80, 0x01, 0x01, 0x81, 0x01, 0x02,
				0xa1, 0x03, 0x80, 0x01, 0x32,
			},
		},
		{
			name:    "FailureToAssess",
			quality: Quality{Algorithm: RegistryID{Organization: 1, ID: 2}, Score: ScoreError},
			encoded: []byte{
				0x30, 0x0e,
				0xa0, 0x06, 0x80, 0x01, 0x01, 0x81, 0x01, 0x02,
				0xa1, 0x04, 0xa1, 0x02, 0x80, 0x00,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, err := Marshal(test.quality)
			require.NoError(t, err)
			require.Equal(t, test.encoded, b)

			q, err := Unmarshal[Quality](b)
			require.NoError(t, err)
			require.Equal(t, test.quality, q)
		})
	}

	t.Run("Absent", func(t *testing.T) {
		q, err := Unmarshal[Quality]([]byte{
			0x30, 0x08,
			0xa0, 0x06, 0x80, 0x01, 0x01, 0x81, 0x01, 0x02,
		})
		require.NoError(t, err)
		require.Equal(t, ScoreError, q.Score)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, score := range []int{-2, 101} {
			_, err := Marshal(Quality{Score: score})
			require.ErrorIs(t, err, errScoreRange)
		}
	})
}

func TestListCardinality(t *testing.T) {
	pad := PADData{
		Scores: []PADScore{
			{Mechanism: RegistryID{Organization: 1, ID: 1}, Score: 10},
		},
		RiskLevel:  -1,
		Challenges: [][]byte{{0x01}},
	}

	b, err := Marshal(pad)
	require.NoError(t, err)

	// A list with a single element is carried without its enclosing sequence
	d := der.NewDecoder()
	v, err := d.Parse(b)
	require.NoError(t, err)

	tagged, err := d.TaggedChildren(v)
	require.NoError(t, err)
	require.True(t, tagged[1].IsSequence())
	require.False(t, der.SequenceOfSequences(tagged[1]))
	require.True(t, tagged[8].IsOctetString())

	pad2, err := Unmarshal[PADData](b)
	require.NoError(t, err)
	require.True(t, Equal(pad, pad2))
	require.Len(t, pad2.Scores, 1)
	require.Equal(t, [][]byte{{0x01}}, pad2.Challenges)

	pad.Scores = append(pad.Scores, PADScore{Mechanism: RegistryID{Organization: 1, ID: 2}, Score: ScoreError})
	pad.Challenges = append(pad.Challenges, []byte{0x02, 0x03})

	b, err = Marshal(pad)
	require.NoError(t, err)

	pad3, err := Unmarshal[PADData](b)
	require.NoError(t, err)
	require.True(t, Equal(pad, pad3))
	require.Len(t, pad3.Scores, 2)

	t.Run("SingleEmptyElement", func(t *testing.T) {
		m := ReferenceColourMapping{Definitions: []ReferenceColourDefinition{{}}}

		b, err := Marshal(m)
		require.NoError(t, err)
		require.Equal(t, []byte{0x30, 0x04, 0xa1, 0x02, 0x30, 0x00}, b)

		m2, err := Unmarshal[ReferenceColourMapping](b)
		require.NoError(t, err)
		require.Len(t, m2.Definitions, 1)
		require.True(t, Equal(m, m2))

		_, err = Marshal(definitionListBlock{Definitions: []ReferenceColourDefinition{{}}})
		require.ErrorIs(t, err, der.ErrSchemaViolation)
		require.ErrorIs(t, err, errAmbiguousList)

		b, err = Marshal(definitionListBlock{Definitions: []ReferenceColourDefinition{{}, {}}})
		require.NoError(t, err)

		l, err := Unmarshal[definitionListBlock](b)
		require.NoError(t, err)
		require.Len(t, l.Definitions, 2)
	})
}

type definitionListBlock struct {
	Definitions []ReferenceColourDefinition `bdb:"0"`
}

func (definitionListBlock) isBlock() {}

func TestEqualAndHash(t *testing.T) {
	a := TextureImage{U: big.NewInt(1), V: big.NewInt(300)}
	b := TextureImage{U: new(big.Int).SetBytes([]byte{0x01}), V: new(big.Int).SetBytes([]byte{0x01, 0x2c})}
	c := TextureImage{U: big.NewInt(1), V: big.NewInt(301)}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(a), Hash(c))

	assert.True(t, Equal(PADData{Scores: nil}, PADData{Scores: []PADScore{}}))
	assert.False(t, Equal(PADData{Decision: ptr(PADDecisionAttack)}, PADData{}))
	assert.False(t, Equal(Cartesian2D{}, Cartesian3D{}))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(Cartesian2D{}, nil))

	// Blocks which cannot be encoded hash to zero
	assert.Zero(t, Hash(TextureImage{}))
}

type taglessBlock struct {
	Name string `bdb:"0"`
}

type duplicateTagBlock struct {
	A int `bdb:"0"`
	B int `bdb:"0"`
}

type badOptionBlock struct {
	A int `bdb:"0,sometimes"`
}

func (taglessBlock) isBlock()      {}
func (duplicateTagBlock) isBlock() {}
func (badOptionBlock) isBlock()    {}

func TestInvalidFields(t *testing.T) {
	for _, b := range []Block{taglessBlock{}, duplicateTagBlock{}, badOptionBlock{}} {
		_, err := Marshal(b)
		require.ErrorIs(t, err, errInvalidField)
	}

	_, err := Marshal((*Version)(nil))
	require.ErrorIs(t, err, errNotABlock)
}
