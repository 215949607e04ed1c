// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package cbeff

import (
	"testing"

	"cunicu.li/go-iso7816/encoding/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cunicu.li/go-lds/encoding/der"
)

func TestBiometricTypeString(t *testing.T) {
	assert.Equal(t, "Facial features", BiometricTypeFacialFeatures.String())
	assert.Equal(t, "Iris", BiometricTypeIris.String())
	assert.Equal(t, "unknown(0x100000)", BiometricType(0x100000).String())
}

func TestEncodingType(t *testing.T) {
	tests := []struct {
		tag  int
		typ  EncodingType
		back int
	}{
		{0x5f2e, EncodingTypeISO19794, 0x5f2e},
		{0x7f2e, EncodingTypeISO39794, 0x7f2e},
		{0x7f60, EncodingTypeUnknown, 0x5f2e},
	}

	for _, test := range tests {
		typ := FromBDBTag(test.tag)
		require.Equal(t, test.typ, typ)
		require.Equal(t, test.back, typ.BDBTag())
	}

	assert.Equal(t, "iso39794", EncodingTypeISO39794.String())
	assert.Equal(t, "unknown", EncodingType(42).String())
}

func TestHeaderSynthesized(t *testing.T) {
	h := NewHeader(BiometricTypeFacialFeatures, SubtypeNone, FormatTypeISO39794Face)

	assert.Equal(t, []int{TagBiometricType, TagBiometricSubtype, TagFormatOwner, TagFormatType}, h.Tags())
	assert.Equal(t, BiometricTypeFacialFeatures, h.BiometricType())
	assert.Equal(t, SubtypeNone, h.Subtype())
	assert.Equal(t, FormatOwnerJTC1SC37, h.FormatOwner())
	assert.Equal(t, FormatTypeISO39794Face, h.FormatType())
	assert.True(t, h.HasFormatType(FormatTypeISO39794Face))
	assert.False(t, h.HasFormatType(FormatTypeISO19794Face))

	ft, ok := h.Element(TagFormatType)
	require.True(t, ok)
	require.Equal(t, []byte{0x00, 0x40}, ft)

	// Returned elements are copies
	ft[1] = 0x08
	assert.True(t, h.HasFormatType(FormatTypeISO39794Face))
}

func TestHeaderEncoding(t *testing.T) {
	h := NewHeader(BiometricTypeFingerprint, SubtypeLeft|SubtypeRingFinger, FormatTypeISO39794Finger)

	b, err := tlv.EncodeBER(h.TagValue())
	require.NoError(t, err)
	require.Equal(t, []byte{
		0xa1, 0x0e,
		0x81, 0x01, 0x08,
		0x82, 0x01, 0x12,
		0x87, 0x02, 0x01, 0x01,
		0x88, 0x02, 0x00, 0x28,
	}, b)

	tvs, err := tlv.DecodeBER(b)
	require.NoError(t, err)

	content, _, ok := tvs.Get(TagBiometricHeaderTemplate)
	require.True(t, ok)

	h2, err := ParseStandardBiometricHeader(content)
	require.NoError(t, err)
	require.True(t, h.Equal(h2))
	require.Equal(t, SubtypeLeft|SubtypeRingFinger, h2.Subtype())
}

func TestHeaderElements(t *testing.T) {
	_, err := NewStandardBiometricHeader(map[int][]byte{0x90: {0x01}})
	require.ErrorIs(t, err, der.ErrSchemaViolation)

	h, err := NewStandardBiometricHeader(map[int][]byte{
		TagPatronHeaderVersion: {0x01, 0x01},
		TagBiometricType:       {0x10},
		TagFormatType:          {0x00, 0x09},
	})
	require.NoError(t, err)

	assert.Equal(t, BiometricTypeIris, h.BiometricType())
	assert.True(t, h.HasFormatType(FormatTypeISO19794Iris))
	assert.Equal(t, FormatOwner(0), h.FormatOwner())
	assert.False(t, h.Equal(NewHeader(BiometricTypeIris, SubtypeNone, FormatTypeISO19794Iris)))
	assert.Equal(t, "SBH [80: 0101, 81: 10, 88: 0009]", h.String())

	var nilHeader *StandardBiometricHeader
	assert.False(t, nilHeader.HasFormatType(FormatTypeISO19794Iris))
	assert.True(t, nilHeader.Equal(nil))
	assert.False(t, nilHeader.Equal(h))
}
