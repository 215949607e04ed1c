// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/encoding/der"
)

func testFingerImageDataBlock() FingerImageDataBlock {
	return FingerImageDataBlock{
		Version: Version{Generation: 3, Year: 2019},
		Representations: []FingerImageRepresentation{
			{
				Position:   FingerPositionRightThumb,
				Impression: FingerImpressionPlainContact,
				DataFormat: FingerImageDataFormatWSQ,
				Data:       []byte{0xff, 0xa0, 0xff, 0xa8},
				CaptureDevice: &FingerCaptureDevice{
					Model:      RegistryID{Organization: 1, ID: 2},
					Technology: ptr(FingerCaptureTechnologyCapacitive),
				},
				SpatialSamplingRate: &SpatialSamplingRate{
					SamplesPerUnit: 500,
					Unit:           SpatialSamplingRateUnitInch,
				},
				Rotation:          ptr(-15),
				LossilyCompressed: ptr(true),
				Segmentations: []Segmentation{
					{
						Algorithm: RegistryID{Organization: 1, ID: 3},
						Segments: []Segment{
							{
								Position:    FingerPositionRightIndex,
								Coordinates: []Cartesian2D{{X: 1, Y: 2}, {X: 3, Y: 4}},
								Orientation: ptr(10),
								Confidence:  90,
							},
						},
					},
				},
				Annotations: []Annotation{
					{Position: FingerPositionRightLittle, Reason: AnnotationReasonAmputated},
				},
				Comments: []string{"scar"},
			},
			{
				Position:   FingerPositionLeftThumb,
				Impression: FingerImpressionRolledContact,
				DataFormat: FingerImageDataFormatPNG,
				Data:       []byte{0x89, 'P', 'N', 'G'},
				Qualities: []Quality{
					{Algorithm: RegistryID{Organization: 0x0101, ID: 1}, Score: 55},
				},
				Comments: []string{"first", "second"},
				VendorSpecificData: []ExtendedData{
					{Type: RegistryID{Organization: 9, ID: 9}, Data: []byte{0xca, 0xfe}},
				},
			},
		},
	}
}

func TestFingerImageDataBlock(t *testing.T) {
	blk := testFingerImageDataBlock()

	b, err := MarshalDataBlock(blk)
	require.NoError(t, err)
	require.Equal(t, byte(0x64), b[0])

	blk2, err := UnmarshalDataBlock[FingerImageDataBlock](b)
	require.NoError(t, err)
	require.True(t, Equal(blk, blk2))

	require.Equal(t, []string{"scar"}, blk2.Representations[0].Comments)
	require.Equal(t, -15, *blk2.Representations[0].Rotation)
	require.Equal(t, 55, blk2.Representations[1].Qualities[0].Score)
	require.Nil(t, blk2.Representations[1].CaptureDevice)
}

func TestFingerSubtype(t *testing.T) {
	tests := []struct {
		name      string
		positions []FingerPosition
		subtype   cbeff.Subtype
	}{
		{"None", nil, cbeff.SubtypeNone},
		{"RightIndex", []FingerPosition{FingerPositionRightIndex}, cbeff.SubtypeRight | cbeff.SubtypePointerFinger},
		{"Thumbs", []FingerPosition{FingerPositionRightThumb, FingerPositionLeftThumb}, cbeff.SubtypeThumb},
		{"RightHand", []FingerPosition{FingerPositionRightThumb, FingerPositionRightFourFingers}, cbeff.SubtypeRight},
		{"RightWritersPalm", []FingerPosition{PalmPositionRightWritersPalm}, cbeff.SubtypeRight},
		{"Mixed", []FingerPosition{FingerPositionRightRing, FingerPositionLeftIndex}, cbeff.SubtypeNone},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			blk := FingerImageDataBlock{}
			for _, p := range test.positions {
				blk.Representations = append(blk.Representations, FingerImageRepresentation{Position: p})
			}

			require.Equal(t, test.subtype, blk.Subtype())

			h := blk.Header()
			assert.Equal(t, cbeff.BiometricTypeFingerprint, h.BiometricType())
			assert.Equal(t, test.subtype, h.Subtype())
			assert.Equal(t, cbeff.FormatTypeISO39794Finger, h.FormatType())
		})
	}
}

func TestFingerPosition(t *testing.T) {
	assert.Equal(t, "right thumb", FingerPositionRightThumb.String())
	assert.Equal(t, "left hypothenar", PalmPositionLeftHypothenar.String())
	assert.False(t, FingerPosition(11).IsValid())
	assert.False(t, FingerPosition(37).IsValid())
	assert.Equal(t, cbeff.SubtypeNone, FingerPosition(11).Subtype())
}

func TestFingerImageDataFormat(t *testing.T) {
	assert.Equal(t, "image/x-wsq", FingerImageDataFormatWSQ.MimeType())
	assert.Equal(t, "image/png", FingerImageDataFormatPNG.MimeType())
	assert.Empty(t, FingerImageDataFormat(Unrecognized).MimeType())
}

func TestFingerUnknownPosition(t *testing.T) {
	rep := FingerImageRepresentation{
		Position:   FingerPosition(11),
		Impression: FingerImpressionUnknown,
		DataFormat: FingerImageDataFormatPGM,
		Data:       []byte{0x00},
	}

	// Unknown but non-negative codes are written as they are
	b, err := Marshal(rep)
	require.NoError(t, err)

	rep2, anomalies, err := decodeRecording[FingerImageRepresentation](t, b)
	require.NoError(t, err)
	require.Equal(t, []der.Anomaly{AnomalyUnrecognizedCode}, anomalies)
	require.Equal(t, FingerPosition(Unrecognized), rep2.Position)
	require.Equal(t, "unrecognized", rep2.Position.String())
}
