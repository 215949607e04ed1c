// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"fmt"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/encoding/der"
	"cunicu.li/go-lds/iso39794"
)

// modality describes the records held by one of the biometric data groups.
type modality struct {
	name          string
	biometricType cbeff.BiometricType
	legacyFormat  cbeff.FormatType
	format        cbeff.FormatType
	decodeBlock   func(d *der.Decoder, v *der.Value, h *cbeff.StandardBiometricHeader) (BiometricDataBlock, error)
}

//nolint:gochecknoglobals
var modalities = map[Object]*modality{
	ObjectDG2: {
		name:          "face",
		biometricType: cbeff.BiometricTypeFacialFeatures,
		legacyFormat:  cbeff.FormatTypeISO19794Face,
		format:        cbeff.FormatTypeISO39794Face,
		decodeBlock:   decodeImageRecord[iso39794.FaceImageDataBlock],
	},
	ObjectDG3: {
		name:          "finger",
		biometricType: cbeff.BiometricTypeFingerprint,
		legacyFormat:  cbeff.FormatTypeISO19794Finger,
		format:        cbeff.FormatTypeISO39794Finger,
		decodeBlock:   decodeImageRecord[iso39794.FingerImageDataBlock],
	},
	ObjectDG4: {
		name:          "iris",
		biometricType: cbeff.BiometricTypeIris,
		legacyFormat:  cbeff.FormatTypeISO19794Iris,
		format:        cbeff.FormatTypeISO39794Iris,
		decodeBlock:   decodeImageRecord[iso39794.IrisImageDataBlock],
	},
}

func decodeImageRecord[T iso39794.DataBlock](d *der.Decoder, v *der.Value, h *cbeff.StandardBiometricHeader) (BiometricDataBlock, error) {
	blk, err := iso39794.DecodeDataBlock[T](d, v)
	if err != nil {
		return nil, err
	}

	if h == nil {
		h = blk.Header()
	}

	return &ImageRecord[T]{
		header: h,
		block:  blk,
	}, nil
}

// legacyHeader synthesizes the header of ISO/IEC 19794 records.
func (m *modality) legacyHeader() *cbeff.StandardBiometricHeader {
	return cbeff.NewHeader(m.biometricType, cbeff.SubtypeNone, m.legacyFormat)
}

// decodeRecord dispatches the content of a biometric data block element to
// the codec selected by its tag and the format type in the header.
func (m *modality) decodeRecord(d *der.Decoder, h *cbeff.StandardBiometricHeader, tag int, value []byte) (BiometricDataBlock, error) {
	switch tag {
	case cbeff.TagBiometricDataBlock:
		if h == nil {
			h = m.legacyHeader()
		}
		return NewLegacyRecord(h, value), nil

	case cbeff.TagBiometricDataBlockConstructed:

	default:
		return nil, fmt.Errorf("%w: unexpected biometric data block tag 0x%x", ErrSchemaViolation, tag)
	}

	if h.HasFormatType(m.legacyFormat) {
		d.Logger().Info("constructed biometric data block holds an ISO/IEC 19794 record",
			"modality", m.name, "format_type", fmt.Sprintf("0x%04x", uint16(m.legacyFormat)))
		return NewLegacyRecord(h, value), nil
	}

	if h != nil && !h.HasFormatType(m.format) {
		d.Report(AnomalyFormatTypeMismatch, "unexpected format type, decoding as ISO/IEC 39794",
			"modality", m.name, "format_type", fmt.Sprintf("0x%04x", uint16(h.FormatType())))
	}

	v, err := d.Parse(value)
	if err != nil {
		return nil, err
	}

	if v.Class != der.ClassContextSpecific || v.Tag != 1 {
		d.Report(der.AnomalyTagMismatch, "unexpected tag around data block", "found", v.String())
	}

	// Some producers omit the context tag around the application tagged block
	blk := v
	if v.Class != der.ClassApplication {
		blk = der.Base(v)
	}

	return m.decodeBlock(d, blk, h)
}
