// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"bytes"

	"cunicu.li/go-iso7816/encoding/tlv"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/iso39794"
)

// BiometricDataBlock is a single record of a biometric data group together
// with its standard biometric header.
//
// It is either a *LegacyRecord or one of the ISO/IEC 39794 image records.
type BiometricDataBlock interface {
	StandardBiometricHeader() *cbeff.StandardBiometricHeader
	EncodingType() cbeff.EncodingType
	Equal(other BiometricDataBlock) bool

	// encode returns the biometric data block element 5F2E or 7F2E.
	encode() (tlv.TagValue, error)
}

var (
	_ BiometricDataBlock = (*LegacyRecord)(nil)
	_ BiometricDataBlock = (*FaceImageRecord)(nil)
	_ BiometricDataBlock = (*FingerImageRecord)(nil)
	_ BiometricDataBlock = (*IrisImageRecord)(nil)
)

// LegacyRecord is an ISO/IEC 19794 record which is kept as opaque octets.
type LegacyRecord struct {
	header *cbeff.StandardBiometricHeader
	data   []byte
}

// NewLegacyRecord creates a record from the encoded ISO/IEC 19794 data.
// If header is nil, the data group synthesizes one for its modality.
func NewLegacyRecord(header *cbeff.StandardBiometricHeader, data []byte) *LegacyRecord {
	return &LegacyRecord{
		header: header,
		data:   bytes.Clone(data),
	}
}

func (r *LegacyRecord) StandardBiometricHeader() *cbeff.StandardBiometricHeader {
	return r.header
}

func (r *LegacyRecord) EncodingType() cbeff.EncodingType {
	return cbeff.EncodingTypeISO19794
}

// Data returns a copy of the encoded record.
func (r *LegacyRecord) Data() []byte {
	return bytes.Clone(r.data)
}

func (r *LegacyRecord) Equal(other BiometricDataBlock) bool {
	o, ok := other.(*LegacyRecord)
	if !ok || r == nil || o == nil {
		return ok && r == o
	}

	return r.header.Equal(o.header) && bytes.Equal(r.data, o.data)
}

func (r *LegacyRecord) encode() (tlv.TagValue, error) {
	return tlv.New(cbeff.TagBiometricDataBlock, r.data), nil
}

// ImageRecord wraps an ISO/IEC 39794 data block.
type ImageRecord[T iso39794.DataBlock] struct {
	header *cbeff.StandardBiometricHeader
	block  T
}

type (
	FaceImageRecord   = ImageRecord[iso39794.FaceImageDataBlock]
	FingerImageRecord = ImageRecord[iso39794.FingerImageDataBlock]
	IrisImageRecord   = ImageRecord[iso39794.IrisImageDataBlock]
)

// NewImageRecord creates a record with the header derived from the block.
func NewImageRecord[T iso39794.DataBlock](block T) *ImageRecord[T] {
	return &ImageRecord[T]{
		header: block.Header(),
		block:  block,
	}
}

func (r *ImageRecord[T]) StandardBiometricHeader() *cbeff.StandardBiometricHeader {
	return r.header
}

func (r *ImageRecord[T]) EncodingType() cbeff.EncodingType {
	return cbeff.EncodingTypeISO39794
}

// Block returns the wrapped data block.
func (r *ImageRecord[T]) Block() T {
	return r.block
}

// Equal compares the data blocks of both records. Headers are not compared
// as they are derived from the blocks.
func (r *ImageRecord[T]) Equal(other BiometricDataBlock) bool {
	o, ok := other.(*ImageRecord[T])
	if !ok || r == nil || o == nil {
		return ok && r == o
	}

	return iso39794.Equal(r.block, o.block)
}

func (r *ImageRecord[T]) encode() (tlv.TagValue, error) {
	b, err := iso39794.MarshalDataBlock(r.block)
	if err != nil {
		return tlv.TagValue{}, err
	}

	return tlv.New(cbeff.TagBiometricDataBlockConstructed,
		tlv.New(cbeff.TagBiometricHeaderTemplate, b),
	), nil
}
