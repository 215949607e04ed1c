// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"io"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/iso39794"
)

// DG2File is data group 2 holding the encoded face images of the holder.
type DG2File struct {
	CBEFFDataGroup
}

// NewISO19794DG2 creates data group 2 from ISO/IEC 19794 records.
func NewISO19794DG2(records []*LegacyRecord, opts ...Option) *DG2File {
	return &DG2File{newGroup(ObjectDG2, cbeff.EncodingTypeISO19794, legacyRecords(records), newConfig(opts))}
}

// NewISO39794DG2 creates data group 2 from ISO/IEC 39794 data blocks.
func NewISO39794DG2(blocks []iso39794.FaceImageDataBlock, opts ...Option) *DG2File {
	return &DG2File{newGroup(ObjectDG2, cbeff.EncodingTypeISO39794, imageRecords(blocks), newConfig(opts))}
}

// ParseDG2 decodes data group 2.
func ParseDG2(b []byte, opts ...Option) (*DG2File, error) {
	g, err := parseGroup(ObjectDG2, b, newConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DG2File{*g}, nil
}

// ReadDG2 reads and decodes data group 2 from r.
// Octets following the data group are not consumed.
func ReadDG2(r io.Reader, opts ...Option) (*DG2File, error) {
	g, err := readGroup(ObjectDG2, r, newConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DG2File{*g}, nil
}

// FaceImageDataBlocks returns the ISO/IEC 39794 data blocks of the group.
func (f *DG2File) FaceImageDataBlocks() []iso39794.FaceImageDataBlock {
	return imageBlocks[iso39794.FaceImageDataBlock](f.records)
}
