// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"io"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/iso39794"
)

// DG3File is data group 3 holding the encoded finger images of the holder.
//
// Access to DG3 is usually protected by extended access control.
type DG3File struct {
	CBEFFDataGroup
}

// NewISO19794DG3 creates data group 3 from ISO/IEC 19794 records.
func NewISO19794DG3(records []*LegacyRecord, opts ...Option) *DG3File {
	return &DG3File{newGroup(ObjectDG3, cbeff.EncodingTypeISO19794, legacyRecords(records), newConfig(opts))}
}

// NewISO39794DG3 creates data group 3 from ISO/IEC 39794 data blocks.
func NewISO39794DG3(blocks []iso39794.FingerImageDataBlock, opts ...Option) *DG3File {
	return &DG3File{newGroup(ObjectDG3, cbeff.EncodingTypeISO39794, imageRecords(blocks), newConfig(opts))}
}

// ParseDG3 decodes data group 3.
func ParseDG3(b []byte, opts ...Option) (*DG3File, error) {
	g, err := parseGroup(ObjectDG3, b, newConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DG3File{*g}, nil
}

// ReadDG3 reads and decodes data group 3 from r.
// Octets following the data group are not consumed.
func ReadDG3(r io.Reader, opts ...Option) (*DG3File, error) {
	g, err := readGroup(ObjectDG3, r, newConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DG3File{*g}, nil
}

// FingerImageDataBlocks returns the ISO/IEC 39794 data blocks of the group.
func (f *DG3File) FingerImageDataBlocks() []iso39794.FingerImageDataBlock {
	return imageBlocks[iso39794.FingerImageDataBlock](f.records)
}
