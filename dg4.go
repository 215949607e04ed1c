// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"io"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/iso39794"
)

// DG4File is data group 4 holding the encoded iris images of the holder.
type DG4File struct {
	CBEFFDataGroup
}

// NewISO19794DG4 creates data group 4 from ISO/IEC 19794 records.
func NewISO19794DG4(records []*LegacyRecord, opts ...Option) *DG4File {
	return &DG4File{newGroup(ObjectDG4, cbeff.EncodingTypeISO19794, legacyRecords(records), newConfig(opts))}
}

// NewISO39794DG4 creates data group 4 from ISO/IEC 39794 data blocks.
func NewISO39794DG4(blocks []iso39794.IrisImageDataBlock, opts ...Option) *DG4File {
	return &DG4File{newGroup(ObjectDG4, cbeff.EncodingTypeISO39794, imageRecords(blocks), newConfig(opts))}
}

// ParseDG4 decodes data group 4.
func ParseDG4(b []byte, opts ...Option) (*DG4File, error) {
	g, err := parseGroup(ObjectDG4, b, newConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DG4File{*g}, nil
}

// ReadDG4 reads and decodes data group 4 from r.
// Octets following the data group are not consumed.
func ReadDG4(r io.Reader, opts ...Option) (*DG4File, error) {
	g, err := readGroup(ObjectDG4, r, newConfig(opts))
	if err != nil {
		return nil, err
	}

	return &DG4File{*g}, nil
}

// IrisImageDataBlocks returns the ISO/IEC 39794 data blocks of the group.
func (f *DG4File) IrisImageDataBlocks() []iso39794.IrisImageDataBlock {
	return imageBlocks[iso39794.IrisImageDataBlock](f.records)
}
