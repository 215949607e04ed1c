// SPDX-FileCopyrightText: 2020 Google LLC
// SPDX-License-Identifier: Apache-2.0

package cbeff

//nolint:gochecknoglobals
var (
	encodingTypeMap = map[EncodingType]int{
		EncodingTypeISO19794: TagBiometricDataBlock,
		EncodingTypeISO39794: TagBiometricDataBlockConstructed,
	}

	encodingTypeMapInv = map[int]EncodingType{
		TagBiometricDataBlock:            EncodingTypeISO19794,
		TagBiometricDataBlockConstructed: EncodingTypeISO39794,
	}

	encodingTypeStrings = map[EncodingType]string{
		EncodingTypeUnknown:  "unknown",
		EncodingTypeISO19794: "iso19794",
		EncodingTypeISO39794: "iso39794",
	}
)

// EncodingType distinguishes the legacy ISO/IEC 19794 biometric data blocks
// from the ISO/IEC 39794 ones.
type EncodingType int

// Encoding types supported by this package.
const (
	EncodingTypeUnknown EncodingType = iota
	EncodingTypeISO19794
	EncodingTypeISO39794
)

// FromBDBTag returns the encoding type signalled by the tag of a biometric
// data block.
func FromBDBTag(tag int) EncodingType {
	if t, ok := encodingTypeMapInv[tag]; ok {
		return t
	}
	return EncodingTypeUnknown
}

// BDBTag returns the tag of biometric data blocks in this encoding.
// Unknown encodings use the simple 0x5f2e tag.
func (t EncodingType) BDBTag() int {
	if tag, ok := encodingTypeMap[t]; ok {
		return tag
	}
	return TagBiometricDataBlock
}

func (t EncodingType) String() string {
	if s, ok := encodingTypeStrings[t]; ok {
		return s
	}
	return encodingTypeStrings[EncodingTypeUnknown]
}
