// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

// Logical Data Structure
//
// https://www.icao.int/publications/Documents/9303_p10_cons_en.pdf#page=33
//
//nolint:unused
const (
	// Table 34. Data group tags
	tagCOM  = 0x60
	tagDG1  = 0x61
	tagDG2  = 0x75
	tagDG3  = 0x63
	tagDG4  = 0x76
	tagDG5  = 0x65
	tagDG6  = 0x66
	tagDG7  = 0x67
	tagDG8  = 0x68
	tagDG9  = 0x69
	tagDG10 = 0x6a
	tagDG11 = 0x6b
	tagDG12 = 0x6c
	tagDG13 = 0x6d
	tagDG14 = 0x6e
	tagDG15 = 0x6f
	tagDG16 = 0x70
	tagSOD  = 0x77
)

// randomPaddingLength is the number of random octets in the discretionary
// data element appended to empty data groups.
const randomPaddingLength = 8
