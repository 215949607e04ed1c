// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package cbeff

// ISO/IEC 7816-11 and ICAO Doc 9303-10 biometric information templates
//
// https://www.icao.int/publications/Documents/9303_p10_cons_en.pdf
const (
	// Biometric Information Group Template
	TagBiometricInformationGroupTemplate = 0x7f61
	TagNumberOfInstances                 = 0x02

	// Biometric Information Template
	TagBiometricInformationTemplate  = 0x7f60
	TagBiometricHeaderTemplate       = 0xa1
	TagBiometricDataBlock            = 0x5f2e
	TagBiometricDataBlockConstructed = 0x7f2e

	// Discretionary data, used for random padding of empty data groups
	TagDiscretionaryData = 0x53

	// Standard Biometric Header elements
	TagPatronHeaderVersion             = 0x80
	TagBiometricType                   = 0x81
	TagBiometricSubtype                = 0x82
	TagCreationDateTime                = 0x83
	TagValidityPeriod                  = 0x85
	TagCreatorOfBiometricReferenceData = 0x86
	TagFormatOwner                     = 0x87
	TagFormatType                      = 0x88

	tagHeaderElementFirst = 0x80
	tagHeaderElementLast  = 0x8f
)
