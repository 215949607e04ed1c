// SPDX-FileCopyrightText: 2020 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package cbeff holds the vocabulary of the Common Biometric Exchange
// Formats Framework as profiled by ICAO for eMRTDs: biometric types and
// subtypes, format owners and types and the standard biometric header.
package cbeff

import "fmt"

// BiometricType is a CBEFF biometric type as found in the standard
// biometric header.
type BiometricType int

// The mapping between known BiometricType values and their descriptions.
//
//nolint:gochecknoglobals
var biometricTypeStrings = map[BiometricType]string{
	BiometricTypeNone:                   "None",
	BiometricTypeMultipleBiometricsUsed: "Multiple biometrics",
	BiometricTypeFacialFeatures:         "Facial features",
	BiometricTypeVoice:                  "Voice",
	BiometricTypeFingerprint:            "Fingerprint",
	BiometricTypeIris:                   "Iris",
	BiometricTypeRetina:                 "Retina",
	BiometricTypeHandGeometry:           "Hand geometry",
	BiometricTypeSignatureDynamics:      "Signature dynamics",
	BiometricTypeKeystrokeDynamics:      "Keystroke dynamics",
	BiometricTypeLipMovement:            "Lip movement",
	BiometricTypeThermalFaceImage:       "Thermal face image",
	BiometricTypeThermalHandImage:       "Thermal hand image",
	BiometricTypeGait:                   "Gait",
	BiometricTypeBodyOdor:               "Body odor",
	BiometricTypeDNA:                    "DNA",
	BiometricTypeEarShape:               "Ear shape",
	BiometricTypeFingerGeometry:         "Finger geometry",
	BiometricTypePalmPrint:              "Palm print",
	BiometricTypeVeinPattern:            "Vein pattern",
	BiometricTypeFootPrint:              "Foot print",
}

// String returns the human-readable description for the given biometric
// type, or a fallback value for any other, unknown type.
func (t BiometricType) String() string {
	if s, ok := biometricTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(0x%06x)", int(t))
}

// Biometric types as defined by ISO/IEC 19785-1.
const (
	BiometricTypeNone                   BiometricType = 0x000000
	BiometricTypeMultipleBiometricsUsed BiometricType = 0x000001
	BiometricTypeFacialFeatures         BiometricType = 0x000002
	BiometricTypeVoice                  BiometricType = 0x000004
	BiometricTypeFingerprint            BiometricType = 0x000008
	BiometricTypeIris                   BiometricType = 0x000010
	BiometricTypeRetina                 BiometricType = 0x000020
	BiometricTypeHandGeometry           BiometricType = 0x000040
	BiometricTypeSignatureDynamics      BiometricType = 0x000080
	BiometricTypeKeystrokeDynamics      BiometricType = 0x000100
	BiometricTypeLipMovement            BiometricType = 0x000200
	BiometricTypeThermalFaceImage       BiometricType = 0x000400
	BiometricTypeThermalHandImage       BiometricType = 0x000800
	BiometricTypeGait                   BiometricType = 0x001000
	BiometricTypeBodyOdor               BiometricType = 0x002000
	BiometricTypeDNA                    BiometricType = 0x004000
	BiometricTypeEarShape               BiometricType = 0x008000
	BiometricTypeFingerGeometry         BiometricType = 0x010000
	BiometricTypePalmPrint              BiometricType = 0x020000
	BiometricTypeVeinPattern            BiometricType = 0x040000
	BiometricTypeFootPrint              BiometricType = 0x080000
)

// Subtype is a CBEFF biometric subtype bit mask.
//
// The side bits and the finger values are combined,
// e.g. SubtypeLeft|SubtypeRingFinger.
type Subtype int

// Biometric subtypes.
const (
	SubtypeNone          Subtype = 0x00
	SubtypeRight         Subtype = 0x01
	SubtypeLeft          Subtype = 0x02
	SubtypeThumb         Subtype = 0x04
	SubtypePointerFinger Subtype = 0x08
	SubtypeMiddleFinger  Subtype = 0x0c
	SubtypeRingFinger    Subtype = 0x10
	SubtypeLittleFinger  Subtype = 0x14
)

// FormatOwner identifies the organization which defined a biometric format.
type FormatOwner uint16

// FormatOwnerJTC1SC37 is ISO/IEC JTC 1/SC 37, owner of the ISO/IEC 19794
// and ISO/IEC 39794 formats.
const FormatOwnerJTC1SC37 FormatOwner = 0x0101

// FormatType identifies a biometric data format of a format owner.
type FormatType uint16

// Format types registered by ISO/IEC JTC 1/SC 37.
const (
	FormatTypeISO19794Finger FormatType = 0x0007
	FormatTypeISO19794Face   FormatType = 0x0008
	FormatTypeISO19794Iris   FormatType = 0x0009

	FormatTypeISO39794Finger FormatType = 0x0028
	FormatTypeISO39794Iris   FormatType = 0x002c
	FormatTypeISO39794Face   FormatType = 0x0040
)
