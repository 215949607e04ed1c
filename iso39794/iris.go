// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"cunicu.li/go-lds/cbeff"
)

// IrisImageDataBlock is the iris image data block of ISO/IEC 39794-6.
type IrisImageDataBlock struct {
	Version         Version                   `bdb:"0"`
	Representations []IrisImageRepresentation `bdb:"1"`
}

func (IrisImageDataBlock) ApplicationTag() int {
	return ApplicationTagIris
}

// Header returns a header for irises in ISO/IEC 39794-6 format.
func (b IrisImageDataBlock) Header() *cbeff.StandardBiometricHeader {
	return cbeff.NewHeader(cbeff.BiometricTypeIris, b.Subtype(), cbeff.FormatTypeISO39794Iris)
}

// Subtype returns the biometric subtype shared by the eye labels of all representations.
func (b IrisImageDataBlock) Subtype() cbeff.Subtype {
	if len(b.Representations) == 0 {
		return cbeff.SubtypeNone
	}

	subtype := ^cbeff.Subtype(0)
	for _, r := range b.Representations {
		subtype &= r.EyeLabel.Subtype()
	}

	return subtype
}

// IrisImageRepresentation is a single captured iris image with its metadata.
type IrisImageRepresentation struct {
	EyeLabel              EyeLabel              `bdb:"0"`
	Kind                  IrisImageKind         `bdb:"1,code"`
	BitDepth              int                   `bdb:"2"`
	DataFormat            IrisImageDataFormat   `bdb:"3,code"`
	HorizontalOrientation HorizontalOrientation `bdb:"4"`
	VerticalOrientation   VerticalOrientation   `bdb:"5"`
	CompressionHistory    CompressionHistory    `bdb:"6"`
	Range                 RangeOrError          `bdb:"7"`
	CaptureDateTime       DateTime              `bdb:"8"`
	Data                  []byte                `bdb:"9"`
	CaptureDevice         *IrisCaptureDevice    `bdb:"10"`
	Qualities             []Quality             `bdb:"11,optional"`
	RollAngle             *RollAngle            `bdb:"12"`
	Localisation          *Localisation         `bdb:"13"`
	PADData               *PADData              `bdb:"14"`
}

// EyeLabel tells which eye an iris image shows.
type EyeLabel int

const (
	EyeLabelUnknown EyeLabel = iota
	EyeLabelRight
	EyeLabelLeft
)

//nolint:gochecknoglobals
var eyeLabelStrings = map[EyeLabel]string{
	EyeLabelUnknown: "unknown",
	EyeLabelRight:   "right",
	EyeLabelLeft:    "left",
}

func (l EyeLabel) String() string { return codeString(eyeLabelStrings, l) }
func (l EyeLabel) IsValid() bool  { return codeValid(eyeLabelStrings, l) }

// Subtype returns the biometric subtype of the eye.
func (l EyeLabel) Subtype() cbeff.Subtype {
	switch l {
	case EyeLabelRight:
		return cbeff.SubtypeRight
	case EyeLabelLeft:
		return cbeff.SubtypeLeft
	default:
		return cbeff.SubtypeNone
	}
}

// IrisImageKind is the cropping and masking applied to an iris image.
type IrisImageKind int

const (
	IrisImageKindUncropped        IrisImageKind = 1
	IrisImageKindVGA              IrisImageKind = 2
	IrisImageKindCropped          IrisImageKind = 3
	IrisImageKindCroppedAndMasked IrisImageKind = 7
)

//nolint:gochecknoglobals
var irisImageKindStrings = map[IrisImageKind]string{
	IrisImageKindUncropped:        "uncropped",
	IrisImageKindVGA:              "VGA",
	IrisImageKindCropped:          "cropped",
	IrisImageKindCroppedAndMasked: "cropped and masked",
}

func (k IrisImageKind) String() string { return codeString(irisImageKindStrings, k) }
func (k IrisImageKind) IsValid() bool  { return codeValid(irisImageKindStrings, k) }

// IrisImageDataFormat is the encoding of an iris image.
type IrisImageDataFormat int

const (
	IrisImageDataFormatPGM IrisImageDataFormat = iota
	IrisImageDataFormatPPM
	IrisImageDataFormatPNG
	IrisImageDataFormatJPEG2000Lossless
	IrisImageDataFormatJPEG2000Lossy
)

//nolint:gochecknoglobals
var (
	irisImageDataFormatStrings = map[IrisImageDataFormat]string{
		IrisImageDataFormatPGM:              "PGM",
		IrisImageDataFormatPPM:              "PPM",
		IrisImageDataFormatPNG:              "PNG",
		IrisImageDataFormatJPEG2000Lossless: "JPEG 2000 lossless",
		IrisImageDataFormatJPEG2000Lossy:    "JPEG 2000 lossy",
	}

	irisImageDataFormatMimeTypes = map[IrisImageDataFormat]string{
		IrisImageDataFormatPGM:              "image/pgm",
		IrisImageDataFormatPPM:              "image/ppm",
		IrisImageDataFormatPNG:              "image/png",
		IrisImageDataFormatJPEG2000Lossless: "image/jp2",
		IrisImageDataFormatJPEG2000Lossy:    "image/jp2",
	}
)

func (f IrisImageDataFormat) String() string { return codeString(irisImageDataFormatStrings, f) }
func (f IrisImageDataFormat) IsValid() bool  { return codeValid(irisImageDataFormatStrings, f) }

// MimeType returns the MIME type of images in this format.
func (f IrisImageDataFormat) MimeType() string {
	return irisImageDataFormatMimeTypes[f]
}

type HorizontalOrientation int

const (
	HorizontalOrientationUndefined HorizontalOrientation = iota
	HorizontalOrientationLeftToRight
	HorizontalOrientationRightToLeft
)

//nolint:gochecknoglobals
var horizontalOrientationStrings = map[HorizontalOrientation]string{
	HorizontalOrientationUndefined:   "undefined",
	HorizontalOrientationLeftToRight: "left to right",
	HorizontalOrientationRightToLeft: "right to left",
}

func (o HorizontalOrientation) String() string { return codeString(horizontalOrientationStrings, o) }
func (o HorizontalOrientation) IsValid() bool  { return codeValid(horizontalOrientationStrings, o) }

type VerticalOrientation int

const (
	VerticalOrientationUndefined VerticalOrientation = iota
	VerticalOrientationTopToBottom
	VerticalOrientationBottomToTop
)

//nolint:gochecknoglobals
var verticalOrientationStrings = map[VerticalOrientation]string{
	VerticalOrientationUndefined:   "undefined",
	VerticalOrientationTopToBottom: "top to bottom",
	VerticalOrientationBottomToTop: "bottom to top",
}

func (o VerticalOrientation) String() string { return codeString(verticalOrientationStrings, o) }
func (o VerticalOrientation) IsValid() bool  { return codeValid(verticalOrientationStrings, o) }

type CompressionHistory int

const (
	CompressionHistoryUndefined CompressionHistory = iota
	CompressionHistoryLosslessOrNone
	CompressionHistoryLossy
)

//nolint:gochecknoglobals
var compressionHistoryStrings = map[CompressionHistory]string{
	CompressionHistoryUndefined:      "undefined",
	CompressionHistoryLosslessOrNone: "lossless or none",
	CompressionHistoryLossy:          "lossy",
}

func (h CompressionHistory) String() string { return codeString(compressionHistoryStrings, h) }
func (h CompressionHistory) IsValid() bool  { return codeValid(compressionHistoryStrings, h) }

// RangeOrError is the distance between camera and iris, either a Range
// or a RangingError.
type RangeOrError interface {
	isRangeOrError()
}

// Range is the distance between camera and iris in millimetres.
type Range int

// RangingError tells why no range is available.
type RangingError int

const (
	RangingErrorUnassigned RangingError = iota
	RangingErrorFailed
	RangingErrorOverflow
)

//nolint:gochecknoglobals
var rangingErrorStrings = map[RangingError]string{
	RangingErrorUnassigned: "unassigned",
	RangingErrorFailed:     "failed",
	RangingErrorOverflow:   "overflow",
}

func (e RangingError) String() string { return codeString(rangingErrorStrings, e) }
func (e RangingError) IsValid() bool  { return codeValid(rangingErrorStrings, e) }

func (Range) isRangeOrError()        {}
func (RangingError) isRangeOrError() {}

// IrisCaptureDevice identifies an iris capture device and its technology.
type IrisCaptureDevice struct {
	Model          RegistryID             `bdb:"0"`
	Technology     *IrisCaptureTechnology `bdb:"1,code"`
	Certifications []RegistryID           `bdb:"2,optional"`
}

type IrisCaptureTechnology int

const (
	IrisCaptureTechnologyUnknown IrisCaptureTechnology = iota
	IrisCaptureTechnologyCMOSOrCCD
)

//nolint:gochecknoglobals
var irisCaptureTechnologyStrings = map[IrisCaptureTechnology]string{
	IrisCaptureTechnologyUnknown:   "unknown",
	IrisCaptureTechnologyCMOSOrCCD: "CMOS/CCD",
}

func (t IrisCaptureTechnology) String() string { return codeString(irisCaptureTechnologyStrings, t) }
func (t IrisCaptureTechnology) IsValid() bool  { return codeValid(irisCaptureTechnologyStrings, t) }

// RollAngle is the rotation of the eye in the image.
type RollAngle struct {
	Angle       int `bdb:"0"`
	Uncertainty int `bdb:"1"`
}

// Localisation bounds the position and size of the iris in the image,
// in pixels. Absent values are -1.
type Localisation struct {
	IrisCenterXSmallest  int `bdb:"0,optional"`
	IrisCenterXLargest   int `bdb:"1,optional"`
	IrisCenterYSmallest  int `bdb:"2,optional"`
	IrisCenterYLargest   int `bdb:"3,optional"`
	IrisDiameterSmallest int `bdb:"4,optional"`
	IrisDiameterLargest  int `bdb:"5,optional"`
}

func (IrisImageDataBlock) isBlock()      {}
func (IrisImageRepresentation) isBlock() {}
func (IrisCaptureDevice) isBlock()       {}
func (RollAngle) isBlock()               {}
func (Localisation) isBlock()            {}

func init() { //nolint:gochecknoinits
	registerChoice[RangeOrError](
		alt[Range](false, 0),
		alt[RangingError](false, 1),
	)
}
