// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"cunicu.li/go-lds/cbeff"
)

// FingerImageDataBlock is the finger image data block of ISO/IEC 39794-4.
type FingerImageDataBlock struct {
	Version         Version                     `bdb:"0"`
	Representations []FingerImageRepresentation `bdb:"1"`
}

func (FingerImageDataBlock) ApplicationTag() int {
	return ApplicationTagFinger
}

// Header returns a header for fingerprints in ISO/IEC 39794-4 format.
// The subtype holds the bits common to the positions of all representations.
func (b FingerImageDataBlock) Header() *cbeff.StandardBiometricHeader {
	return cbeff.NewHeader(cbeff.BiometricTypeFingerprint, b.Subtype(), cbeff.FormatTypeISO39794Finger)
}

// Subtype returns the biometric subtype shared by all representations.
func (b FingerImageDataBlock) Subtype() cbeff.Subtype {
	if len(b.Representations) == 0 {
		return cbeff.SubtypeNone
	}

	subtype := ^cbeff.Subtype(0)
	for _, r := range b.Representations {
		subtype &= r.Position.Subtype()
	}

	return subtype
}

// FingerImageRepresentation is a single captured finger or palm image with its metadata.
type FingerImageRepresentation struct {
	Position            FingerPosition        `bdb:"0,code"`
	Impression          FingerImpression      `bdb:"1,code"`
	DataFormat          FingerImageDataFormat `bdb:"2,code"`
	Data                []byte                `bdb:"3"`
	CaptureDateTime     *DateTime             `bdb:"4"`
	CaptureDevice       *FingerCaptureDevice  `bdb:"5"`
	Qualities           []Quality             `bdb:"6,optional"`
	SpatialSamplingRate *SpatialSamplingRate  `bdb:"7"`
	PositionComputed    *bool                 `bdb:"8"`
	Rotation            *int                  `bdb:"9"`
	RotatedToVertical   *bool                 `bdb:"10"`
	LossilyCompressed   *bool                 `bdb:"11"`
	Segmentations       []Segmentation        `bdb:"12,optional"`
	Annotations         []Annotation          `bdb:"13,optional"`
	PADData             *PADData              `bdb:"14"`
	Comments            []string              `bdb:"15,optional"`
	VendorSpecificData  []ExtendedData        `bdb:"16,optional"`
}

// FingerPosition is the finger, group of fingers or palm region shown in an image.
type FingerPosition int

const (
	FingerPositionUnknown          FingerPosition = 0
	FingerPositionRightThumb       FingerPosition = 1
	FingerPositionRightIndex       FingerPosition = 2
	FingerPositionRightMiddle      FingerPosition = 3
	FingerPositionRightRing        FingerPosition = 4
	FingerPositionRightLittle      FingerPosition = 5
	FingerPositionLeftThumb        FingerPosition = 6
	FingerPositionLeftIndex        FingerPosition = 7
	FingerPositionLeftMiddle       FingerPosition = 8
	FingerPositionLeftRing         FingerPosition = 9
	FingerPositionLeftLittle       FingerPosition = 10
	FingerPositionRightFourFingers FingerPosition = 13
	FingerPositionLeftFourFingers  FingerPosition = 14
	FingerPositionBothThumbs       FingerPosition = 15
	PalmPositionUnknown            FingerPosition = 20
	PalmPositionRightFull          FingerPosition = 21
	PalmPositionRightWritersPalm   FingerPosition = 22
	PalmPositionLeftFull           FingerPosition = 23
	PalmPositionLeftWritersPalm    FingerPosition = 24
	PalmPositionRightLower         FingerPosition = 25
	PalmPositionRightUpper         FingerPosition = 26
	PalmPositionLeftLower          FingerPosition = 27
	PalmPositionLeftUpper          FingerPosition = 28
	PalmPositionRightOther         FingerPosition = 29
	PalmPositionLeftOther          FingerPosition = 30
	PalmPositionRightInterdigital  FingerPosition = 31
	PalmPositionRightThenar        FingerPosition = 32
	PalmPositionRightHypothenar    FingerPosition = 33
	PalmPositionLeftInterdigital   FingerPosition = 34
	PalmPositionLeftThenar         FingerPosition = 35
	PalmPositionLeftHypothenar     FingerPosition = 36
)

type fingerPositionInfo struct {
	name    string
	subtype cbeff.Subtype
}

//nolint:gochecknoglobals
var fingerPositions = map[FingerPosition]fingerPositionInfo{
	FingerPositionUnknown:          {"unknown finger", cbeff.SubtypeNone},
	FingerPositionRightThumb:       {"right thumb", cbeff.SubtypeRight | cbeff.SubtypeThumb},
	FingerPositionRightIndex:       {"right index finger", cbeff.SubtypeRight | cbeff.SubtypePointerFinger},
	FingerPositionRightMiddle:      {"right middle finger", cbeff.SubtypeRight | cbeff.SubtypeMiddleFinger},
	FingerPositionRightRing:        {"right ring finger", cbeff.SubtypeRight | cbeff.SubtypeRingFinger},
	FingerPositionRightLittle:      {"right little finger", cbeff.SubtypeRight | cbeff.SubtypeLittleFinger},
	FingerPositionLeftThumb:        {"left thumb", cbeff.SubtypeLeft | cbeff.SubtypeThumb},
	FingerPositionLeftIndex:        {"left index finger", cbeff.SubtypeLeft | cbeff.SubtypePointerFinger},
	FingerPositionLeftMiddle:       {"left middle finger", cbeff.SubtypeLeft | cbeff.SubtypeMiddleFinger},
	FingerPositionLeftRing:         {"left ring finger", cbeff.SubtypeLeft | cbeff.SubtypeRingFinger},
	FingerPositionLeftLittle:       {"left little finger", cbeff.SubtypeLeft | cbeff.SubtypeLittleFinger},
	FingerPositionRightFourFingers: {"right four fingers", cbeff.SubtypeRight},
	FingerPositionLeftFourFingers:  {"left four fingers", cbeff.SubtypeLeft},
	FingerPositionBothThumbs:       {"both thumbs", cbeff.SubtypeThumb},
	PalmPositionUnknown:            {"unknown palm", cbeff.SubtypeNone},
	PalmPositionRightFull:          {"right full palm", cbeff.SubtypeRight},
	PalmPositionRightWritersPalm:   {"right writer's palm", cbeff.SubtypeRight},
	PalmPositionLeftFull:           {"left full palm", cbeff.SubtypeLeft},
	PalmPositionLeftWritersPalm:    {"left writer's palm", cbeff.SubtypeLeft},
	PalmPositionRightLower:         {"right lower palm", cbeff.SubtypeRight},
	PalmPositionRightUpper:         {"right upper palm", cbeff.SubtypeRight},
	PalmPositionLeftLower:          {"left lower palm", cbeff.SubtypeLeft},
	PalmPositionLeftUpper:          {"left upper palm", cbeff.SubtypeLeft},
	PalmPositionRightOther:         {"right other palm", cbeff.SubtypeRight},
	PalmPositionLeftOther:          {"left other palm", cbeff.SubtypeLeft},
	PalmPositionRightInterdigital:  {"right interdigital", cbeff.SubtypeRight},
	PalmPositionRightThenar:        {"right thenar", cbeff.SubtypeRight},
	PalmPositionRightHypothenar:    {"right hypothenar", cbeff.SubtypeRight},
	PalmPositionLeftInterdigital:   {"left interdigital", cbeff.SubtypeLeft},
	PalmPositionLeftThenar:         {"left thenar", cbeff.SubtypeLeft},
	PalmPositionLeftHypothenar:     {"left hypothenar", cbeff.SubtypeLeft},
}

func (p FingerPosition) String() string {
	if info, ok := fingerPositions[p]; ok {
		return info.name
	}

	return codeString(nil, p)
}

func (p FingerPosition) IsValid() bool {
	_, ok := fingerPositions[p]
	return ok
}

// Subtype returns the biometric subtype bits of the position.
func (p FingerPosition) Subtype() cbeff.Subtype {
	return fingerPositions[p].subtype
}

// FingerImpression is the way a finger image was captured.
type FingerImpression int

const (
	FingerImpressionPlainContact                       FingerImpression = 0
	FingerImpressionRolledContact                      FingerImpression = 1
	FingerImpressionLatentImage                        FingerImpression = 4
	FingerImpressionSwipeContact                       FingerImpression = 8
	FingerImpressionStationarySubjectContactlessPlain  FingerImpression = 24
	FingerImpressionStationarySubjectContactlessRolled FingerImpression = 25
	FingerImpressionOther                              FingerImpression = 28
	FingerImpressionUnknown                            FingerImpression = 29
	FingerImpressionMovingSubjectContactlessPlain      FingerImpression = 41
	FingerImpressionMovingSubjectContactlessRolled     FingerImpression = 42
)

//nolint:gochecknoglobals
var fingerImpressionStrings = map[FingerImpression]string{
	FingerImpressionPlainContact:                       "plain contact",
	FingerImpressionRolledContact:                      "rolled contact",
	FingerImpressionLatentImage:                        "latent image",
	FingerImpressionSwipeContact:                       "swipe contact",
	FingerImpressionStationarySubjectContactlessPlain:  "stationary subject contactless plain",
	FingerImpressionStationarySubjectContactlessRolled: "stationary subject contactless rolled",
	FingerImpressionOther:                              "other",
	FingerImpressionUnknown:                            "unknown",
	FingerImpressionMovingSubjectContactlessPlain:      "moving subject contactless plain",
	FingerImpressionMovingSubjectContactlessRolled:     "moving subject contactless rolled",
}

func (i FingerImpression) String() string { return codeString(fingerImpressionStrings, i) }
func (i FingerImpression) IsValid() bool  { return codeValid(fingerImpressionStrings, i) }

// FingerImageDataFormat is the encoding of a finger image.
type FingerImageDataFormat int

const (
	FingerImageDataFormatPGM FingerImageDataFormat = iota
	FingerImageDataFormatWSQ
	FingerImageDataFormatJPEG2000Lossy
	FingerImageDataFormatJPEG2000Lossless
	FingerImageDataFormatPNG
)

//nolint:gochecknoglobals
var (
	fingerImageDataFormatStrings = map[FingerImageDataFormat]string{
		FingerImageDataFormatPGM:              "PGM",
		FingerImageDataFormatWSQ:              "WSQ",
		FingerImageDataFormatJPEG2000Lossy:    "JPEG 2000 lossy",
		FingerImageDataFormatJPEG2000Lossless: "JPEG 2000 lossless",
		FingerImageDataFormatPNG:              "PNG",
	}

	fingerImageDataFormatMimeTypes = map[FingerImageDataFormat]string{
		FingerImageDataFormatPGM:              "image/pgm",
		FingerImageDataFormatWSQ:              "image/x-wsq",
		FingerImageDataFormatJPEG2000Lossy:    "image/jp2",
		FingerImageDataFormatJPEG2000Lossless: "image/jp2",
		FingerImageDataFormatPNG:              "image/png",
	}
)

func (f FingerImageDataFormat) String() string { return codeString(fingerImageDataFormatStrings, f) }
func (f FingerImageDataFormat) IsValid() bool  { return codeValid(fingerImageDataFormatStrings, f) }

// MimeType returns the MIME type of images in this format.
func (f FingerImageDataFormat) MimeType() string {
	return fingerImageDataFormatMimeTypes[f]
}

// FingerCaptureDevice identifies a finger capture device and its technology.
type FingerCaptureDevice struct {
	Model          RegistryID               `bdb:"0"`
	Technology     *FingerCaptureTechnology `bdb:"1,code"`
	Certifications []RegistryID             `bdb:"2,optional"`
}

// FingerCaptureTechnology is the sensor technology of a finger capture device.
type FingerCaptureTechnology int

const (
	FingerCaptureTechnologyUnknown                      FingerCaptureTechnology = 0
	FingerCaptureTechnologyOther                        FingerCaptureTechnology = 1
	FingerCaptureTechnologyScannedInkOnPaper            FingerCaptureTechnology = 2
	FingerCaptureTechnologyOpticalTIRBrightField        FingerCaptureTechnology = 3
	FingerCaptureTechnologyOpticalTIRDarkField          FingerCaptureTechnology = 4
	FingerCaptureTechnologyOpticalImage                 FingerCaptureTechnology = 5
	FingerCaptureTechnologyOpticalLowFrequency3DMapped  FingerCaptureTechnology = 6
	FingerCaptureTechnologyOpticalHighFrequency3DMapped FingerCaptureTechnology = 7
	FingerCaptureTechnologyCapacitive                   FingerCaptureTechnology = 9
	FingerCaptureTechnologyCapacitiveRF                 FingerCaptureTechnology = 10
	FingerCaptureTechnologyElectroLuminescence          FingerCaptureTechnology = 11
	FingerCaptureTechnologyReflectedUltrasonic          FingerCaptureTechnology = 12
	FingerCaptureTechnologyImpediographicUltrasonic     FingerCaptureTechnology = 13
	FingerCaptureTechnologyThermal                      FingerCaptureTechnology = 14
	FingerCaptureTechnologyDirectPressure               FingerCaptureTechnology = 15
	FingerCaptureTechnologyIndirectPressure             FingerCaptureTechnology = 16
	FingerCaptureTechnologyLiveTape                     FingerCaptureTechnology = 17
	FingerCaptureTechnologyLatentImpression             FingerCaptureTechnology = 18
	FingerCaptureTechnologyLatentPhoto                  FingerCaptureTechnology = 19
	FingerCaptureTechnologyLatentMolded                 FingerCaptureTechnology = 20
	FingerCaptureTechnologyLatentTracing                FingerCaptureTechnology = 21
	FingerCaptureTechnologyLatentLift                   FingerCaptureTechnology = 22
)

//nolint:gochecknoglobals
var fingerCaptureTechnologyStrings = map[FingerCaptureTechnology]string{
	FingerCaptureTechnologyUnknown:                      "unknown",
	FingerCaptureTechnologyOther:                        "other",
	FingerCaptureTechnologyScannedInkOnPaper:            "scanned ink on paper",
	FingerCaptureTechnologyOpticalTIRBrightField:        "optical TIR bright field",
	FingerCaptureTechnologyOpticalTIRDarkField:          "optical TIR dark field",
	FingerCaptureTechnologyOpticalImage:                 "optical image",
	FingerCaptureTechnologyOpticalLowFrequency3DMapped:  "optical low frequency 3D mapped",
	FingerCaptureTechnologyOpticalHighFrequency3DMapped: "optical high frequency 3D mapped",
	FingerCaptureTechnologyCapacitive:                   "capacitive",
	FingerCaptureTechnologyCapacitiveRF:                 "capacitive RF",
	FingerCaptureTechnologyElectroLuminescence:          "electro luminescence",
	FingerCaptureTechnologyReflectedUltrasonic:          "reflected ultrasonic",
	FingerCaptureTechnologyImpediographicUltrasonic:     "impediographic ultrasonic",
	FingerCaptureTechnologyThermal:                      "thermal",
	FingerCaptureTechnologyDirectPressure:               "direct pressure",
	FingerCaptureTechnologyIndirectPressure:             "indirect pressure",
	FingerCaptureTechnologyLiveTape:                     "live tape",
	FingerCaptureTechnologyLatentImpression:             "latent impression",
	FingerCaptureTechnologyLatentPhoto:                  "latent photo",
	FingerCaptureTechnologyLatentMolded:                 "latent molded",
	FingerCaptureTechnologyLatentTracing:                "latent tracing",
	FingerCaptureTechnologyLatentLift:                   "latent lift",
}

func (t FingerCaptureTechnology) String() string {
	return codeString(fingerCaptureTechnologyStrings, t)
}

func (t FingerCaptureTechnology) IsValid() bool {
	return codeValid(fingerCaptureTechnologyStrings, t)
}

// SpatialSamplingRate is the resolution of a finger image.
type SpatialSamplingRate struct {
	SamplesPerUnit int                     `bdb:"0"`
	Unit           SpatialSamplingRateUnit `bdb:"1"`
}

type SpatialSamplingRateUnit int

const (
	SpatialSamplingRateUnitInch SpatialSamplingRateUnit = iota
	SpatialSamplingRateUnitCentimetre
)

//nolint:gochecknoglobals
var spatialSamplingRateUnitStrings = map[SpatialSamplingRateUnit]string{
	SpatialSamplingRateUnitInch:       "inch",
	SpatialSamplingRateUnitCentimetre: "cm",
}

func (u SpatialSamplingRateUnit) String() string {
	return codeString(spatialSamplingRateUnitStrings, u)
}

func (u SpatialSamplingRateUnit) IsValid() bool {
	return codeValid(spatialSamplingRateUnitStrings, u)
}

// Segmentation is the result of a segmentation algorithm
// run on a multi-finger image.
type Segmentation struct {
	Algorithm RegistryID `bdb:"0"`
	Segments  []Segment  `bdb:"1"`
}

// Segment locates a single finger in a multi-finger image.
type Segment struct {
	Position    FingerPosition `bdb:"0,code"`
	Coordinates []Cartesian2D  `bdb:"1"`
	Orientation *int           `bdb:"2"`
	Qualities   []Quality      `bdb:"3,optional"`
	Confidence  int            `bdb:"4,score"`
}

// Annotation explains why a finger could not be captured.
type Annotation struct {
	Position FingerPosition   `bdb:"0,code"`
	Reason   AnnotationReason `bdb:"1,code"`
}

type AnnotationReason int

const (
	AnnotationReasonUnknown AnnotationReason = iota
	AnnotationReasonOther
	AnnotationReasonAmputated
	AnnotationReasonUnableToPrint
	AnnotationReasonBandaged
	AnnotationReasonPhysicallyChallenged
	AnnotationReasonDiseased
)

//nolint:gochecknoglobals
var annotationReasonStrings = map[AnnotationReason]string{
	AnnotationReasonUnknown:              "unknown",
	AnnotationReasonOther:                "other",
	AnnotationReasonAmputated:            "amputated",
	AnnotationReasonUnableToPrint:        "unable to print",
	AnnotationReasonBandaged:             "bandaged",
	AnnotationReasonPhysicallyChallenged: "physically challenged",
	AnnotationReasonDiseased:             "diseased",
}

func (r AnnotationReason) String() string { return codeString(annotationReasonStrings, r) }
func (r AnnotationReason) IsValid() bool  { return codeValid(annotationReasonStrings, r) }

func (FingerImageDataBlock) isBlock()      {}
func (FingerImageRepresentation) isBlock() {}
func (FingerCaptureDevice) isBlock()       {}
func (SpatialSamplingRate) isBlock()       {}
func (Segmentation) isBlock()              {}
func (Segment) isBlock()                   {}
func (Annotation) isBlock()                {}
