// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"math/big"

	"cunicu.li/go-lds/cbeff"
)

// FaceImageDataBlock is the face image data block of ISO/IEC 39794-5.
type FaceImageDataBlock struct {
	Version         Version                   `bdb:"0"`
	Representations []FaceImageRepresentation `bdb:"1"`
}

func (FaceImageDataBlock) ApplicationTag() int {
	return ApplicationTagFace
}

// Header returns a header for facial features in ISO/IEC 39794-5 format.
func (FaceImageDataBlock) Header() *cbeff.StandardBiometricHeader {
	return cbeff.NewHeader(cbeff.BiometricTypeFacialFeatures, cbeff.SubtypeNone, cbeff.FormatTypeISO39794Face)
}

// FaceImageRepresentation is a single captured face image with its metadata.
type FaceImageRepresentation struct {
	ID                  *big.Int            `bdb:"0"`
	ImageRepresentation ImageRepresentation `bdb:"1"`
	CaptureDateTime     *DateTime           `bdb:"2"`
	Qualities           []Quality           `bdb:"3,optional"`
	PADData             []PADData           `bdb:"4,optional"`
	SessionID           *big.Int            `bdb:"5,optional"`
	DerivedFrom         *big.Int            `bdb:"6,optional"`
	CaptureDevice       *FaceCaptureDevice  `bdb:"7"`
	IdentityMetadata    *IdentityMetadata   `bdb:"8"`
	Landmarks           []Landmark          `bdb:"9,optional"`
}

// ImageRepresentation is the image of a face image representation.
// ImageRepresentation2D is the only alternative.
type ImageRepresentation interface {
	Block
	isImageRepresentation()
}

// ImageRepresentation2D is a two-dimensional face image.
type ImageRepresentation2D struct {
	Data          []byte             `bdb:"0"`
	Information   ImageInformation2D `bdb:"1"`
	CaptureDevice *CaptureDevice2D   `bdb:"2"`
}

func (ImageRepresentation2D) isImageRepresentation() {}

// FaceCaptureDevice identifies the model and certifications of a face capture device.
type FaceCaptureDevice struct {
	Model          *RegistryID  `bdb:"0"`
	Certifications []RegistryID `bdb:"1,optional"`
}

// CaptureDevice2D describes the device which captured a two-dimensional face image.
type CaptureDevice2D struct {
	Spectral   *Spectral                `bdb:"0"`
	Technology *FaceCaptureTechnology2D `bdb:"1,code"`
}

// Spectral describes the spectrum a face image was captured in.
type Spectral struct {
	WhiteLight   *bool `bdb:"0"`
	NearInfrared *bool `bdb:"1"`
	Thermal      *bool `bdb:"2"`
}

// FaceCaptureTechnology2D is the technology a two-dimensional face image was captured with.
type FaceCaptureTechnology2D int

const (
	FaceCaptureTechnology2DUnknown FaceCaptureTechnology2D = iota
	FaceCaptureTechnology2DStaticPhotoUnknownSource
	FaceCaptureTechnology2DStaticPhotoDigitalStillCamera
	FaceCaptureTechnology2DStaticPhotoScanner
	FaceCaptureTechnology2DVideoFrameUnknownSource
	FaceCaptureTechnology2DVideoFrameAnalogueCamera
	FaceCaptureTechnology2DVideoFrameDigitalCamera
)

//nolint:gochecknoglobals
var faceCaptureTechnology2DStrings = map[FaceCaptureTechnology2D]string{
	FaceCaptureTechnology2DUnknown:                       "unknown",
	FaceCaptureTechnology2DStaticPhotoUnknownSource:      "static photograph from unknown source",
	FaceCaptureTechnology2DStaticPhotoDigitalStillCamera: "static photograph from digital still image camera",
	FaceCaptureTechnology2DStaticPhotoScanner:            "static photograph from scanner",
	FaceCaptureTechnology2DVideoFrameUnknownSource:       "video frame from unknown source",
	FaceCaptureTechnology2DVideoFrameAnalogueCamera:      "video frame from analogue video camera",
	FaceCaptureTechnology2DVideoFrameDigitalCamera:       "video frame from digital video camera",
}

func (t FaceCaptureTechnology2D) String() string {
	return codeString(faceCaptureTechnology2DStrings, t)
}

func (t FaceCaptureTechnology2D) IsValid() bool {
	return codeValid(faceCaptureTechnology2DStrings, t)
}

// ImageInformation2D describes the encoding and geometry of a two-dimensional face image.
type ImageInformation2D struct {
	DataFormat                  FaceImageDataFormat          `bdb:"0,code"`
	Kind                        *FaceImageKind               `bdb:"1,code"`
	PostAcquisitionProcessing   *PostAcquisitionProcessing   `bdb:"2"`
	LossyTransformationAttempts *LossyTransformationAttempts `bdb:"3,code"`
	CameraToSubjectDistance     *int                         `bdb:"4"`
	SensorDiagonal              *int                         `bdb:"5"`
	LensFocalLength             *int                         `bdb:"6"`
	Size                        *ImageSize                   `bdb:"7"`
	FaceMeasurements            *FaceMeasurements            `bdb:"8"`
	ColourSpace                 *ColourSpace                 `bdb:"9,code"`
	ReferenceColourMapping      *ReferenceColourMapping      `bdb:"10"`
}

// FaceImageDataFormat is the encoding of a face image.
type FaceImageDataFormat int

const (
	FaceImageDataFormatUnknown          FaceImageDataFormat = 0
	FaceImageDataFormatJPEG             FaceImageDataFormat = 2
	FaceImageDataFormatJPEG2000Lossy    FaceImageDataFormat = 3
	FaceImageDataFormatJPEG2000Lossless FaceImageDataFormat = 4
)

//nolint:gochecknoglobals
var (
	faceImageDataFormatStrings = map[FaceImageDataFormat]string{
		FaceImageDataFormatUnknown:          "unknown",
		FaceImageDataFormatJPEG:             "JPEG",
		FaceImageDataFormatJPEG2000Lossy:    "JPEG 2000 lossy",
		FaceImageDataFormatJPEG2000Lossless: "JPEG 2000 lossless",
	}

	faceImageDataFormatMimeTypes = map[FaceImageDataFormat]string{
		FaceImageDataFormatUnknown:          "image/raw",
		FaceImageDataFormatJPEG:             "image/jpeg",
		FaceImageDataFormatJPEG2000Lossy:    "image/jp2",
		FaceImageDataFormatJPEG2000Lossless: "image/jp2",
	}
)

func (f FaceImageDataFormat) String() string {
	return codeString(faceImageDataFormatStrings, f)
}

func (f FaceImageDataFormat) IsValid() bool {
	return codeValid(faceImageDataFormatStrings, f)
}

// MimeType returns the MIME type of images in this format.
func (f FaceImageDataFormat) MimeType() string {
	return faceImageDataFormatMimeTypes[f]
}

// FaceImageKind is the intended use of a face image.
type FaceImageKind int

const (
	FaceImageKindMRTD FaceImageKind = iota
	FaceImageKindGeneralPurpose
)

//nolint:gochecknoglobals
var faceImageKindStrings = map[FaceImageKind]string{
	FaceImageKindMRTD:           "MRTD",
	FaceImageKindGeneralPurpose: "general purpose",
}

func (k FaceImageKind) String() string { return codeString(faceImageKindStrings, k) }
func (k FaceImageKind) IsValid() bool  { return codeValid(faceImageKindStrings, k) }

// PostAcquisitionProcessing lists the processing applied after capture.
type PostAcquisitionProcessing struct {
	Rotated                  *bool `bdb:"0"`
	Cropped                  *bool `bdb:"1"`
	DownSampled              *bool `bdb:"2"`
	WhiteBalanceAdjusted     *bool `bdb:"3"`
	MultiplyCompressed       *bool `bdb:"4"`
	Interpolated             *bool `bdb:"5"`
	ContrastStretched        *bool `bdb:"6"`
	PoseCorrected            *bool `bdb:"7"`
	MultiViewImage           *bool `bdb:"8"`
	AgeProgressed            *bool `bdb:"9"`
	SuperResolutionProcessed *bool `bdb:"10"`
	Normalised               *bool `bdb:"11"`
}

// LossyTransformationAttempts counts the lossy transformations applied to an image.
type LossyTransformationAttempts int

const (
	LossyTransformationAttemptsUnknown LossyTransformationAttempts = iota
	LossyTransformationAttemptsZero
	LossyTransformationAttemptsOne
	LossyTransformationAttemptsMoreThanOne
)

//nolint:gochecknoglobals
var lossyTransformationAttemptsStrings = map[LossyTransformationAttempts]string{
	LossyTransformationAttemptsUnknown:     "unknown",
	LossyTransformationAttemptsZero:        "zero",
	LossyTransformationAttemptsOne:         "one",
	LossyTransformationAttemptsMoreThanOne: "more than one",
}

func (a LossyTransformationAttempts) String() string {
	return codeString(lossyTransformationAttemptsStrings, a)
}

func (a LossyTransformationAttempts) IsValid() bool {
	return codeValid(lossyTransformationAttemptsStrings, a)
}

// ImageSize is the size of an image in pixels.
type ImageSize struct {
	Width  int `bdb:"0"`
	Height int `bdb:"1"`
}

// FaceMeasurements are distances on the face, in pixels.
type FaceMeasurements struct {
	HeadWidth          *big.Int `bdb:"0,optional"`
	InterEyeDistance   *big.Int `bdb:"1,optional"`
	EyeToMouthDistance *big.Int `bdb:"2,optional"`
	HeadLength         *big.Int `bdb:"3,optional"`
}

// ColourSpace is the colour space of a face image.
type ColourSpace int

const (
	ColourSpaceUnknown ColourSpace = iota
	ColourSpaceOther
	ColourSpaceRGB24Bit
	ColourSpaceRGB48Bit
	ColourSpaceYUV422
	ColourSpaceGreyscale8Bit
	ColourSpaceGreyscale16Bit
)

//nolint:gochecknoglobals
var colourSpaceStrings = map[ColourSpace]string{
	ColourSpaceUnknown:        "unknown",
	ColourSpaceOther:          "other",
	ColourSpaceRGB24Bit:       "RGB 24 bit",
	ColourSpaceRGB48Bit:       "RGB 48 bit",
	ColourSpaceYUV422:         "YUV 422",
	ColourSpaceGreyscale8Bit:  "greyscale 8 bit",
	ColourSpaceGreyscale16Bit: "greyscale 16 bit",
}

func (c ColourSpace) String() string { return codeString(colourSpaceStrings, c) }
func (c ColourSpace) IsValid() bool  { return codeValid(colourSpaceStrings, c) }

// ReferenceColourMapping maps reference colours to their captured values.
type ReferenceColourMapping struct {
	Schema      []byte                      `bdb:"0,optional"`
	Definitions []ReferenceColourDefinition `bdb:"1,optional"`
}

// ReferenceColourDefinition is a single reference colour and its captured value.
type ReferenceColourDefinition struct {
	Definition []byte `bdb:"0,optional"`
	Value      []byte `bdb:"1,optional"`
}

func (FaceImageDataBlock) isBlock()        {}
func (FaceImageRepresentation) isBlock()   {}
func (ImageRepresentation2D) isBlock()     {}
func (FaceCaptureDevice) isBlock()         {}
func (CaptureDevice2D) isBlock()           {}
func (Spectral) isBlock()                  {}
func (ImageInformation2D) isBlock()        {}
func (PostAcquisitionProcessing) isBlock() {}
func (ImageSize) isBlock()                 {}
func (FaceMeasurements) isBlock()          {}
func (ReferenceColourMapping) isBlock()    {}
func (ReferenceColourDefinition) isBlock() {}

func init() { //nolint:gochecknoinits
	registerChoice[ImageRepresentation](
		alt[ImageRepresentation2D](false, 0, 0),
	)
}
