// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

// IdentityMetadata describes the subject shown in a face image.
type IdentityMetadata struct {
	Gender     *Gender     `bdb:"0,code"`
	EyeColour  *EyeColour  `bdb:"1,code"`
	HairColour *HairColour `bdb:"2,code"`
	Height     int         `bdb:"3,optional"`
	Properties *Properties `bdb:"4"`
	Expression *Expression `bdb:"5"`
	PoseAngle  *PoseAngle  `bdb:"6"`
}

type Gender int

const (
	GenderUnknown Gender = iota
	GenderOther
	GenderMale
	GenderFemale
)

//nolint:gochecknoglobals
var genderStrings = map[Gender]string{
	GenderUnknown: "unknown",
	GenderOther:   "other",
	GenderMale:    "male",
	GenderFemale:  "female",
}

func (g Gender) String() string { return codeString(genderStrings, g) }
func (g Gender) IsValid() bool  { return codeValid(genderStrings, g) }

type EyeColour int

const (
	EyeColourUnknown EyeColour = iota
	EyeColourOther
	EyeColourBlack
	EyeColourBlue
	EyeColourBrown
	EyeColourGrey
	EyeColourGreen
	EyeColourHazel
	EyeColourMultiColoured
	EyeColourPink
)

//nolint:gochecknoglobals
var eyeColourStrings = map[EyeColour]string{
	EyeColourUnknown:       "unknown",
	EyeColourOther:         "other",
	EyeColourBlack:         "black",
	EyeColourBlue:          "blue",
	EyeColourBrown:         "brown",
	EyeColourGrey:          "grey",
	EyeColourGreen:         "green",
	EyeColourHazel:         "hazel",
	EyeColourMultiColoured: "multi-coloured",
	EyeColourPink:          "pink",
}

func (c EyeColour) String() string { return codeString(eyeColourStrings, c) }
func (c EyeColour) IsValid() bool  { return codeValid(eyeColourStrings, c) }

type HairColour int

const (
	HairColourUnknown HairColour = iota
	HairColourOther
	HairColourBald
	HairColourBlack
	HairColourBlonde
	HairColourBrown
	HairColourGrey
	HairColourWhite
	HairColourRed
	HairColourKnownColoured
)

//nolint:gochecknoglobals
var hairColourStrings = map[HairColour]string{
	HairColourUnknown:       "unknown",
	HairColourOther:         "other",
	HairColourBald:          "bald",
	HairColourBlack:         "black",
	HairColourBlonde:        "blonde",
	HairColourBrown:         "brown",
	HairColourGrey:          "grey",
	HairColourWhite:         "white",
	HairColourRed:           "red",
	HairColourKnownColoured: "known coloured",
}

func (c HairColour) String() string { return codeString(hairColourStrings, c) }
func (c HairColour) IsValid() bool  { return codeValid(hairColourStrings, c) }

// Properties are visible properties of the subject.
type Properties struct {
	Glasses               *bool `bdb:"0"`
	Moustache             *bool `bdb:"1"`
	Beard                 *bool `bdb:"2"`
	TeethVisible          *bool `bdb:"3"`
	PupilOrIrisNotVisible *bool `bdb:"4"`
	MouthOpen             *bool `bdb:"5"`
	LeftEyePatch          *bool `bdb:"6"`
	RightEyePatch         *bool `bdb:"7"`
	DarkGlasses           *bool `bdb:"8"`
	BiometricAbsent       *bool `bdb:"9"`
	HeadCoveringsPresent  *bool `bdb:"10"`
}

// Expression is the facial expression of the subject.
type Expression struct {
	Neutral         *bool `bdb:"0"`
	Smile           *bool `bdb:"1"`
	RaisedEyebrows  *bool `bdb:"2"`
	EyesLookingAway *bool `bdb:"3"`
	Squinting       *bool `bdb:"4"`
	Frowning        *bool `bdb:"5"`
}

// PoseAngle is the orientation of the head in degrees.
type PoseAngle struct {
	Yaw   *AngleData `bdb:"0"`
	Pitch *AngleData `bdb:"1"`
	Roll  *AngleData `bdb:"2"`
}

// AngleData is an angle and its uncertainty, which is -1 if absent.
type AngleData struct {
	Value       int `bdb:"0"`
	Uncertainty int `bdb:"1,optional"`
}

func (IdentityMetadata) isBlock() {}
func (Properties) isBlock()       {}
func (Expression) isBlock()       {}
func (PoseAngle) isBlock()        {}
func (AngleData) isBlock()        {}
