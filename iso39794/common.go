// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"math/big"
	"time"
)

// Version is the generation and year of the ISO/IEC 39794 part a data block conforms to.
type Version struct {
	Generation int `bdb:"0"`
	Year       int `bdb:"1"`
}

// RegistryID identifies an organization and an item registered by it.
type RegistryID struct {
	Organization int `bdb:"0"`
	ID           int `bdb:"1"`
}

// DateTime is a point in time with optional components.
// Absent components are -1.
type DateTime struct {
	Year        int `bdb:"0"`
	Month       int `bdb:"1,optional"`
	Day         int `bdb:"2,optional"`
	Hour        int `bdb:"3,optional"`
	Minute      int `bdb:"4,optional"`
	Second      int `bdb:"5,optional"`
	Millisecond int `bdb:"6,optional"`
}

// NewDateTime returns a DateTime with all components of t in UTC.
func NewDateTime(t time.Time) DateTime {
	t = t.UTC()

	return DateTime{
		Year:        t.Year(),
		Month:       int(t.Month()),
		Day:         t.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}
}

// Time converts the date to a time in UTC. Absent components
// take their lowest value.
func (dt DateTime) Time() time.Time {
	lowest := func(v, def int) int {
		if v < 0 {
			return def
		}
		return v
	}

	return time.Date(dt.Year,
		time.Month(lowest(dt.Month, 1)),
		lowest(dt.Day, 1),
		lowest(dt.Hour, 0),
		lowest(dt.Minute, 0),
		lowest(dt.Second, 0),
		lowest(dt.Millisecond, 0)*int(time.Millisecond),
		time.UTC)
}

// Quality is the result of a quality assessment algorithm.
// A Score of ScoreError indicates a failure to assess.
type Quality struct {
	Algorithm RegistryID `bdb:"0"`
	Score     int        `bdb:"1,score"`
}

// PADScore is the result of a presentation attack detection mechanism.
type PADScore struct {
	Mechanism RegistryID `bdb:"0"`
	Score     int        `bdb:"1,score"`
}

// ExtendedData is vendor or application specific data.
type ExtendedData struct {
	Type RegistryID `bdb:"0"`
	Data []byte     `bdb:"1"`
}

// PADDecision is the outcome of presentation attack detection.
type PADDecision int

const (
	PADDecisionNoAttack PADDecision = iota
	PADDecisionAttack
	PADDecisionFailureToAssess
)

//nolint:gochecknoglobals
var padDecisionStrings = map[PADDecision]string{
	PADDecisionNoAttack:        "no attack",
	PADDecisionAttack:          "attack",
	PADDecisionFailureToAssess: "failure to assess",
}

func (d PADDecision) String() string { return codeString(padDecisionStrings, d) }
func (d PADDecision) IsValid() bool  { return codeValid(padDecisionStrings, d) }

// PADCaptureContext is the context in which presentation attack detection took place.
type PADCaptureContext int

const (
	PADCaptureContextEnrolment PADCaptureContext = iota
	PADCaptureContextVerification
	PADCaptureContextIdentification
)

//nolint:gochecknoglobals
var padCaptureContextStrings = map[PADCaptureContext]string{
	PADCaptureContextEnrolment:      "enrolment",
	PADCaptureContextVerification:   "verification",
	PADCaptureContextIdentification: "identification",
}

func (c PADCaptureContext) String() string { return codeString(padCaptureContextStrings, c) }
func (c PADCaptureContext) IsValid() bool  { return codeValid(padCaptureContextStrings, c) }

// PADSupervisionLevel describes how the capture was supervised.
type PADSupervisionLevel int

const (
	PADSupervisionLevelUnknown PADSupervisionLevel = iota
	PADSupervisionLevelControlled
	PADSupervisionLevelAssisted
	PADSupervisionLevelObserved
	PADSupervisionLevelUnattended
)

//nolint:gochecknoglobals
var padSupervisionLevelStrings = map[PADSupervisionLevel]string{
	PADSupervisionLevelUnknown:    "unknown",
	PADSupervisionLevelControlled: "controlled",
	PADSupervisionLevelAssisted:   "assisted",
	PADSupervisionLevelObserved:   "observed",
	PADSupervisionLevelUnattended: "unattended",
}

func (l PADSupervisionLevel) String() string { return codeString(padSupervisionLevelStrings, l) }
func (l PADSupervisionLevel) IsValid() bool  { return codeValid(padSupervisionLevelStrings, l) }

// PADCriteriaCategory is the category of criteria used for presentation attack detection.
type PADCriteriaCategory int

const (
	PADCriteriaCategoryUnknown PADCriteriaCategory = iota
	PADCriteriaCategoryIndividual
	PADCriteriaCategoryCommon
)

//nolint:gochecknoglobals
var padCriteriaCategoryStrings = map[PADCriteriaCategory]string{
	PADCriteriaCategoryUnknown:    "unknown",
	PADCriteriaCategoryIndividual: "individual",
	PADCriteriaCategoryCommon:     "common",
}

func (c PADCriteriaCategory) String() string { return codeString(padCriteriaCategoryStrings, c) }
func (c PADCriteriaCategory) IsValid() bool  { return codeValid(padCriteriaCategoryStrings, c) }

// PADData holds the results of presentation attack detection.
type PADData struct {
	Decision         *PADDecision         `bdb:"0,code"`
	Scores           []PADScore           `bdb:"1,optional"`
	ExtendedData     []ExtendedData       `bdb:"2,optional"`
	CaptureContext   *PADCaptureContext   `bdb:"3,code"`
	SupervisionLevel *PADSupervisionLevel `bdb:"4,code"`
	RiskLevel        int                  `bdb:"5,optional"`
	CriteriaCategory *PADCriteriaCategory `bdb:"6,code"`
	Parameter        []byte               `bdb:"7,optional"`
	Challenges       [][]byte             `bdb:"8,optional"`
	CaptureDateTime  *DateTime            `bdb:"9"`
}

// Cartesian2D is a point in an image, in pixels.
type Cartesian2D struct {
	X int `bdb:"0"`
	Y int `bdb:"1"`
}

// Cartesian3D is a point in a three dimensional coordinate system.
type Cartesian3D struct {
	X int `bdb:"0"`
	Y int `bdb:"1"`
	Z int `bdb:"2"`
}

// TextureImage is a point in texture image coordinates.
type TextureImage struct {
	U *big.Int `bdb:"0"`
	V *big.Int `bdb:"1"`
}

func (Version) isBlock()      {}
func (RegistryID) isBlock()   {}
func (DateTime) isBlock()     {}
func (Quality) isBlock()      {}
func (PADScore) isBlock()     {}
func (ExtendedData) isBlock() {}
func (PADData) isBlock()      {}
func (Cartesian2D) isBlock()  {}
func (Cartesian3D) isBlock()  {}
func (TextureImage) isBlock() {}
