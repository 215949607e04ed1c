// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import "fmt"

// Landmark is a named point on the face and optionally its coordinates.
type Landmark struct {
	Kind        LandmarkKind        `bdb:"0"`
	Coordinates LandmarkCoordinates `bdb:"1,optional"`
}

// LandmarkKind identifies a landmark. It is either an MPEG4FeaturePoint,
// an AnthropometricLandmarkName, an AnthropometricLandmarkPointName or
// an AnthropometricLandmarkPointID.
type LandmarkKind interface {
	fmt.Stringer
	isLandmarkKind()
}

// LandmarkCoordinates locates a landmark. It is either a Cartesian2D,
// a TextureImage or a Cartesian3D point.
type LandmarkCoordinates interface {
	Block
	isLandmarkCoordinates()
}

func (Cartesian2D) isLandmarkCoordinates()  {}
func (TextureImage) isLandmarkCoordinates() {}
func (Cartesian3D) isLandmarkCoordinates()  {}

// MPEG4FeaturePoint is a feature point of the MPEG-4 face model,
// numbered consecutively over all groups starting at group 2.
type MPEG4FeaturePoint int

//nolint:gochecknoglobals
var mpeg4GroupSizes = [...]int{
	2:  14,
	3:  14,
	4:  6,
	5:  4,
	6:  4,
	7:  1,
	8:  10,
	9:  15,
	10: 10,
	11: 6,
	12: 4,
}

// NewMPEG4FeaturePoint returns the feature point with the given
// one-based index in its group.
func NewMPEG4FeaturePoint(group, index int) (MPEG4FeaturePoint, error) {
	if group < 2 || group >= len(mpeg4GroupSizes) || index < 1 || index > mpeg4GroupSizes[group] {
		return Unrecognized, fmt.Errorf("%w: MPEG4 feature point %d.%d", errUnknownChoice, group, index)
	}

	code := index - 1
	for g := 2; g < group; g++ {
		code += mpeg4GroupSizes[g]
	}

	return MPEG4FeaturePoint(code), nil
}

// Group returns the group and one-based index of the feature point.
func (p MPEG4FeaturePoint) Group() (group, index int) {
	code := int(p)
	if code < 0 {
		return 0, 0
	}

	for g := 2; g < len(mpeg4GroupSizes); g++ {
		if code < mpeg4GroupSizes[g] {
			return g, code + 1
		}
		code -= mpeg4GroupSizes[g]
	}

	return 0, 0
}

func (p MPEG4FeaturePoint) IsValid() bool {
	g, _ := p.Group()
	return g != 0
}

func (p MPEG4FeaturePoint) String() string {
	g, i := p.Group()
	if g == 0 {
		return codeString(nil, p)
	}

	return fmt.Sprintf("MPEG4 %d.%d", g, i)
}

// AnthropometricLandmarkName is a landmark named after ISO/IEC 39794-5.
type AnthropometricLandmarkName int

const (
	AnthropometricVertex AnthropometricLandmarkName = iota
	AnthropometricGlabella
	AnthropometricOpisthocranion
	AnthropometricEurionLeft
	AnthropometricEurionRight
	AnthropometricFrontotemporaleLeft
	AnthropometricFrontotemporaleRight
	AnthropometricTrichion
	AnthropometricZygionLeft
	AnthropometricZygionRight
	AnthropometricGonionLeft
	AnthropometricGonionRight
	AnthropometricSublabiale
	AnthropometricPogonion
	AnthropometricMenton
	AnthropometricCondylionLateraleLeft
	AnthropometricCondylionLateraleRight
	AnthropometricEndocanthionLeft
	AnthropometricEndocanthionRight
	AnthropometricExocanthionLeft
	AnthropometricExocanthionRight
	AnthropometricCenterPointOfPupilLeft
	AnthropometricCenterPointOfPupilRight
	AnthropometricOrbitaleLeft
	AnthropometricOrbitaleRight
	AnthropometricPalpebraleSuperiusLeft
	AnthropometricPalpebraleSuperiusRight
	AnthropometricPalpebraleInferiusLeft
	AnthropometricPalpebraleInferiusRight
	AnthropometricOrbitaleSuperiusLeft
	AnthropometricOrbitaleSuperiusRight
	AnthropometricSuperciliareLeft
	AnthropometricSuperciliareRight
	AnthropometricNasion
	AnthropometricSellion
	AnthropometricAlareLeft
	AnthropometricAlareRight
	AnthropometricPronasale
	AnthropometricSubnasale
	AnthropometricSubalare
	AnthropometricAlarCurvatureLeft
	AnthropometricAlarCurvatureRight
	AnthropometricMaxillofrontale
	AnthropometricChristaPhiltraLandmarkLeft
	AnthropometricChristaPhiltraLandmarkRight
	AnthropometricLabialeSuperius
	AnthropometricLabialeInferius
	AnthropometricCheilionLeft
	AnthropometricCheilionRight
	AnthropometricStomion
	AnthropometricSuperauraleLeft
	AnthropometricSuperauraleRight
	AnthropometricSubauraleLeft
	AnthropometricSubauraleRight
	AnthropometricPreaurale
	AnthropometricPostaurale
	AnthropometricOtobasionSuperiusLeft
	AnthropometricOtobasionSuperiusRight
	AnthropometricOtobasionInferius
	AnthropometricPorion
	AnthropometricTragion
)

//nolint:gochecknoglobals
var anthropometricLandmarkNames = []string{
	"vertex", "glabella", "opisthocranion", "eurion left", "eurion right",
	"frontotemporale left", "frontotemporale right", "trichion", "zygion left", "zygion right",
	"gonion left", "gonion right", "sublabiale", "pogonion", "menton",
	"condylion laterale left", "condylion laterale right", "endocanthion left", "endocanthion right", "exocanthion left",
	"exocanthion right", "center point of pupil left", "center point of pupil right", "orbitale left", "orbitale right",
	"palpebrale superius left", "palpebrale superius right", "palpebrale inferius left", "palpebrale inferius right", "orbitale superius left",
	"orbitale superius right", "superciliare left", "superciliare right", "nasion", "sellion",
	"alare left", "alare right", "pronasale", "subnasale", "subalare",
	"alar curvature left", "alar curvature right", "maxillofrontale", "christa philtra landmark left", "christa philtra landmark right",
	"labiale superius", "labiale inferius", "cheilion left", "cheilion right", "stomion",
	"superaurale left", "superaurale right", "subaurale left", "subaurale right", "preaurale",
	"postaurale", "otobasion superius left", "otobasion superius right", "otobasion inferius", "porion",
	"tragion",
}

func (n AnthropometricLandmarkName) IsValid() bool {
	return n >= AnthropometricVertex && n <= AnthropometricTragion
}

func (n AnthropometricLandmarkName) String() string {
	if !n.IsValid() {
		return codeString(nil, n)
	}

	return anthropometricLandmarkNames[n]
}

// AnthropometricLandmarkPointName is a landmark named by its number in
// ISO/IEC 39794-5, for example "3.12".
type AnthropometricLandmarkPointName int

//nolint:gochecknoglobals
var anthropometricPointNames = []string{
	"1.1", "1.2", "1.5", "1.6", "1.7", "1.8", "1.9",
	"2.1", "2.2", "2.3", "2.4", "2.5", "2.6", "2.7", "2.9", "2.10",
	"3.1", "3.2", "3.3", "3.4", "3.5", "3.6", "3.7", "3.8", "3.9", "3.10", "3.11", "3.12",
	"4.1", "4.2", "4.3", "4.4",
	"5.1", "5.2", "5.3", "5.4", "5.6",
}

// AnthropometricLandmarkPointNameFromString looks up a point by its number.
func AnthropometricLandmarkPointNameFromString(s string) AnthropometricLandmarkPointName {
	for i, name := range anthropometricPointNames {
		if name == s {
			return AnthropometricLandmarkPointName(i)
		}
	}

	return Unrecognized
}

func (n AnthropometricLandmarkPointName) IsValid() bool {
	return n >= 0 && int(n) < len(anthropometricPointNames)
}

func (n AnthropometricLandmarkPointName) String() string {
	if !n.IsValid() {
		return codeString(nil, n)
	}

	return anthropometricPointNames[n]
}

// AnthropometricLandmarkPointID is a landmark named by its abbreviation
// in ISO/IEC 39794-5, for example "en_left".
type AnthropometricLandmarkPointID int

//nolint:gochecknoglobals
var anthropometricPointIDs = []string{
	"v", "g", "op", "eu_left", "eu_right", "ft_left", "ft_right", "tr", "zy_left", "zy_right",
	"go_left", "go_right", "sl", "pg", "gn", "cdl_left", "cdl_right", "en_left", "en_right", "ex_left",
	"ex_right", "p_left", "p_right", "or_left", "or_right", "ps_left", "ps_right", "pi_left", "pi_right", "os_left",
	"os_right", "sci_left", "sci_right", "n", "se", "al_left", "al_right", "prn", "sn", "sbal",
	"ac_left", "ac_right", "mf_left", "mf_right", "cph_left", "cph_right", "ls", "li", "ch_left", "ch_right",
	"sto", "sa_left", "sa_right", "sba_left", "sba_right", "pra_left", "pra_right", "pa", "obs_left", "obs_right",
	"obi", "po", "t",
}

func (id AnthropometricLandmarkPointID) IsValid() bool {
	return id >= 0 && int(id) < len(anthropometricPointIDs)
}

func (id AnthropometricLandmarkPointID) String() string {
	if !id.IsValid() {
		return codeString(nil, id)
	}

	return anthropometricPointIDs[id]
}

func (MPEG4FeaturePoint) isLandmarkKind()               {}
func (AnthropometricLandmarkName) isLandmarkKind()      {}
func (AnthropometricLandmarkPointName) isLandmarkKind() {}
func (AnthropometricLandmarkPointID) isLandmarkKind()   {}

func (Landmark) isBlock() {}

func init() { //nolint:gochecknoinits
	registerChoice[LandmarkKind](
		alt[MPEG4FeaturePoint](true, 0, 0),
		alt[AnthropometricLandmarkName](true, 0, 1, 0, 0),
		alt[AnthropometricLandmarkPointName](true, 0, 1, 0, 1),
		alt[AnthropometricLandmarkPointID](true, 0, 1, 0, 2),
	)

	registerChoice[LandmarkCoordinates](
		alt[Cartesian2D](false, 0, 0),
		alt[TextureImage](false, 0, 1),
		alt[Cartesian3D](false, 0, 2),
	)
}
