// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"fmt"
	"reflect"

	"cunicu.li/go-lds/encoding/der"
)

// ScoreError is the score of a quality or PAD assessment which failed.
const ScoreError = -1

// DecodeCodeChoice reads a code from a CHOICE{base [0], extensionBlock [1]}.
//
// The base alternative is preferred. For an extension block the code under
// its first element is used as fallback. ok is false if neither is present.
func DecodeCodeChoice(d *der.Decoder, v *der.Value) (code int, ok bool, err error) {
	t, err := d.TaggedChildren(v)
	if err != nil {
		return 0, false, err
	}

	if base, ok := t[0]; ok {
		code, err := der.DecodeInt(base)
		return code, err == nil, err
	}

	if ext, ok := t[1]; ok {
		et, err := d.TaggedChildren(ext)
		if err != nil {
			return 0, false, err
		}

		if fallback, ok := et[0]; ok {
			code, err := der.DecodeInt(fallback)
			return code, err == nil, err
		}
	}

	return 0, false, nil
}

// EncodeCodeChoice writes code as base alternative of a CHOICE.
func EncodeCodeChoice(code int) *der.Value {
	return der.EncodeTaggedChildren(der.Tagged{
		0: der.EncodeInt(code),
	})
}

// DecodeScore reads a CHOICE{score [0], error [1]}.
// Anything but a score yields ScoreError.
func DecodeScore(d *der.Decoder, v *der.Value) (int, error) {
	t, err := d.TaggedChildren(v)
	if err != nil {
		return 0, err
	}

	if score, ok := t[0]; ok {
		return der.DecodeInt(score)
	}

	return ScoreError, nil
}

// EncodeScore writes a score between 0 and 100, or the failure to assess
// for ScoreError.
func EncodeScore(score int) (*der.Value, error) {
	switch {
	case score == ScoreError:
		return der.EncodeTaggedChildren(der.Tagged{
			1: der.EncodeTaggedChildren(der.Tagged{
				0: der.Null(),
			}),
		}), nil

	case score < 0 || score > 100:
		return nil, fmt.Errorf("%w: %d", errScoreRange, score)

	default:
		return der.EncodeTaggedChildren(der.Tagged{
			0: der.EncodeInt(score),
		}), nil
	}
}

// alternative is one concrete type of a CHOICE, reached through a path of
// nested context tags.
type alternative struct {
	path []int
	typ  reflect.Type
	code bool
}

type choice struct {
	name string
	alts []alternative
}

//nolint:gochecknoglobals
var choices = map[reflect.Type]*choice{}

// registerChoice maps the implementations of interface I to their tag paths.
// Alternatives are tried in the given order when decoding.
func registerChoice[I any](alts ...alternative) {
	typ := reflect.TypeFor[I]()

	for _, alt := range alts {
		if !alt.typ.Implements(typ) {
			panic(fmt.Sprintf("%s does not implement %s", alt.typ, typ))
		}
	}

	choices[typ] = &choice{
		name: typ.Name(),
		alts: alts,
	}
}

// alt declares T as alternative at path. With code set, an integer
// alternative is itself a CHOICE with extension block.
func alt[T any](code bool, path ...int) alternative {
	return alternative{
		path: path,
		typ:  reflect.TypeFor[T](),
		code: code,
	}
}

func (c *choice) encode(v reflect.Value) (*der.Value, error) {
	for _, a := range c.alts {
		if a.typ != v.Type() {
			continue
		}

		val, err := a.encodeLeaf(v)
		if err != nil {
			return nil, err
		}

		for i := len(a.path) - 1; i >= 0; i-- {
			val = der.Sequence(der.ContextTagged(a.path[i], val))
		}

		return val, nil
	}

	return nil, fmt.Errorf("%w: %s for %s", errUnknownChoice, v.Type(), c.name)
}

// decode returns the zero Value if no known alternative is present.
func (c *choice) decode(d *der.Decoder, v *der.Value) (reflect.Value, error) {
	for _, a := range c.alts {
		leaf, ok := follow(d, v, a.path)
		if !ok {
			continue
		}

		return a.decodeLeaf(d, leaf)
	}

	// A bare integer in place of the choice is read as its first plain
	// integer alternative.
	if v.IsOctetString() {
		for _, a := range c.alts {
			if a.typ.Kind() == reflect.Struct || a.code {
				continue
			}

			d.Report(der.AnomalyTagMismatch, "integer in place of choice", "choice", c.name, "alternative", a.typ.Name())

			return a.decodeLeaf(d, v)
		}
	}

	return reflect.Value{}, nil
}

func follow(d *der.Decoder, v *der.Value, path []int) (*der.Value, bool) {
	for _, tag := range path {
		t, err := d.TaggedChildren(v)
		if err != nil {
			return nil, false
		}

		if v = t[tag]; v == nil {
			return nil, false
		}
	}

	return v, true
}

func (a *alternative) encodeLeaf(v reflect.Value) (*der.Value, error) {
	if a.typ.Kind() == reflect.Struct {
		return encodeStruct(v)
	}

	n := int(v.Int())
	if n < 0 && a.typ.Implements(typeEnum) {
		return nil, fmt.Errorf("%w: %s", errUnencodableEnum, a.typ.Name())
	}

	if a.code {
		return EncodeCodeChoice(n), nil
	}

	return der.EncodeInt(n), nil
}

func (a *alternative) decodeLeaf(d *der.Decoder, v *der.Value) (reflect.Value, error) {
	out := reflect.New(a.typ).Elem()

	if a.typ.Kind() == reflect.Struct {
		if err := decodeStruct(d, v, out); err != nil {
			return reflect.Value{}, err
		}

		return out, nil
	}

	return decodeEnum(d, v, a.typ, a.code)
}
