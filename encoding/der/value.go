// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

// Package der implements the tagged-object layer used by the ISO/IEC 39794
// biometric schemas: a generic DER value tree, conversions between a sequence
// of context-tagged children and a map keyed by tag number, and the scalar
// conventions (integers and booleans carried in octet strings) of those schemas.
package der

import (
	"fmt"
	"slices"
)

// Class is the class of an ASN.1 tag.
type Class uint8

// Tag classes as encoded in bits 8 and 7 of the identifier octet.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

//nolint:gochecknoglobals
var classStrings = map[Class]string{
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT",
	ClassPrivate:         "PRIVATE",
}

func (c Class) String() string {
	if s, ok := classStrings[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// Universal tag numbers used by the biometric schemas.
const (
	TagBoolean       = 0x01
	TagOctetString   = 0x04
	TagNull          = 0x05
	TagSequence      = 0x10
	TagVisibleString = 0x1a
)

// Value is a single decoded ASN.1 value.
//
// Primitive values hold their content octets in Bytes, constructed values
// hold their decoded elements in Children.
type Value struct {
	Class       Class
	Tag         int
	Constructed bool
	Bytes       []byte
	Children    []*Value
}

// IsSequence reports whether v is a universal SEQUENCE.
func (v *Value) IsSequence() bool {
	return v != nil && v.Class == ClassUniversal && v.Tag == TagSequence && v.Constructed
}

// IsOctetString reports whether v is a universal primitive OCTET STRING.
func (v *Value) IsOctetString() bool {
	return v != nil && v.Class == ClassUniversal && v.Tag == TagOctetString && !v.Constructed
}

// IsBoolean reports whether v is a universal BOOLEAN.
func (v *Value) IsBoolean() bool {
	return v != nil && v.Class == ClassUniversal && v.Tag == TagBoolean && !v.Constructed
}

// IsTagged reports whether v carries a non-universal tag.
func (v *Value) IsTagged() bool {
	return v != nil && v.Class != ClassUniversal
}

func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}

	form := "primitive"
	if v.Constructed {
		form = "constructed"
	}

	return fmt.Sprintf("[%s %d] %s", v.Class, v.Tag, form)
}

// Sequence returns a SEQUENCE holding the given elements.
func Sequence(children ...*Value) *Value {
	return &Value{
		Class:       ClassUniversal,
		Tag:         TagSequence,
		Constructed: true,
		Children:    children,
	}
}

// OctetString returns an OCTET STRING holding a copy of b.
func OctetString(b []byte) *Value {
	return &Value{
		Class: ClassUniversal,
		Tag:   TagOctetString,
		Bytes: append([]byte{}, b...),
	}
}

// Boolean returns an ASN.1 BOOLEAN.
func Boolean(b bool) *Value {
	v := byte(0x00)
	if b {
		v = 0xff
	}

	return &Value{
		Class: ClassUniversal,
		Tag:   TagBoolean,
		Bytes: []byte{v},
	}
}

// Null returns an ASN.1 NULL.
func Null() *Value {
	return &Value{
		Class: ClassUniversal,
		Tag:   TagNull,
		Bytes: []byte{},
	}
}

// VisibleString returns a VisibleString holding s.
func VisibleString(s string) *Value {
	return &Value{
		Class: ClassUniversal,
		Tag:   TagVisibleString,
		Bytes: []byte(s),
	}
}

// Implicit replaces the tag of v, keeping its form and content.
func Implicit(class Class, number int, v *Value) *Value {
	return &Value{
		Class:       class,
		Tag:         number,
		Constructed: v.Constructed,
		Bytes:       v.Bytes,
		Children:    v.Children,
	}
}

// Explicit wraps v in a constructed value with the given tag.
func Explicit(class Class, number int, v *Value) *Value {
	return &Value{
		Class:       class,
		Tag:         number,
		Constructed: true,
		Children:    []*Value{v},
	}
}

// ContextTagged tags v with a context-specific tag number.
// Values which are already tagged are wrapped explicitly,
// all others are tagged implicitly.
func ContextTagged(number int, v *Value) *Value {
	if v.IsTagged() {
		return Explicit(ClassContextSpecific, number, v)
	}

	return Implicit(ClassContextSpecific, number, v)
}

// Base returns the value underneath the tagged value v.
//
// As the tagging mode is not part of the encoding, the base object of a
// tagged value is inferred: primitive content is read as an OCTET STRING,
// a constructed value with a single element yields that element and any
// other constructed value is read as a SEQUENCE of its elements.
func Base(v *Value) *Value {
	switch {
	case v == nil:
		return nil

	case !v.Constructed:
		return OctetString(v.Bytes)

	case len(v.Children) == 1:
		return v.Children[0]

	default:
		return Sequence(slices.Clone(v.Children)...)
	}
}
