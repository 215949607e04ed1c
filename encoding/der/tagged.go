// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package der

import (
	"fmt"
	"maps"
	"slices"
)

// Tagged maps context tag numbers to the base objects found under them.
type Tagged map[int]*Value

// Has reports whether a value is present under tag.
func (t Tagged) Has(tag int) bool {
	_, ok := t[tag]
	return ok
}

// ExpectTag checks that v is a tagged value and returns its base object.
//
// Only a value whose class and number both differ from the expected ones is
// rejected. A partial mismatch is reported as an anomaly and accepted.
func (d *Decoder) ExpectTag(v *Value, class Class, number int) (*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: expected a tagged value, found nothing", ErrSchemaViolation)
	}

	if !v.IsTagged() {
		return nil, fmt.Errorf("%w: expected a tagged value, found %s", ErrSchemaViolation, v)
	}

	if v.Class != class && v.Tag != number {
		return nil, fmt.Errorf("%w: expected [%s %d], found [%s %d]", ErrSchemaViolation, class, number, v.Class, v.Tag)
	}

	if v.Class != class || v.Tag != number {
		d.Report(AnomalyTagMismatch, "tagged value does not match expected tag",
			"expected", fmt.Sprintf("[%s %d]", class, number),
			"found", fmt.Sprintf("[%s %d]", v.Class, v.Tag))
	}

	return Base(v), nil
}

// TaggedChildren maps the tagged elements of v by their tag number.
//
// A SEQUENCE contributes each of its tagged elements; untagged elements are
// skipped and for duplicate tag numbers the last element wins. A single
// tagged value yields a map with one entry and nil yields an empty map.
func (d *Decoder) TaggedChildren(v *Value) (Tagged, error) {
	tagged := Tagged{}

	switch {
	case v == nil:

	case v.IsSequence():
		for _, child := range v.Children {
			if !child.IsTagged() {
				d.Report(AnomalyUntaggedChild, "skipping untagged element", "element", child.String())
				continue
			}

			if tagged.Has(child.Tag) {
				d.Report(AnomalyDuplicateTag, "duplicate tag number, keeping last", "tag", child.Tag)
			}

			tagged[child.Tag] = Base(child)
		}

	case v.IsTagged():
		tagged[v.Tag] = Base(v)

	default:
		return nil, fmt.Errorf("%w: expected a sequence or tagged value, found %s", ErrSchemaViolation, v)
	}

	return tagged, nil
}

// EncodeTaggedChildren builds a SEQUENCE with one context-tagged element per
// non-nil entry of t, in ascending tag order.
func EncodeTaggedChildren(t Tagged) *Value {
	if t == nil {
		return nil
	}

	children := make([]*Value, 0, len(t))
	for _, tag := range slices.Sorted(maps.Keys(t)) {
		if v := t[tag]; v != nil {
			children = append(children, ContextTagged(tag, v))
		}
	}

	return Sequence(children...)
}

// SequenceOfSequences reports whether v is a SEQUENCE whose elements are all
// SEQUENCEs. It is used to tell a list of records apart from a single record.
func SequenceOfSequences(v *Value) bool {
	if !v.IsSequence() {
		return false
	}

	for _, child := range v.Children {
		if !child.IsSequence() {
			return false
		}
	}

	return true
}

// ListChildren returns the elements of a SEQUENCE, or v itself as the only
// element of a list for any other value. It returns nil for nil.
func ListChildren(v *Value) []*Value {
	switch {
	case v == nil:
		return nil

	case v.IsSequence():
		return slices.Clone(v.Children)

	default:
		return []*Value{v}
	}
}
