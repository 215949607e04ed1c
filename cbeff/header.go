// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package cbeff

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"cunicu.li/go-iso7816/encoding/tlv"

	"cunicu.li/go-lds/encoding/der"
)

// StandardBiometricHeader holds the elements 0x80 to 0x8f of a biometric
// header template. A header is immutable once constructed.
type StandardBiometricHeader struct {
	elements map[int][]byte
}

// NewStandardBiometricHeader creates a header from its elements.
func NewStandardBiometricHeader(elements map[int][]byte) (*StandardBiometricHeader, error) {
	h := &StandardBiometricHeader{
		elements: map[int][]byte{},
	}

	for tag, value := range elements {
		if tag < tagHeaderElementFirst || tag > tagHeaderElementLast {
			return nil, fmt.Errorf("%w: tag 0x%02x is not a header element", der.ErrSchemaViolation, tag)
		}

		h.elements[tag] = bytes.Clone(value)
	}

	return h, nil
}

// NewHeader synthesizes the header of a data block in a format owned
// by ISO/IEC JTC 1/SC 37.
func NewHeader(typ BiometricType, subtype Subtype, formatType FormatType) *StandardBiometricHeader {
	return &StandardBiometricHeader{
		elements: map[int][]byte{
			TagBiometricType:    {byte(typ)},
			TagBiometricSubtype: {byte(subtype)},
			TagFormatOwner:      be16(uint16(FormatOwnerJTC1SC37)),
			TagFormatType:       be16(uint16(formatType)),
		},
	}
}

// ParseStandardBiometricHeader parses the contents of a biometric header
// template. Elements outside of the header range are ignored.
func ParseStandardBiometricHeader(b []byte) (*StandardBiometricHeader, error) {
	tvs, err := tlv.DecodeBER(b)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode biometric header template: %w", der.ErrMalformedEncoding, err)
	}

	h := &StandardBiometricHeader{
		elements: map[int][]byte{},
	}

	for tag := tlv.Tag(tagHeaderElementFirst); tag <= tagHeaderElementLast; tag++ {
		if value, _, ok := tvs.Get(tag); ok {
			h.elements[int(tag)] = bytes.Clone(value)
		}
	}

	return h, nil
}

// Element returns a copy of the value of the header element with the given tag.
func (h *StandardBiometricHeader) Element(tag int) ([]byte, bool) {
	value, ok := h.elements[tag]
	if !ok {
		return nil, false
	}
	return bytes.Clone(value), true
}

// Tags returns the tags of all elements in ascending order.
func (h *StandardBiometricHeader) Tags() []int {
	return slices.Sorted(maps.Keys(h.elements))
}

// BiometricType returns the biometric type, or BiometricTypeNone if absent.
func (h *StandardBiometricHeader) BiometricType() BiometricType {
	return BiometricType(h.uint(TagBiometricType))
}

// Subtype returns the biometric subtype, or SubtypeNone if absent.
func (h *StandardBiometricHeader) Subtype() Subtype {
	return Subtype(h.uint(TagBiometricSubtype))
}

// FormatOwner returns the format owner or zero if absent.
func (h *StandardBiometricHeader) FormatOwner() FormatOwner {
	return FormatOwner(h.uint(TagFormatOwner))
}

// FormatType returns the format type or zero if absent.
func (h *StandardBiometricHeader) FormatType() FormatType {
	return FormatType(h.uint(TagFormatType))
}

// HasFormatType reports whether the header carries the given format type.
func (h *StandardBiometricHeader) HasFormatType(ft FormatType) bool {
	if h == nil {
		return false
	}

	v, ok := h.elements[TagFormatType]
	return ok && bytes.Equal(v, be16(uint16(ft)))
}

// TagValue returns the biometric header template holding all elements.
func (h *StandardBiometricHeader) TagValue() tlv.TagValue {
	children := []any{}
	for _, tag := range h.Tags() {
		children = append(children, tlv.New(tlv.Tag(tag), h.elements[tag]))
	}

	return tlv.New(TagBiometricHeaderTemplate, children...)
}

// Equal reports whether both headers hold the same elements.
func (h *StandardBiometricHeader) Equal(o *StandardBiometricHeader) bool {
	if h == nil || o == nil {
		return h == o
	}

	return maps.EqualFunc(h.elements, o.elements, bytes.Equal)
}

func (h *StandardBiometricHeader) String() string {
	if h == nil {
		return "SBH <nil>"
	}

	parts := []string{}
	for _, tag := range h.Tags() {
		parts = append(parts, fmt.Sprintf("%02x: %x", tag, h.elements[tag]))
	}

	return "SBH [" + strings.Join(parts, ", ") + "]"
}

func (h *StandardBiometricHeader) uint(tag int) (n int) {
	if h == nil {
		return 0
	}

	for _, b := range h.elements[tag] {
		n = n<<8 | int(b)
	}

	return n
}

func be16(n uint16) []byte {
	return []byte{byte(n >> 8), byte(n)}
}
