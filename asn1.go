// SPDX-FileCopyrightText: 2020 Google LLC
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"bytes"
	"fmt"
	"io"

	"cunicu.li/go-lds/encoding/der"
)

// readTag reads the identifier octets of a BER-TLV element.
// Tags span at most three octets.
func readTag(r io.Reader) ([]byte, error) {
	tag := make([]byte, 1, 3)
	if _, err := io.ReadFull(r, tag); err != nil {
		return nil, err
	}

	if tag[0]&0x1f != 0x1f {
		return tag, nil
	}

	for {
		if len(tag) == cap(tag) {
			return nil, fmt.Errorf("%w: tag longer than %d octets", ErrMalformedEncoding, cap(tag))
		}

		b := make([]byte, 1)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, err
		}

		tag = append(tag, b[0])
		if b[0]&0x80 == 0 {
			return tag, nil
		}
	}
}

// readASN1 reads exactly one BER-TLV element from r.
// It returns the tag number, the octets of the element including tag and
// length and the offset of the content within them.
func readASN1(r io.Reader) (tag int, b []byte, off int, err error) {
	id, err := readTag(r)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("%w: failed to read tag: %w", ErrMalformedEncoding, err)
	}

	n, length, err := der.ReadLength(r)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("%w: failed to read length: %w", ErrMalformedEncoding, err)
	}

	if n > der.DefaultMaxLength {
		return 0, nil, 0, fmt.Errorf("%w: length %d exceeds limit of %d", ErrMalformedEncoding, n, der.DefaultMaxLength)
	}

	b = make([]byte, 0, len(id)+len(length)+n)
	b = append(b, id...)
	b = append(b, length...)

	off = len(b)
	b = b[:cap(b)]

	if _, err := io.ReadFull(r, b[off:]); err != nil {
		return 0, nil, 0, fmt.Errorf("%w: failed to read content: %w", ErrMalformedEncoding, err)
	}

	for _, c := range id {
		tag = tag<<8 | int(c)
	}

	return tag, b, off, nil
}

// element is a BER-TLV element whose content has not been decoded.
type element struct {
	tag   int
	value []byte
}

type elements []element

// unmarshalASN1 splits b into its top-level elements.
// Constructed elements are not descended into.
func unmarshalASN1(b []byte) (elements, error) {
	es := elements{}

	r := bytes.NewReader(b)
	for r.Len() > 0 {
		tag, raw, off, err := readASN1(r)
		if err != nil {
			return nil, err
		}

		es = append(es, element{tag, raw[off:]})
	}

	return es, nil
}

// get returns the content of the first element with the tag.
func (es elements) get(tag int) ([]byte, bool) {
	for _, e := range es {
		if e.tag == tag {
			return e.value, true
		}
	}
	return nil, false
}
