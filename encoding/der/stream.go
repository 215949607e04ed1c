// SPDX-FileCopyrightText: 2020 Google LLC
// SPDX-License-Identifier: Apache-2.0

package der

import (
	"fmt"
	"io"
)

// ReadLength reads the definite length octets following the identifier
// octets of a BER-TLV element. It returns the length and the raw length octets.
func ReadLength(r io.Reader) (n int, raw []byte, err error) {
	raw = make([]byte, 1, 5)
	if _, err := io.ReadFull(r, raw); err != nil {
		return 0, nil, err
	}

	l := raw[0]
	switch {
	case l < 0x80:
		return int(l), raw, nil

	case l == 0x80:
		return 0, nil, fmt.Errorf("%w: indefinite length", ErrMalformedEncoding)

	case l > 0x84:
		return 0, nil, fmt.Errorf("%w: length with %d octets", ErrMalformedEncoding, l&0x7f)
	}

	raw = raw[:1+int(l&0x7f)]
	if _, err := io.ReadFull(r, raw[1:]); err != nil {
		return 0, nil, err
	}

	for _, b := range raw[1:] {
		n = n<<8 | int(b)
	}

	return n, raw, nil
}

// Read reads exactly one value from r.
//
// Only the octets of that value are consumed, so a stream holding several
// concatenated values can be read by repeated calls.
func (d *Decoder) Read(r io.Reader) (*Value, error) {
	id := make([]byte, 1)
	if _, err := io.ReadFull(r, id); err != nil {
		return nil, fmt.Errorf("%w: failed to read tag: %w", ErrMalformedEncoding, err)
	}

	if id[0]&0x1f == 0x1f {
		return nil, fmt.Errorf("%w: high-tag-number form is not supported", ErrMalformedEncoding)
	}

	n, length, err := ReadLength(r)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read length: %w", ErrMalformedEncoding, err)
	}

	if n > d.maxLength {
		return nil, fmt.Errorf("%w: length %d exceeds limit of %d", ErrMalformedEncoding, n, d.maxLength)
	}

	b := make([]byte, 0, 1+len(length)+n)
	b = append(b, id...)
	b = append(b, length...)
	b = b[:cap(b)]

	if _, err := io.ReadFull(r, b[1+len(length):]); err != nil {
		return nil, fmt.Errorf("%w: failed to read content: %w", ErrMalformedEncoding, err)
	}

	return d.Parse(b)
}
