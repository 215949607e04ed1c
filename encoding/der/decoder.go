// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package der

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

const (
	// DefaultMaxDepth limits the nesting of constructed values.
	DefaultMaxDepth = 64

	// DefaultMaxLength limits the size of a single value read from a stream.
	DefaultMaxLength = 16 << 20
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger which receives recoverable anomalies.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxDepth limits the nesting depth of decoded values.
func WithMaxDepth(depth int) Option {
	return func(d *Decoder) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// WithMaxLength limits the length of a value read by Decoder.Read.
func WithMaxLength(length int) Option {
	return func(d *Decoder) {
		if length > 0 {
			d.maxLength = length
		}
	}
}

// WithAnomalyHook registers a function called for every recoverable anomaly.
func WithAnomalyHook(hook func(Anomaly)) Option {
	return func(d *Decoder) {
		d.hook = hook
	}
}

// Decoder reads DER values and decodes tagged children.
// A Decoder holds no state between calls and is safe for concurrent use.
type Decoder struct {
	logger    *slog.Logger
	maxDepth  int
	maxLength int
	hook      func(Anomaly)
}

// NewDecoder creates a decoder. Without options, anomalies are discarded.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth:  DefaultMaxDepth,
		maxLength: DefaultMaxLength,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Logger returns the logger anomalies are written to.
func (d *Decoder) Logger() *slog.Logger {
	return d.logger
}

// Report logs a recoverable anomaly and passes it to the anomaly hook.
func (d *Decoder) Report(kind Anomaly, msg string, args ...any) {
	d.logger.Warn(msg, append([]any{"anomaly", string(kind)}, args...)...)

	if d.hook != nil {
		d.hook(kind)
	}
}

// Parse decodes exactly one value from b.
func (d *Decoder) Parse(b []byte) (*Value, error) {
	s := cryptobyte.String(b)

	v, err := d.parse(&s, 0)
	if err != nil {
		return nil, err
	}

	if !s.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedEncoding, len(s))
	}

	return v, nil
}

// Parse decodes exactly one value from b using a default decoder.
func Parse(b []byte) (*Value, error) {
	return NewDecoder().Parse(b)
}

func (d *Decoder) parse(s *cryptobyte.String, depth int) (*Value, error) {
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("%w: nesting exceeds %d levels", ErrMalformedEncoding, d.maxDepth)
	}

	var (
		content cryptobyte.String
		tag     asn1.Tag
	)

	if !s.ReadAnyASN1(&content, &tag) {
		return nil, fmt.Errorf("%w: invalid tag or length", ErrMalformedEncoding)
	}

	v := &Value{
		Class:       Class(tag >> 6),
		Tag:         int(tag & 0x1f),
		Constructed: tag&0x20 != 0,
	}

	if !v.Constructed {
		v.Bytes = append([]byte{}, content...)
		return v, nil
	}

	for !content.Empty() {
		child, err := d.parse(&content, depth+1)
		if err != nil {
			return nil, err
		}

		v.Children = append(v.Children, child)
	}

	return v, nil
}

// Marshal returns the DER encoding of v.
func Marshal(v *Value) ([]byte, error) {
	if err := check(v); err != nil {
		return nil, err
	}

	b := cryptobyte.NewBuilder(nil)
	add(b, v)

	return b.Bytes()
}

func check(v *Value) error {
	if v == nil {
		return fmt.Errorf("%w: cannot encode nil value", ErrSchemaViolation)
	}

	if v.Tag < 0 || v.Tag >= 0x1f {
		return fmt.Errorf("%w: tag number %d requires high-tag-number form", ErrSchemaViolation, v.Tag)
	}

	for _, child := range v.Children {
		if err := check(child); err != nil {
			return err
		}
	}

	return nil
}

func add(b *cryptobyte.Builder, v *Value) {
	id := asn1.Tag(byte(v.Class)<<6 | byte(v.Tag))
	if v.Constructed {
		id = id.Constructed()
	}

	b.AddASN1(id, func(b *cryptobyte.Builder) {
		if !v.Constructed {
			b.AddBytes(v.Bytes)
			return
		}

		for _, child := range v.Children {
			add(b, child)
		}
	})
}
