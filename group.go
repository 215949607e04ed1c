// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"fmt"
	"hash/fnv"
	"io"
	"slices"

	"cunicu.li/go-iso7816/encoding/tlv"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/encoding/der"
	"cunicu.li/go-lds/iso39794"
	"cunicu.li/go-lds/metrics"
)

// CBEFFDataGroup is a data group holding a biometric information group
// template with one biometric information template per record.
type CBEFFDataGroup struct {
	object        Object
	encodingType  cbeff.EncodingType
	records       []BiometricDataBlock
	randomPadding bool

	metrics *metrics.Metrics
	random  io.Reader
}

// NewCBEFFDataGroup creates a biometric data group.
// Records without a header get one synthesized for the modality of the group.
func NewCBEFFDataGroup(object Object, encodingType cbeff.EncodingType, records []BiometricDataBlock, opts ...Option) (*CBEFFDataGroup, error) {
	if _, ok := modalities[object]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedObject, object)
	}

	g := newGroup(object, encodingType, records, newConfig(opts))

	return &g, nil
}

func newGroup(object Object, encodingType cbeff.EncodingType, records []BiometricDataBlock, cfg *config) CBEFFDataGroup {
	m := modalities[object]

	records = slices.Clone(records)
	for i, r := range records {
		if lr, ok := r.(*LegacyRecord); ok && lr != nil && lr.header == nil {
			records[i] = NewLegacyRecord(m.legacyHeader(), lr.data)
		}
	}

	return CBEFFDataGroup{
		object:        object,
		encodingType:  encodingType,
		records:       records,
		randomPadding: cfg.randomPadding,
		metrics:       cfg.metrics,
		random:        cfg.random,
	}
}

// Object returns the data group.
func (g *CBEFFDataGroup) Object() Object {
	return g.object
}

// EncodingType returns the encoding of the records.
func (g *CBEFFDataGroup) EncodingType() cbeff.EncodingType {
	return g.encodingType
}

// Records returns a copy of the records.
func (g *CBEFFDataGroup) Records() []BiometricDataBlock {
	return slices.Clone(g.records)
}

// RandomPadding reports whether random discretionary data is appended to
// the group when it holds no records.
func (g *CBEFFDataGroup) RandomPadding() bool {
	return g.randomPadding
}

// LegacyRecords returns the ISO/IEC 19794 records of the group.
func (g *CBEFFDataGroup) LegacyRecords() []*LegacyRecord {
	rs := []*LegacyRecord{}
	for _, r := range g.records {
		if lr, ok := r.(*LegacyRecord); ok {
			rs = append(rs, lr)
		}
	}
	return rs
}

// Equal reports whether both groups hold equal records and the same
// padding flag.
func (g *CBEFFDataGroup) Equal(o *CBEFFDataGroup) bool {
	if g == nil || o == nil {
		return g == o
	}

	return g.object == o.object &&
		g.randomPadding == o.randomPadding &&
		slices.EqualFunc(g.records, o.records, func(a, b BiometricDataBlock) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Equal(b)
		})
}

// Hash returns a hash of the records and the padding flag consistent with Equal.
func (g *CBEFFDataGroup) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(g.object)}) //nolint:errcheck

	for _, r := range g.records {
		if r == nil {
			continue
		} else if lr, ok := r.(*LegacyRecord); ok {
			h.Write(lr.data) //nolint:errcheck
			continue
		}

		if b, err := encodeBER(r.encode()); err == nil {
			h.Write(b) //nolint:errcheck
		}
	}

	if g.randomPadding {
		h.Write([]byte{1}) //nolint:errcheck
	} else {
		h.Write([]byte{0}) //nolint:errcheck
	}

	return h.Sum64()
}

// MarshalBinary encodes the data group.
// Unless the encoding type of the group is unknown, all records must share it.
func (g *CBEFFDataGroup) MarshalBinary() ([]byte, error) {
	m, ok := modalities[g.object]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedObject, g.object)
	}

	if len(g.records) > 0xff {
		return nil, fmt.Errorf("%w: too many records: %d", ErrSchemaViolation, len(g.records))
	}

	bit := []any{
		tlv.New(cbeff.TagNumberOfInstances, byte(len(g.records))),
	}

	for i, r := range g.records {
		tv, err := g.encodeRecord(m, r)
		if err != nil {
			return nil, RecordError{Index: i, Err: err}
		}

		bit = append(bit, tv)
	}

	content := []any{
		tlv.New(cbeff.TagBiometricInformationGroupTemplate, bit...),
	}

	if g.randomPadding && len(g.records) == 0 {
		pad := make([]byte, randomPaddingLength)
		if _, err := io.ReadFull(g.random, pad); err != nil {
			return nil, fmt.Errorf("failed to generate random padding: %w", err)
		}

		content = append(content, tlv.New(cbeff.TagDiscretionaryData, pad))
	}

	b, err := tlv.EncodeBER(g.object.TagValue(content...))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", g.object, err)
	}

	for _, r := range g.records {
		g.metrics.IncrementEncoded(m.name, r.EncodingType().String())
	}

	if g.randomPadding && len(g.records) == 0 {
		g.metrics.IncrementRandomPadding()
	}

	return b, nil
}

// Encode writes the encoded data group to w.
func (g *CBEFFDataGroup) Encode(w io.Writer) error {
	b, err := g.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}

func (g *CBEFFDataGroup) encodeRecord(m *modality, r BiometricDataBlock) (tlv.TagValue, error) {
	if r == nil {
		return tlv.TagValue{}, fmt.Errorf("%w: missing record", ErrSchemaViolation)
	}

	if t := r.EncodingType(); g.encodingType != cbeff.EncodingTypeUnknown && t != g.encodingType {
		return tlv.TagValue{}, fmt.Errorf("%w: %s record in %s group", ErrSchemaViolation, t, g.encodingType)
	}

	h := r.StandardBiometricHeader()
	if h == nil {
		h = m.legacyHeader()
	}

	if t := h.BiometricType(); t != cbeff.BiometricTypeNone && t != m.biometricType {
		return tlv.TagValue{}, fmt.Errorf("%w: %s record in %s", ErrSchemaViolation, t, g.object)
	}

	bdb, err := r.encode()
	if err != nil {
		return tlv.TagValue{}, err
	}

	return tlv.New(cbeff.TagBiometricInformationTemplate, h.TagValue(), bdb), nil
}

func parseGroup(object Object, b []byte, cfg *config) (*CBEFFDataGroup, error) {
	m, ok := modalities[object]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedObject, object)
	}

	es, err := unmarshalASN1(b)
	if err != nil {
		return nil, err
	}

	if len(es) != 1 {
		return nil, fmt.Errorf("%w: expected a single element, got %d", ErrMalformedEncoding, len(es))
	} else if es[0].tag != int(object) {
		return nil, fmt.Errorf("%w: expected tag 0x%02x for %s, got 0x%x", ErrSchemaViolation, byte(object), object, es[0].tag)
	}

	content, err := unmarshalASN1(es[0].value)
	if err != nil {
		return nil, err
	}

	v, ok := content.get(cbeff.TagBiometricInformationGroupTemplate)
	if !ok {
		return nil, fmt.Errorf("%w: missing biometric information group template", ErrSchemaViolation)
	}

	bit, err := unmarshalASN1(v)
	if err != nil {
		return nil, err
	}

	g := newGroup(object, cbeff.EncodingTypeUnknown, nil, cfg)
	d := cfg.decoder()

	if _, ok := content.get(cbeff.TagDiscretionaryData); ok {
		g.randomPadding = true
	}

	count := -1
	if n, ok := bit.get(cbeff.TagNumberOfInstances); ok {
		count = 0
		for _, c := range n {
			count = count<<8 | int(c)
		}
	}

	for _, e := range bit {
		if e.tag != cbeff.TagBiometricInformationTemplate {
			continue
		}

		r, err := decodeRecord(d, m, e.value)
		if err != nil {
			return nil, RecordError{Index: len(g.records), Err: err}
		}

		if g.encodingType == cbeff.EncodingTypeUnknown {
			g.encodingType = r.EncodingType()
		}

		g.records = append(g.records, r)
		g.metrics.IncrementDecoded(m.name, r.EncodingType().String())
	}

	if count != len(g.records) {
		d.Report(AnomalyRecordCountMismatch, "number of records does not match",
			"object", object.String(), "expected", count, "found", len(g.records))
	}

	return &g, nil
}

func decodeRecord(d *der.Decoder, m *modality, b []byte) (BiometricDataBlock, error) {
	children, err := unmarshalASN1(b)
	if err != nil {
		return nil, err
	}

	var h *cbeff.StandardBiometricHeader
	if v, ok := children.get(cbeff.TagBiometricHeaderTemplate); ok {
		if h, err = cbeff.ParseStandardBiometricHeader(v); err != nil {
			return nil, err
		}
	}

	for _, tag := range []int{cbeff.TagBiometricDataBlock, cbeff.TagBiometricDataBlockConstructed} {
		if v, ok := children.get(tag); ok {
			return m.decodeRecord(d, h, tag, v)
		}
	}

	return nil, fmt.Errorf("%w: missing biometric data block", ErrSchemaViolation)
}

func readGroup(object Object, r io.Reader, cfg *config) (*CBEFFDataGroup, error) {
	_, b, _, err := readASN1(r)
	if err != nil {
		return nil, err
	}

	return parseGroup(object, b, cfg)
}

func encodeBER(tv tlv.TagValue, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}

	return tlv.EncodeBER(tv)
}

func imageRecords[T iso39794.DataBlock](blocks []T) []BiometricDataBlock {
	rs := make([]BiometricDataBlock, 0, len(blocks))
	for _, b := range blocks {
		rs = append(rs, NewImageRecord(b))
	}
	return rs
}

func legacyRecords(records []*LegacyRecord) []BiometricDataBlock {
	rs := make([]BiometricDataBlock, 0, len(records))
	for _, r := range records {
		rs = append(rs, r)
	}
	return rs
}

func imageBlocks[T iso39794.DataBlock](records []BiometricDataBlock) []T {
	bs := []T{}
	for _, r := range records {
		if ir, ok := r.(*ImageRecord[T]); ok {
			bs = append(bs, ir.block)
		}
	}
	return bs
}
