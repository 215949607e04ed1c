// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"bytes"
	"fmt"
	"maps"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"cunicu.li/go-lds/encoding/der"
)

type codec int

const (
	codecInt codec = iota
	codecSentinel
	codecIntPtr
	codecBigInt
	codecBool
	codecBoolPtr
	codecBytes
	codecBytesList
	codecStrings
	codecStruct
	codecStructPtr
	codecStructList
	codecEnum
	codecEnumPtr
	codecScore
	codecChoice
)

// field describes a struct field tagged with
//
//	bdb:"<tag>[,optional][,code][,score]"
//
// The tag is the context-specific tag number of the field. Fields of pointer
// type and sentinel integers are always optional. An "int" field marked
// optional uses -1 for absent. Enumerations marked "code" are encoded as
// CHOICE with extension block. An "int" marked "score" is a score-or-error.
type field struct {
	name     string
	index    int
	tag      int
	optional bool
	code     bool
	codec    codec
	typ      reflect.Type
}

//nolint:gochecknoglobals
var (
	fieldCache sync.Map

	typeInt       = reflect.TypeFor[int]()
	typeIntPtr    = reflect.TypeFor[*int]()
	typeBigInt    = reflect.TypeFor[*big.Int]()
	typeBool      = reflect.TypeFor[bool]()
	typeBoolPtr   = reflect.TypeFor[*bool]()
	typeBytes     = reflect.TypeFor[[]byte]()
	typeBytesList = reflect.TypeFor[[][]byte]()
	typeStrings   = reflect.TypeFor[[]string]()
	typeEnum      = reflect.TypeFor[enum]()
)

func fieldsOf(t reflect.Type) ([]field, error) {
	if fs, ok := fieldCache.Load(t); ok {
		return fs.([]field), nil //nolint:forcetypeassert
	}

	fs := []field{}
	seen := map[int]string{}

	for i := range t.NumField() {
		sf := t.Field(i)

		tag, ok := sf.Tag.Lookup("bdb")
		if !ok {
			continue
		}

		f, err := parseField(sf, tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}

		if other, ok := seen[f.tag]; ok {
			return nil, fmt.Errorf("%w: %s.%s reuses tag %d of %s", errInvalidField, t.Name(), sf.Name, f.tag, other)
		}

		f.index = i
		seen[f.tag] = sf.Name
		fs = append(fs, f)
	}

	fieldCache.Store(t, fs)

	return fs, nil
}

func parseField(sf reflect.StructField, tag string) (f field, err error) {
	parts := strings.Split(tag, ",")

	if f.tag, err = strconv.Atoi(parts[0]); err != nil || f.tag < 0 {
		return f, fmt.Errorf("%w: bad tag number %q", errInvalidField, parts[0])
	}

	score := false
	for _, opt := range parts[1:] {
		switch opt {
		case "optional":
			f.optional = true
		case "code":
			f.code = true
		case "score":
			score = true
		default:
			return f, fmt.Errorf("%w: unknown option %q", errInvalidField, opt)
		}
	}

	f.name = sf.Name
	t := sf.Type

	switch {
	case score && t == typeInt:
		f.codec = codecScore
	case score:
		return f, fmt.Errorf("%w: score on %s", errInvalidField, t)
	case t == typeInt && f.optional:
		f.codec = codecSentinel
	case t == typeInt:
		f.codec = codecInt
	case t == typeIntPtr:
		f.codec = codecIntPtr
	case t == typeBigInt:
		f.codec = codecBigInt
	case t == typeBool:
		f.codec = codecBool
	case t == typeBoolPtr:
		f.codec = codecBoolPtr
	case t == typeBytes:
		f.codec = codecBytes
	case t == typeBytesList:
		f.codec = codecBytesList
	case t == typeStrings:
		f.codec = codecStrings
	case t.Kind() == reflect.Int && t.Implements(typeEnum):
		f.codec, f.typ = codecEnum, t
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Int && t.Elem().Implements(typeEnum):
		f.codec, f.typ = codecEnumPtr, t.Elem()
	case t.Kind() == reflect.Interface:
		if _, ok := choices[t]; !ok {
			return f, fmt.Errorf("%w: no alternatives registered for %s", errInvalidField, t)
		}
		f.codec, f.typ = codecChoice, t
	case t.Kind() == reflect.Struct:
		f.codec, f.typ = codecStruct, t
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		f.codec, f.typ = codecStructPtr, t.Elem()
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Struct:
		f.codec, f.typ = codecStructList, t.Elem()
	default:
		return f, fmt.Errorf("%w: unsupported type %s", errInvalidField, t)
	}

	if f.code && f.codec != codecEnum && f.codec != codecEnumPtr {
		return f, fmt.Errorf("%w: code on %s", errInvalidField, t)
	}

	return f, nil
}

func (f *field) mandatory() bool {
	switch f.codec {
	case codecInt, codecBool, codecStruct:
		return true
	case codecSentinel, codecIntPtr, codecBoolPtr, codecStructPtr, codecEnumPtr, codecScore:
		return false
	default:
		return !f.optional
	}
}

func encodeStruct(v reflect.Value) (*der.Value, error) {
	fs, err := fieldsOf(v.Type())
	if err != nil {
		return nil, err
	}

	t := der.Tagged{}
	for i := range fs {
		f := &fs[i]

		fv, err := f.encode(v.Field(f.index))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", v.Type().Name(), f.name, err)
		}

		if fv != nil {
			t[f.tag] = fv
		}
	}

	return der.EncodeTaggedChildren(t), nil
}

func (f *field) encode(v reflect.Value) (*der.Value, error) {
	switch f.codec {
	case codecIntPtr, codecBigInt, codecBoolPtr, codecStructPtr, codecEnumPtr, codecChoice:
		if v.IsNil() {
			if f.mandatory() {
				return nil, fmt.Errorf("%w: %w", der.ErrSchemaViolation, errMissingField)
			}

			return nil, nil
		}

	case codecBytes, codecBytesList, codecStrings, codecStructList:
		if v.Len() == 0 && f.optional {
			return nil, nil
		}

	default:
	}

	switch f.codec {
	case codecInt:
		return der.EncodeInt(int(v.Int())), nil

	case codecSentinel:
		if v.Int() < 0 {
			return nil, nil
		}
		return der.EncodeInt(int(v.Int())), nil

	case codecIntPtr:
		return der.EncodeInt(int(v.Elem().Int())), nil

	case codecBigInt:
		return der.EncodeBigInt(v.Interface().(*big.Int)), nil //nolint:forcetypeassert

	case codecBool:
		return der.EncodeBool(v.Bool()), nil

	case codecBoolPtr:
		return der.EncodeBool(v.Elem().Bool()), nil

	case codecBytes:
		return der.OctetString(v.Bytes()), nil

	case codecBytesList:
		children := make([]*der.Value, v.Len())
		for i := range children {
			children[i] = der.OctetString(v.Index(i).Bytes())
		}
		return der.Sequence(children...), nil

	case codecStrings:
		children := make([]*der.Value, v.Len())
		for i := range children {
			children[i] = der.VisibleString(v.Index(i).String())
		}
		return der.Sequence(children...), nil

	case codecStruct:
		return encodeStruct(v)

	case codecStructPtr:
		return encodeStruct(v.Elem())

	case codecStructList:
		children := make([]*der.Value, v.Len())
		for i := range children {
			child, err := encodeStruct(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("%d: %w", i, err)
			}
			children[i] = child
		}

		// Indistinguishable from an empty list once the sequence is unwrapped
		if !f.optional && len(children) == 1 && len(children[0].Children) == 0 {
			return nil, fmt.Errorf("%w: %w: %s", der.ErrSchemaViolation, errAmbiguousList, f.typ.Name())
		}

		return der.Sequence(children...), nil

	case codecEnum:
		return f.encodeEnum(v)

	case codecEnumPtr:
		return f.encodeEnum(v.Elem())

	case codecScore:
		return EncodeScore(int(v.Int()))

	case codecChoice:
		return choices[f.typ].encode(v.Elem())
	}

	return nil, fmt.Errorf("%w: unsupported codec", errInvalidField)
}

func (f *field) encodeEnum(v reflect.Value) (*der.Value, error) {
	n := int(v.Int())
	if n < 0 {
		if f.codec == codecEnum && f.mandatory() {
			return nil, fmt.Errorf("%w: %w: %s", der.ErrSchemaViolation, errUnencodableEnum, f.typ.Name())
		}

		return nil, nil
	}

	if f.code {
		return EncodeCodeChoice(n), nil
	}

	return der.EncodeInt(n), nil
}

func decodeStruct(d *der.Decoder, v *der.Value, out reflect.Value) error {
	typ := out.Type()

	fs, err := fieldsOf(typ)
	if err != nil {
		return err
	}

	t, err := d.TaggedChildren(v)
	if err != nil {
		return fmt.Errorf("%s: %w", typ.Name(), err)
	}

	res := reflect.New(typ).Elem()
	known := map[int]bool{}

	for i := range fs {
		f := &fs[i]
		known[f.tag] = true

		child, ok := t[f.tag]
		if !ok {
			if f.mandatory() {
				return fmt.Errorf("%w: %w: %s.%s [%d]", der.ErrSchemaViolation, errMissingField, typ.Name(), f.name, f.tag)
			}

			switch f.codec {
			case codecSentinel, codecScore, codecEnum:
				res.Field(f.index).SetInt(-1)
			default:
			}

			continue
		}

		if err := f.decode(d, child, res.Field(f.index)); err != nil {
			return fmt.Errorf("%s.%s: %w", typ.Name(), f.name, err)
		}
	}

	for _, tag := range slices.Sorted(maps.Keys(t)) {
		if !known[tag] {
			d.Report(AnomalyUnknownTag, "ignoring unknown tag", "block", typ.Name(), "tag", tag)
		}
	}

	out.Set(res)

	return nil
}

func (f *field) decode(d *der.Decoder, v *der.Value, out reflect.Value) error {
	switch f.codec {
	case codecInt, codecSentinel:
		n, err := der.DecodeInt(v)
		if err != nil {
			return err
		}
		out.SetInt(int64(n))

	case codecIntPtr:
		n, err := der.DecodeInt(v)
		if err != nil {
			return err
		}
		out.Set(reflect.ValueOf(&n))

	case codecBigInt:
		n, err := der.DecodeBigInt(v)
		if err != nil {
			return err
		}
		out.Set(reflect.ValueOf(n))

	case codecBool:
		b, err := der.DecodeBool(v)
		if err != nil {
			return err
		}
		out.SetBool(b)

	case codecBoolPtr:
		b, err := der.DecodeBool(v)
		if err != nil {
			return err
		}
		out.Set(reflect.ValueOf(&b))

	case codecBytes:
		b, err := decodeBytes(v)
		if err != nil {
			return err
		}
		out.SetBytes(b)

	case codecBytesList:
		list := [][]byte{}
		for _, child := range der.ListChildren(v) {
			b, err := decodeBytes(child)
			if err != nil {
				return err
			}
			list = append(list, b)
		}
		out.Set(reflect.ValueOf(list))

	case codecStrings:
		list := []string{}
		for _, child := range der.ListChildren(v) {
			s, err := der.DecodeVisibleString(child)
			if err != nil {
				return err
			}
			list = append(list, s)
		}
		out.Set(reflect.ValueOf(list))

	case codecStruct:
		return decodeStruct(d, v, out)

	case codecStructPtr:
		p := reflect.New(f.typ)
		if err := decodeStruct(d, v, p.Elem()); err != nil {
			return err
		}
		out.Set(p)

	case codecStructList:
		// Empty optional lists are omitted, so an empty sequence under an
		// optional tag is a single element without any fields.
		elems := []*der.Value{v}
		switch {
		case v.IsSequence() && len(v.Children) == 0:
			if !f.optional {
				elems = nil
			}
		case der.SequenceOfSequences(v):
			elems = v.Children
		}

		list := reflect.MakeSlice(out.Type(), len(elems), len(elems))
		for i, elem := range elems {
			if err := decodeStruct(d, elem, list.Index(i)); err != nil {
				return fmt.Errorf("%d: %w", i, err)
			}
		}
		out.Set(list)

	case codecEnum:
		e, err := decodeEnum(d, v, f.typ, f.code)
		if err != nil {
			return err
		}
		out.Set(e)

	case codecEnumPtr:
		e, err := decodeEnum(d, v, f.typ, f.code)
		if err != nil {
			return err
		}
		p := reflect.New(f.typ)
		p.Elem().Set(e)
		out.Set(p)

	case codecScore:
		n, err := DecodeScore(d, v)
		if err != nil {
			return err
		}
		out.SetInt(int64(n))

	case codecChoice:
		c, err := choices[f.typ].decode(d, v)
		if err != nil {
			return err
		}

		if !c.IsValid() {
			if f.mandatory() {
				return fmt.Errorf("%w: %w: %s", der.ErrSchemaViolation, errUnknownChoice, f.typ.Name())
			}

			d.Report(AnomalyUnknownTag, "ignoring unknown choice alternative", "choice", f.typ.Name())
			return nil
		}
		out.Set(c)
	}

	return nil
}

// decodeEnum decodes an integer of type typ. Codes outside the known code
// list of an enumeration are reported and mapped to Unrecognized.
func decodeEnum(d *der.Decoder, v *der.Value, typ reflect.Type, code bool) (reflect.Value, error) {
	var (
		n   int
		err error
	)

	ok := true
	if code {
		n, ok, err = DecodeCodeChoice(d, v)
	} else {
		n, err = der.DecodeInt(v)
	}
	if err != nil {
		return reflect.Value{}, err
	}

	e := reflect.New(typ).Elem()
	e.SetInt(int64(n))

	if en, isEnum := e.Interface().(enum); isEnum && (!ok || !en.IsValid()) {
		if ok {
			d.Report(AnomalyUnrecognizedCode, "unrecognized code", "type", typ.Name(), "code", n)
		} else {
			d.Report(AnomalyUnrecognizedCode, "code choice without code", "type", typ.Name())
		}

		e.SetInt(Unrecognized)
	}

	return e, nil
}

func decodeBytes(v *der.Value) ([]byte, error) {
	if !v.IsOctetString() {
		return nil, fmt.Errorf("%w: expected an octet string, found %s", der.ErrSchemaViolation, v)
	}

	return bytes.Clone(v.Bytes), nil
}
