// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

// Package iso39794 implements the extensible biometric data blocks of
// ISO/IEC 39794-4 (finger), 39794-5 (face) and 39794-6 (iris) as used in
// the data groups DG2, DG3 and DG4 of an eMRTD.
//
// Blocks are plain Go structs. Their fields carry a struct tag naming the
// context-specific tag number of the field:
//
//	type Version struct {
//		Generation int `bdb:"0"`
//		Year       int `bdb:"1"`
//	}
//
// A single reflective codec encodes and decodes all of them.
package iso39794

import (
	"fmt"
	"hash/fnv"
	"reflect"

	"cunicu.li/go-lds/cbeff"
	"cunicu.li/go-lds/encoding/der"
)

// Block is a record of the ISO/IEC 39794 schemas.
type Block interface {
	isBlock()
}

// DataBlock is the outermost block of a biometric data block,
// tagged with an application class tag.
type DataBlock interface {
	Block

	// ApplicationTag returns the number of the application tag of the block.
	ApplicationTag() int

	// Header returns a standard biometric header describing the block.
	Header() *cbeff.StandardBiometricHeader
}

// Application tags of the data blocks.
const (
	ApplicationTagFinger = 4
	ApplicationTagFace   = 5
	ApplicationTagIris   = 6
)

// Encode encodes a block into a SEQUENCE of its context-tagged fields.
func Encode(b Block) (*der.Value, error) {
	v := reflect.ValueOf(b)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", errNotABlock, v.Type())
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", errNotABlock, v.Type())
	}

	return encodeStruct(v)
}

// Marshal returns the DER encoding of a block.
func Marshal(b Block) ([]byte, error) {
	v, err := Encode(b)
	if err != nil {
		return nil, err
	}

	return der.Marshal(v)
}

// Decode decodes a block of type T from a SEQUENCE of context-tagged fields.
func Decode[T Block](d *der.Decoder, v *der.Value) (T, error) {
	var b T

	out := reflect.ValueOf(&b).Elem()
	if out.Kind() != reflect.Struct {
		return b, fmt.Errorf("%w: %s", errNotABlock, out.Type())
	}

	if err := decodeStruct(d, v, out); err != nil {
		return b, err
	}

	return b, nil
}

// Unmarshal parses the DER encoding of a block of type T.
func Unmarshal[T Block](buf []byte, opts ...der.Option) (T, error) {
	d := der.NewDecoder(opts...)

	v, err := d.Parse(buf)
	if err != nil {
		var b T
		return b, err
	}

	return Decode[T](d, v)
}

// EncodeDataBlock encodes a data block under its application tag.
func EncodeDataBlock(b DataBlock) (*der.Value, error) {
	v, err := Encode(b)
	if err != nil {
		return nil, err
	}

	return der.Implicit(der.ClassApplication, b.ApplicationTag(), v), nil
}

// MarshalDataBlock returns the DER encoding of a data block
// under its application tag.
func MarshalDataBlock(b DataBlock) ([]byte, error) {
	v, err := EncodeDataBlock(b)
	if err != nil {
		return nil, err
	}

	return der.Marshal(v)
}

// DecodeDataBlock decodes a data block of type T from an application tagged value.
func DecodeDataBlock[T DataBlock](d *der.Decoder, v *der.Value) (T, error) {
	var b T

	base, err := d.ExpectTag(v, der.ClassApplication, b.ApplicationTag())
	if err != nil {
		return b, err
	}

	if !base.IsSequence() {
		return b, fmt.Errorf("%w: expected a sequence, found %s", der.ErrSchemaViolation, base)
	}

	return Decode[T](d, base)
}

// UnmarshalDataBlock parses the DER encoding of a data block of type T.
func UnmarshalDataBlock[T DataBlock](buf []byte, opts ...der.Option) (T, error) {
	d := der.NewDecoder(opts...)

	v, err := d.Parse(buf)
	if err != nil {
		var b T
		return b, err
	}

	return DecodeDataBlock[T](d, v)
}

// Hash returns a hash of the DER encoding of a block.
// Blocks which cannot be encoded hash to zero.
func Hash(b Block) uint64 {
	buf, err := Marshal(b)
	if err != nil {
		return 0
	}

	h := fnv.New64a()
	h.Write(buf)

	return h.Sum64()
}
