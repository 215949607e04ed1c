// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"bytes"
	"math/big"
	"reflect"
)

// Equal reports whether two blocks hold the same values.
//
// Empty and nil lists are equal, big integers compare by value.
func Equal(a, b Block) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}

		if a.Type() == typeBigInt {
			return a.Interface().(*big.Int).Cmp(b.Interface().(*big.Int)) == 0 //nolint:forcetypeassert
		}

		return equalValue(a.Elem(), b.Elem())

	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}

		return equalValue(a.Elem(), b.Elem())

	case reflect.Slice:
		if a.Type() == typeBytes {
			return bytes.Equal(a.Bytes(), b.Bytes())
		}

		if a.Len() != b.Len() {
			return false
		}

		for i := range a.Len() {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}

		return true

	case reflect.Struct:
		for i := range a.NumField() {
			if !equalValue(a.Field(i), b.Field(i)) {
				return false
			}
		}

		return true

	case reflect.Int:
		return a.Int() == b.Int()

	case reflect.Bool:
		return a.Bool() == b.Bool()

	case reflect.String:
		return a.String() == b.String()

	default:
		return false
	}
}
