// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Unrecognized is the value of an enumeration whose code is not part of
// the known code list.
const Unrecognized = -1

// enum is implemented by every code list of the block schemas.
type enum interface {
	IsValid() bool
}

// Code is the constraint satisfied by every code list.
type Code interface {
	constraints.Signed
	enum
}

// FromCode returns the enumeration value for code,
// or Unrecognized if the code is unknown.
func FromCode[T Code](code int) T {
	if v := T(code); v.IsValid() {
		return v
	}

	return T(Unrecognized)
}

func codeString[T ~int](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}

	if v == Unrecognized {
		return "unrecognized"
	}

	return fmt.Sprintf("unknown(%d)", int(v))
}

func codeValid[T ~int](names map[T]string, v T) bool {
	_, ok := names[v]
	return ok
}
