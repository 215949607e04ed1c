// SPDX-FileCopyrightText: 2023 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"fmt"

	"cunicu.li/go-iso7816/encoding/tlv"
)

// Object is an elementary file of the logical data structure identified by
// the tag of its outermost element.
type Object byte

// Biometric data groups.
const (
	ObjectDG2 Object = tagDG2 // Encoded face
	ObjectDG3 Object = tagDG3 // Encoded fingers
	ObjectDG4 Object = tagDG4 // Encoded irises
)

//nolint:gochecknoglobals
var objectNames = map[Object]string{
	ObjectDG2: "DG2",
	ObjectDG3: "DG3",
	ObjectDG4: "DG4",
}

func (o Object) String() string {
	if n, ok := objectNames[o]; ok {
		return n
	}
	return fmt.Sprintf("object(0x%02x)", byte(o))
}

// TagValue wraps the content of the data group in its tag.
func (o Object) TagValue(content ...any) tlv.TagValue {
	return tlv.New(tlv.Tag(o), content...)
}
