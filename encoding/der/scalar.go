// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package der

import (
	"fmt"
	"math"
	"math/big"
)

// DecodeBigInt reads a two's-complement big-endian integer from an OCTET STRING.
func DecodeBigInt(v *Value) (*big.Int, error) {
	if !v.IsOctetString() {
		return nil, fmt.Errorf("%w: expected an octet string, found %s", ErrNumberFormat, v)
	}

	b := v.Bytes
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: zero-length integer", ErrNumberFormat)
	}

	n := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8))
	}

	return n, nil
}

// DecodeInt reads an integer from an OCTET STRING.
func DecodeInt(v *Value) (int, error) {
	n, err := DecodeBigInt(v)
	if err != nil {
		return 0, err
	}

	if !n.IsInt64() || n.Int64() > math.MaxInt || n.Int64() < math.MinInt {
		return 0, fmt.Errorf("%w: %s is out of range", ErrNumberFormat, n)
	}

	return int(n.Int64()), nil
}

// EncodeBigInt returns an OCTET STRING holding the minimal two's-complement
// big-endian encoding of n.
func EncodeBigInt(n *big.Int) *Value {
	return OctetString(twosComplement(n))
}

// EncodeInt returns an OCTET STRING holding the minimal two's-complement
// big-endian encoding of n.
func EncodeInt(n int) *Value {
	return EncodeBigInt(big.NewInt(int64(n)))
}

func twosComplement(n *big.Int) []byte {
	switch n.Sign() {
	case 0:
		return []byte{0x00}

	case 1:
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b

	default:
		// Invert the bits of |n|-1
		m := new(big.Int).Neg(n)
		m.Sub(m, big.NewInt(1))

		b := m.Bytes()
		for i := range b {
			b[i] ^= 0xff
		}

		if len(b) == 0 || b[0]&0x80 == 0 {
			b = append([]byte{0xff}, b...)
		}
		return b
	}
}

// DecodeBool reads a boolean from a one-octet OCTET STRING, where any
// non-zero octet is true. A universal BOOLEAN is accepted as well.
func DecodeBool(v *Value) (bool, error) {
	if !v.IsOctetString() && !v.IsBoolean() {
		return false, fmt.Errorf("%w: expected a boolean, found %s", ErrSchemaViolation, v)
	}

	if len(v.Bytes) == 0 {
		return false, fmt.Errorf("%w: empty boolean", ErrSchemaViolation)
	}

	return v.Bytes[0] != 0x00, nil
}

// EncodeBool returns a one-octet OCTET STRING, 0xff for true and 0x00 for false.
func EncodeBool(b bool) *Value {
	if b {
		return OctetString([]byte{0xff})
	}

	return OctetString([]byte{0x00})
}

// DecodeVisibleString reads a VisibleString. The content of an implicitly
// tagged string is inferred as OCTET STRING and is accepted as well.
func DecodeVisibleString(v *Value) (string, error) {
	isVisible := v != nil && v.Class == ClassUniversal && v.Tag == TagVisibleString && !v.Constructed
	if !isVisible && !v.IsOctetString() {
		return "", fmt.Errorf("%w: expected a visible string, found %s", ErrSchemaViolation, v)
	}

	return string(v.Bytes), nil
}
