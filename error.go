// SPDX-FileCopyrightText: 2020 Google LLC
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"errors"
	"fmt"

	"cunicu.li/go-lds/encoding/der"
)

var (
	// ErrMalformedEncoding is returned when the octets are not valid BER-TLV.
	ErrMalformedEncoding = der.ErrMalformedEncoding

	// ErrSchemaViolation is returned when a well-formed structure does not
	// follow the expected layout.
	ErrSchemaViolation = der.ErrSchemaViolation

	// ErrNumberFormat is returned when an integer field can not be decoded.
	ErrNumberFormat = der.ErrNumberFormat

	// ErrUnsupportedObject is returned for data groups which do not hold
	// biometric information templates.
	ErrUnsupportedObject = errors.New("unsupported data group")
)

// Anomalies reported while decoding data groups.
const (
	AnomalyFormatTypeMismatch  der.Anomaly = "format_type_mismatch"
	AnomalyRecordCountMismatch der.Anomaly = "record_count_mismatch"
)

// RecordError is an error indicating that a single biometric record of a data
// group could not be decoded or encoded.
type RecordError struct {
	// Index is the position of the record within the biometric information
	// group template.
	Index int

	Err error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}
