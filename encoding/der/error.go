// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package der

import "errors"

var (
	// ErrMalformedEncoding is returned when the input is not a well-formed DER value.
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrSchemaViolation is returned when a value does not have the tag or kind
	// expected at its position in the schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrNumberFormat is returned when a scalar cannot be read as an integer.
	ErrNumberFormat = errors.New("invalid number format")
)

// Anomaly classifies a recoverable decoding irregularity. Anomalies are
// logged and reported to the decoder hook, but never abort decoding.
type Anomaly string

// Anomalies detected by this package.
const (
	AnomalyUntaggedChild Anomaly = "untagged_child"
	AnomalyDuplicateTag  Anomaly = "duplicate_tag"
	AnomalyTagMismatch   Anomaly = "tag_mismatch"
)
