// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package iso39794

import (
	"errors"

	"cunicu.li/go-lds/encoding/der"
)

// Anomalies detected while decoding blocks.
const (
	AnomalyUnknownTag       der.Anomaly = "unknown_tag"
	AnomalyUnrecognizedCode der.Anomaly = "unrecognized_code"
)

var (
	errInvalidField    = errors.New("invalid block field")
	errNotABlock       = errors.New("not a block")
	errUnknownChoice   = errors.New("unknown choice alternative")
	errScoreRange      = errors.New("score out of range")
	errMissingField    = errors.New("missing mandatory field")
	errUnencodableEnum = errors.New("unrecognized code cannot be encoded")
	errAmbiguousList   = errors.New("single empty element in mandatory list")
)
