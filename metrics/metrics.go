// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

// Package metrics counts the records processed by the data group codecs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for data group encoding and decoding.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	// Decoded records by modality and encoding
	RecordsDecoded *prometheus.CounterVec

	// Encoded records by modality and encoding
	RecordsEncoded *prometheus.CounterVec

	// Random padding elements written to empty data groups
	RandomPadding prometheus.Counter

	// Recoverable anomalies found while decoding, by kind
	DecodeAnomalies *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered at reg.
// A nil reg leaves the metrics unregistered.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RecordsDecoded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lds_records_decoded_total",
			Help: "Total biometric records decoded by modality and encoding",
		}, []string{"modality", "encoding"}),

		RecordsEncoded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lds_records_encoded_total",
			Help: "Total biometric records encoded by modality and encoding",
		}, []string{"modality", "encoding"}),

		RandomPadding: f.NewCounter(prometheus.CounterOpts{
			Name: "lds_random_padding_written_total",
			Help: "Total random padding elements written to empty data groups",
		}),

		DecodeAnomalies: f.NewCounterVec(prometheus.CounterOpts{
			Name: "lds_decode_anomalies_total",
			Help: "Total recoverable anomalies found while decoding by kind",
		}, []string{"kind"}), // kind: "tag_mismatch", "unknown_tag", "unrecognized_code", ...
	}
}

// IncrementDecoded records a decoded record.
func (m *Metrics) IncrementDecoded(modality, encoding string) {
	if m != nil {
		m.RecordsDecoded.WithLabelValues(modality, encoding).Inc()
	}
}

// IncrementEncoded records an encoded record.
func (m *Metrics) IncrementEncoded(modality, encoding string) {
	if m != nil {
		m.RecordsEncoded.WithLabelValues(modality, encoding).Inc()
	}
}

// IncrementRandomPadding records a written random padding element.
func (m *Metrics) IncrementRandomPadding() {
	if m != nil {
		m.RandomPadding.Inc()
	}
}

// IncrementAnomaly records a recoverable decoding anomaly.
func (m *Metrics) IncrementAnomaly(kind string) {
	if m != nil {
		m.DecodeAnomalies.WithLabelValues(kind).Inc()
	}
}
