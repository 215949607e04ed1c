// SPDX-FileCopyrightText: 2023-2024 Steffen Vogel <post@steffenvogel.de>
// SPDX-License-Identifier: Apache-2.0

package lds

import (
	"crypto/rand"
	"io"
	"log/slog"

	"cunicu.li/go-lds/encoding/der"
	"cunicu.li/go-lds/metrics"
)

// Option configures the decoding and encoding of data groups.
type Option func(*config)

type config struct {
	logger        *slog.Logger
	metrics       *metrics.Metrics
	random        io.Reader
	maxDepth      int
	randomPadding bool
}

// WithLogger sets the logger which receives decoding anomalies.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics counts decoded and encoded records in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithRandom sets the source of the random padding.
// By default crypto/rand is used.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		if r != nil {
			c.random = r
		}
	}
}

// WithMaxDepth limits the nesting of ISO/IEC 39794 data blocks.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithRandomPadding appends random discretionary data to data groups without
// any records.
func WithRandomPadding(enabled bool) Option {
	return func(c *config) {
		c.randomPadding = enabled
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		random:   rand.Reader,
		maxDepth: der.DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *config) decoder() *der.Decoder {
	m := c.metrics

	return der.NewDecoder(
		der.WithLogger(c.logger),
		der.WithMaxDepth(c.maxDepth),
		der.WithAnomalyHook(func(a der.Anomaly) {
			m.IncrementAnomaly(string(a))
		}),
	)
}
