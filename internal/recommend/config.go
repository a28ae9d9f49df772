// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

// DefaultTopK is the number of recommendations returned per lookup.
const DefaultTopK = 5

// Config contains configuration for the recommendation service.
type Config struct {
	// TopK is the maximum number of recommendations per response.
	TopK int
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{TopK: DefaultTopK}
}

func (c Config) withDefaults() Config {
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	return c
}
