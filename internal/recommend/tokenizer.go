// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

package recommend

import (
	"regexp"
	"strings"
)

// tokenPattern matches runs of two or more letters, digits or underscores.
// Single-character tokens are dropped.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases s and splits it into feature terms.
//
//	Tokenize("Korean Low")  // ["korean", "low"]
//	Tokenize("한식 저가")    // ["한식", "저가"]
func Tokenize(s string) []string {
	return tokenPattern.FindAllString(strings.ToLower(s), -1)
}
