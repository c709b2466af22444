/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)
Copyright (C) 2026  tailform authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"math"
	"strconv"
)

// ParseNumber recognizes the literal spellings the parser (and, for
// embedders that build Values directly, callers) must accept: ordinary
// decimal integers and fractions, scientific notation, and the Scheme
// spellings for the IEEE special values (§6.1).
//
// Grounded on original_source/src/types/number.rs's FromStr impl, which is
// the Rust reference this spelling table was distilled from.
func ParseNumber(s string) (Value, bool) {
	switch s {
	case "+inf.0", "+infinity":
		return Number(math.Inf(1)), true
	case "-inf.0", "-infinity":
		return Number(math.Inf(-1)), true
	case "+nan.0", "nan":
		return Number(math.NaN()), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, false
	}
	return Number(f), true
}

// LooksLikeNumber reports whether s is a complete numeric literal, i.e.
// whether ParseNumber would accept it; it parses s in full. The reader
// classifies barewords through ParseNumber directly.
func LooksLikeNumber(s string) bool {
	if s == "" {
		return false
	}
	switch s {
	case "+inf.0", "-inf.0", "+infinity", "-infinity", "+nan.0", "nan":
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
