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
	"strings"
)

// Display renders a Value in the round-trip surface described in §6.2:
// shortest round-trip decimal for numbers (with the special spellings for
// infinities/NaN), #t/#f for booleans, "-escaped strings, bare identifier
// text for symbols, and parenthesized space-separated elements for lists.
// Nil and the empty list both render as "()".
//
// Grounded on scm/printer.go's String/SerializeEx (teacher repo), simplified
// to the closed set of kinds this evaluator core actually has (no vectors,
// FastDicts, parsers, or native-func pointer resolution).
func Display(v Value) string {
	var b strings.Builder
	writeDisplay(&b, v)
	return b.String()
}

func writeDisplay(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNil:
		b.WriteString("()")
	case KindBoolean:
		if v.AsBool() {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindNumber:
		b.WriteString(formatNumber(v.num))
	case KindString:
		b.WriteByte('"')
		b.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v.text))
		b.WriteByte('"')
	case KindSymbol:
		b.WriteString(v.text)
	case KindList:
		b.WriteByte('(')
		for i, elem := range v.list {
			if i != 0 {
				b.WriteByte(' ')
			}
			writeDisplay(b, elem)
		}
		b.WriteByte(')')
	case KindBuiltin:
		b.WriteString("#[builtin ")
		b.WriteString(v.builtin.Name)
		b.WriteByte(']')
	case KindLambda:
		b.WriteString("#[lambda]")
	default:
		b.WriteString("#[unknown]")
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "+nan.0"
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
