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

// Equal implements structural equality over Values, grounded on
// scm/compare.go's tag-dispatched Equal (teacher repo) but adjusted to the
// spec's exact rules (§3.1):
//   - Number equality follows IEEE 754 (NaN != NaN, including NaN != itself).
//   - A Symbol and a String with the same text are never equal — kinds
//     must match first, unlike the teacher's looser reflect.DeepEqual.
//   - Lists compare element-wise, in order; Nil equals only Nil, and is
//     distinct from the empty list for Equal purposes even though both
//     display as "()" and are both truthy (§9 open question (b)).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindBoolean:
		return a.num == b.num
	case KindNumber:
		return a.num == b.num // NaN != NaN falls out of plain float64 ==
	case KindString, KindSymbol:
		return a.text == b.text
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindBuiltin:
		return a.builtin == b.builtin
	case KindLambda:
		return a.lambda == b.lambda
	default:
		return false
	}
}
