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

// Type predicates (§4.3, "planned but specified"). Grounded on the
// teacher's is_* family in scm/declare.go; each simply reports a value's
// Kind.
func init() {
	register("number?", "#t if the argument is a number", 1, 1, predicate(func(v Value) bool { return v.IsNumber() }))
	register("boolean?", "#t if the argument is a boolean", 1, 1, predicate(func(v Value) bool { return v.IsBoolean() }))
	register("string?", "#t if the argument is a string", 1, 1, predicate(func(v Value) bool { return v.IsString() }))
	register("symbol?", "#t if the argument is a symbol", 1, 1, predicate(func(v Value) bool { return v.IsSymbol() }))
	register("list?", "#t if the argument is a list", 1, 1, predicate(func(v Value) bool { return v.IsList() }))
	register("procedure?", "#t if the argument is a builtin or lambda", 1, 1, predicate(func(v Value) bool { return v.IsProcedure() }))
}

func predicate(p func(v Value) bool) func(args []Value, pos *Position) (Value, error) {
	return func(args []Value, _ *Position) (Value, error) {
		return Bool(p(args[0])), nil
	}
}
