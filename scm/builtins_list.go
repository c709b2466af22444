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

// List-operation builtins (§4.3). Grounded on the teacher's scm/list.go
// (car/cdr/cons/list primitives over its own cons-cell representation),
// adapted to this package's slice-backed List value and to returning
// DomainError/TypeError instead of panicking.
func init() {
	register("car", "first element of a non-empty list", 1, 1, builtinCar)
	register("cdr", "list with its first element removed", 1, 1, builtinCdr)
	register("cons", "prepend an element to a list", 2, 2, builtinCons)
	register("list", "construct a list from its arguments, in order", 0, -1, builtinList)
	register("null?", "#t for the empty list (or Nil), #f otherwise", 1, 1, builtinNullP)
	register("length", "number of elements in a list", 1, 1, builtinLength)
}

func builtinCar(args []Value, pos *Position) (Value, error) {
	v := args[0]
	if !v.IsList() {
		return Value{}, errTypeError(pos, "car: expected list, got %s", v.TypeName())
	}
	if v.IsEmptyList() {
		return Value{}, errDomainError(pos, "car: empty list has no first element")
	}
	return v.AsList()[0], nil
}

func builtinCdr(args []Value, pos *Position) (Value, error) {
	v := args[0]
	if !v.IsList() {
		return Value{}, errTypeError(pos, "cdr: expected list, got %s", v.TypeName())
	}
	if v.IsEmptyList() {
		return Value{}, errDomainError(pos, "cdr: empty list has no remainder")
	}
	rest := v.AsList()[1:]
	return List(append([]Value(nil), rest...)), nil
}

func builtinCons(args []Value, pos *Position) (Value, error) {
	tail := args[1]
	if !tail.IsList() {
		return Value{}, errTypeError(pos, "cons: second argument must be a list, got %s", tail.TypeName())
	}
	n := len(tail.AsList()) + 1
	if err := ActiveLimits.CheckListLength(n); err != nil {
		return Value{}, err
	}
	elems := make([]Value, 0, n)
	elems = append(elems, args[0])
	elems = append(elems, tail.AsList()...)
	return List(elems), nil
}

func builtinList(args []Value, pos *Position) (Value, error) {
	if err := ActiveLimits.CheckListLength(len(args)); err != nil {
		return Value{}, err
	}
	return List(append([]Value(nil), args...)), nil
}

func builtinNullP(args []Value, _ *Position) (Value, error) {
	return Bool(args[0].IsNullish()), nil
}

func builtinLength(args []Value, pos *Position) (Value, error) {
	v := args[0]
	if !v.IsList() {
		return Value{}, errTypeError(pos, "length: expected list, got %s", v.TypeName())
	}
	return Number(float64(len(v.AsList()))), nil
}
