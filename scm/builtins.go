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

import "sort"

// declaration pairs a Builtin-shaped registration with the function that
// builds it, mirroring the teacher's Declaration{Name, Fn} pattern in
// scm/declare.go, which this package's builtin registry is grounded on —
// adapted so registration produces a Value/error-returning Builtin instead
// of panicking directly into a Scmer.
type declaration struct {
	name        string
	description string
	minArgs     int
	maxArgs     int
	fn          func(args []Value, pos *Position) (Value, error)
}

// registry collects every declaration contributed by the builtins_*.go
// files via register. init() order across files in a package is
// unspecified but each file's own init only appends to registry, so the
// final contents are order-independent.
var registry []declaration

func register(name, description string, minArgs, maxArgs int, fn func(args []Value, pos *Position) (Value, error)) {
	registry = append(registry, declaration{name, description, minArgs, maxArgs, fn})
}

// NewGlobalEnvironment returns a fresh root Environment with every built-in
// procedure pre-bound (§4.3), ready to be extended for a program's
// top-level defines.
func NewGlobalEnvironment() *Environment {
	env := NewEnvironment()
	for _, d := range registry {
		env.Define(d.name, NewBuiltin(d.name, d.description, d.minArgs, d.maxArgs, d.fn))
	}
	return env
}

// Help returns the registered builtins' names and descriptions, sorted by
// name, for an embedder's `help`/`:doc` tooling.
func Help() []struct{ Name, Description string } {
	out := make([]struct{ Name, Description string }, len(registry))
	for i, d := range registry {
		out[i] = struct{ Name, Description string }{d.name, d.description}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
