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

// Interpreter is the embedding contract promised by §6.4: a fresh,
// built-ins-populated environment, source parsing, single-expression
// evaluation, and the ability to stage bindings before running a program.
// cmd/schemer (run/eval/repl) and tests are the only intended callers;
// scm itself has no notion of stdin/stdout.
type Interpreter struct {
	Env *Environment
}

// New returns an Interpreter whose environment pre-binds every built-in
// procedure (§4.3, §6.4).
func New() *Interpreter {
	return &Interpreter{Env: NewGlobalEnvironment()}
}

// Parse reads source into its top-level expressions (§3.4, §6).
func (it *Interpreter) Parse(source string) ([]Expression, error) {
	return Read(source)
}

// Eval evaluates a single parsed expression against the interpreter's
// environment.
func (it *Interpreter) Eval(expr Expression) (Value, error) {
	return Eval(expr, it.Env)
}

// Run parses and evaluates every top-level expression in source in
// sequence, returning the value of the last one (or Nil for empty
// source). This is the batch-mode entry point cmd/schemer's `run`
// subcommand drives.
func (it *Interpreter) Run(source string) (Value, error) {
	exprs, err := it.Parse(source)
	if err != nil {
		return Value{}, err
	}
	result := Nil
	for _, e := range exprs {
		v, err := it.Eval(e)
		if err != nil {
			return Value{}, err
		}
		result = v
	}
	return result, nil
}

// Define installs a binding directly into the interpreter's top-level
// environment, bypassing parsing and evaluation. Used by tests to stage
// inputs (§6.4) and by an embedder wiring host values into a program.
func (it *Interpreter) Define(name string, v Value) {
	it.Env.Define(name, v)
}
