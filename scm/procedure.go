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

import "strconv"

// Builtin is an opaque, named callable primitive (§3.1). Builtins receive
// already-evaluated argument vectors and cannot see the caller's
// environment, which is what lets Eval's tail-call loop dispatch straight
// to Fn without allocating a new Environment frame (§4.4).
//
// Grounded on the (Declaration, Fn func(...Scmer) Scmer) pair in the
// teacher's scm/declare.go, adjusted to return an error instead of
// panicking and to carry documentation fields an embedder's `help`
// tooling can use.
type Builtin struct {
	Name        string
	Description string
	MinArgs     int
	MaxArgs     int // -1 means unbounded
	Fn          func(args []Value, pos *Position) (Value, error)
}

// NewBuiltin wraps fn as a callable Value, checking arity itself so every
// primitive doesn't have to repeat the same bounds check.
func NewBuiltin(name, description string, minArgs, maxArgs int, fn func(args []Value, pos *Position) (Value, error)) Value {
	return builtinValue(&Builtin{
		Name:        name,
		Description: description,
		MinArgs:     minArgs,
		MaxArgs:     maxArgs,
		Fn:          fn,
	})
}

// checkArity validates argument count against [MinArgs, MaxArgs] before Fn
// runs, producing a consistent ArityError message (§7) across every
// built-in.
func (b *Builtin) checkArity(args []Value, pos *Position) error {
	n := len(args)
	if n < b.MinArgs || (b.MaxArgs >= 0 && n > b.MaxArgs) {
		return errArityError(pos, "%s: expected %s, got %d", b.Name, arityRange(b.MinArgs, b.MaxArgs), n)
	}
	return nil
}

func arityRange(min, max int) string {
	switch {
	case max < 0:
		return strconv.Itoa(min) + " or more arguments"
	case min == max:
		return strconv.Itoa(min) + " argument(s)"
	default:
		return strconv.Itoa(min) + " to " + strconv.Itoa(max) + " arguments"
	}
}

// Call checks arity and invokes the builtin.
func (b *Builtin) Call(args []Value, pos *Position) (Value, error) {
	if err := b.checkArity(args, pos); err != nil {
		return Value{}, err
	}
	return b.Fn(args, pos)
}

// Lambda is a user-defined procedure: an ordered list of unique formal
// parameters, a non-empty body sequence, and a captured reference to the
// defining environment (§3.3). Capture is by reference — the Environment
// pointer is shared, never copied — so a closure always observes
// subsequent same-frame defines made before the closure's frame was
// extended, per §9's design note and the SPEC_FULL open-question decision.
type Lambda struct {
	Params []string
	Body   []Expression
	Env    *Environment
	Name   string // best-effort, for display/debugging; "" for anonymous lambdas
}

// NewLambda validates parameter uniqueness and body non-emptiness (§3.3)
// and returns a Lambda Value capturing env.
func NewLambda(params []string, body []Expression, env *Environment, pos *Position) (Value, error) {
	if len(body) == 0 {
		return Value{}, errRuntimeError(pos, "lambda: body must be non-empty")
	}
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p] {
			return Value{}, errRuntimeError(pos, "lambda: duplicate parameter %q", p)
		}
		seen[p] = true
	}
	return lambdaValue(&Lambda{Params: params, Body: body, Env: env}), nil
}

// Arity returns the lambda's fixed parameter count; there are no rest
// parameters in this core (§3.3).
func (l *Lambda) Arity() int { return len(l.Params) }

// bind creates the child activation frame for one call: a new child of the
// lambda's captured environment (never the caller's), with each parameter
// bound to its argument (§4.4 steps 2-3).
func (l *Lambda) bind(args []Value, pos *Position) (*Environment, error) {
	if len(args) != len(l.Params) {
		return nil, errArityError(pos, "procedure expected %d argument(s), got %d", len(l.Params), len(args))
	}
	frame := l.Env.Extend()
	for i, p := range l.Params {
		frame.Define(p, args[i])
	}
	return frame, nil
}
