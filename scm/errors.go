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

import "fmt"

// ErrorKind tags the stable taxonomy from §7. Names are illustrative in the
// spec; the tags below are what code should switch on.
type ErrorKind uint8

const (
	ErrSyntaxError ErrorKind = iota
	ErrParseError
	ErrUnboundIdentifier
	ErrTypeError
	ErrArityError
	ErrDomainError
	ErrDivisionByZero
	ErrRuntimeError
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntaxError:
		return "SyntaxError"
	case ErrParseError:
		return "ParseError"
	case ErrUnboundIdentifier:
		return "UnboundIdentifier"
	case ErrTypeError:
		return "TypeError"
	case ErrArityError:
		return "ArityError"
	case ErrDomainError:
		return "DomainError"
	case ErrDivisionByZero:
		return "DivisionByZero"
	case ErrRuntimeError:
		return "RuntimeError"
	default:
		return "UnknownError"
	}
}

// Position locates an error within source text; both fields are 1-based.
// Grounded on original_source/src/error.rs's SyntaxError{line, column} and
// CWBudde/go-dws/internal/interp/errors's lexer.Position-carrying errors.
type Position struct {
	Line   int
	Column int
}

// EvalError is the single structured error type every evaluator and
// builtin operation returns, replacing the teacher's panic()-based
// primitives (scm/scm.go, scm/list.go) with ordinary Go error returns, per
// §7's "no local recovery inside the core" — propagation is just returning
// the error up the call stack.
type EvalError struct {
	Kind    ErrorKind
	Message string
	Pos     *Position // nil when no source position is available
}

func (e *EvalError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("%s: %s (line %d, column %d)", e.Kind, e.Message, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// UserMessage renders the single-line, end-user-facing form described in
// §6.3/§7: "Error: <kind>: <message>".
func (e *EvalError) UserMessage() string {
	return "Error: " + e.Error()
}

func newError(kind ErrorKind, pos *Position, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func errUnboundIdentifier(pos *Position, name string) *EvalError {
	return newError(ErrUnboundIdentifier, pos, "unbound identifier: %s", name)
}

func errTypeError(pos *Position, format string, args ...any) *EvalError {
	return newError(ErrTypeError, pos, format, args...)
}

func errArityError(pos *Position, format string, args ...any) *EvalError {
	return newError(ErrArityError, pos, format, args...)
}

func errDomainError(pos *Position, format string, args ...any) *EvalError {
	return newError(ErrDomainError, pos, format, args...)
}

func errDivisionByZero(pos *Position) *EvalError {
	return newError(ErrDivisionByZero, pos, "division by zero")
}

func errRuntimeError(pos *Position, format string, args ...any) *EvalError {
	return newError(ErrRuntimeError, pos, format, args...)
}

func errSyntaxError(pos *Position, format string, args ...any) *EvalError {
	return newError(ErrSyntaxError, pos, format, args...)
}

func errParseError(format string, args ...any) *EvalError {
	return newError(ErrParseError, nil, format, args...)
}

func errEmptyApplication(pos *Position) *EvalError {
	return newError(ErrRuntimeError, pos, "empty application: () is not a valid call")
}
