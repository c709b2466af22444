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

// specialForm implements one entry of the closed special-form dispatch
// table (§4.2). Operands arrive unevaluated; a handler decides for itself
// which to evaluate, in which environment, and in what order.
//
// A handler that wants its result reached via the tail-call loop (the
// taken branch of if, the last expression of begin/let/lambda-body)
// returns a non-nil tailExpr/tailEnv instead of evaluating it directly —
// Eval jumps back to its dispatch loop with that pair rather than
// recursing, which is what makes the branch a genuine tail position
// instead of merely "evaluated last" (§4.4/§4.5).
type specialForm func(args []Expression, env *Environment, pos *Position) (result Value, tailExpr *Expression, tailEnv *Environment, err error)

var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"if":     evalIf,
		"quote":  evalQuote,
		"define": evalDefine,
		"let":    evalLet,
		"lambda": evalLambda,
		"begin":  evalBegin,
		"and":    evalAnd,
		"or":     evalOr,
		"async":  evalAsync,
	}
}

func lookupSpecialForm(name string) (specialForm, bool) {
	f, ok := specialForms[name]
	return f, ok
}

// evalIf implements `(if test consequent alternative)` (§4.2). Tail
// position of if is tail position of whichever branch is taken.
func evalIf(args []Expression, env *Environment, pos *Position) (Value, *Expression, *Environment, error) {
	if len(args) != 3 {
		return Value{}, nil, nil, errArityError(pos, "if: expected 3 operands (test consequent alternative), got %d", len(args))
	}
	test, err := Eval(args[0], env)
	if err != nil {
		return Value{}, nil, nil, err
	}
	if test.Truthy() {
		return Value{}, &args[1], env, nil
	}
	return Value{}, &args[2], env, nil
}

// evalQuote implements the `(quote e)` list-syntax form of quotation; the
// `'e` reader shorthand is instead represented directly as an ExprQuote
// node and handled in Eval's main switch. Both converge on valueImage.
func evalQuote(args []Expression, _ *Environment, pos *Position) (Value, *Expression, *Environment, error) {
	if len(args) != 1 {
		return Value{}, nil, nil, errArityError(pos, "quote: expected 1 operand, got %d", len(args))
	}
	return valueImage(args[0]), nil, nil, nil
}

// evalDefine implements both forms of define (§4.2):
//
//	(define <symbol> <expr>)
//	(define (<name> <param>...) <body>...)   ; sugar for (define name (lambda ...))
//
// Always returns Nil and installs into env's own frame, overwriting a
// pre-existing same-frame binding (idempotent redefinition).
func evalDefine(args []Expression, env *Environment, pos *Position) (Value, *Expression, *Environment, error) {
	if len(args) < 2 {
		return Value{}, nil, nil, errArityError(pos, "define: expected at least 2 operands, got %d", len(args))
	}
	head := args[0]

	switch head.kind {
	case ExprAtom:
		if head.atom.kind != KindSymbol {
			return Value{}, nil, nil, errTypeError(pos, "define: binding target must be a symbol, got %s", head.atom.TypeName())
		}
		if len(args) != 2 {
			return Value{}, nil, nil, errArityError(pos, "define: expected exactly 2 operands for (define <symbol> <expr>), got %d", len(args))
		}
		val, err := Eval(args[1], env)
		if err != nil {
			return Value{}, nil, nil, err
		}
		env.Define(head.atom.text, val)
		return Nil, nil, nil, nil

	case ExprList:
		if len(head.elements) == 0 {
			return Value{}, nil, nil, errSyntaxError(pos, "define: function signature must start with a name")
		}
		nameExpr := head.elements[0]
		if nameExpr.kind != ExprAtom || nameExpr.atom.kind != KindSymbol {
			return Value{}, nil, nil, errTypeError(pos, "define: function name must be a symbol")
		}
		params, err := symbolParams(head.elements[1:], "define")
		if err != nil {
			return Value{}, nil, nil, err
		}
		body := args[1:]
		lam, err := NewLambda(params, body, env, pos)
		if err != nil {
			return Value{}, nil, nil, err
		}
		lam.AsLambda().Name = nameExpr.atom.text
		env.Define(nameExpr.atom.text, lam)
		return Nil, nil, nil, nil

	default:
		return Value{}, nil, nil, errTypeError(pos, "define: invalid binding target")
	}
}

// evalLet implements simultaneous binding (§4.2): each init expression is
// evaluated in the outer environment (siblings cannot see each other),
// then a single child frame binds every name before the body runs.
func evalLet(args []Expression, env *Environment, pos *Position) (Value, *Expression, *Environment, error) {
	if len(args) < 2 {
		return Value{}, nil, nil, errArityError(pos, "let: expected a binding list and a non-empty body, got %d operand(s)", len(args))
	}
	bindingsExpr := args[0]
	body := args[1:]
	if bindingsExpr.kind != ExprList {
		return Value{}, nil, nil, errTypeError(pos, "let: bindings must be a list of (symbol expr) pairs")
	}

	names := make([]string, len(bindingsExpr.elements))
	values := make([]Value, len(bindingsExpr.elements))
	seen := make(map[string]bool, len(bindingsExpr.elements))
	for i, binding := range bindingsExpr.elements {
		if binding.kind != ExprList || len(binding.elements) != 2 {
			return Value{}, nil, nil, errSyntaxError(pos, "let: each binding must be (symbol expr)")
		}
		symExpr := binding.elements[0]
		if symExpr.kind != ExprAtom || symExpr.atom.kind != KindSymbol {
			return Value{}, nil, nil, errTypeError(pos, "let: binding name must be a symbol")
		}
		name := symExpr.atom.text
		if seen[name] {
			return Value{}, nil, nil, errRuntimeError(pos, "let: duplicate binding name %q", name)
		}
		seen[name] = true

		val, err := Eval(binding.elements[1], env) // outer env: siblings not yet visible
		if err != nil {
			return Value{}, nil, nil, err
		}
		names[i] = name
		values[i] = val
	}

	child := env.Extend()
	for i, name := range names {
		child.Define(name, values[i])
	}

	for _, e := range body[:len(body)-1] {
		if _, err := Eval(e, child); err != nil {
			return Value{}, nil, nil, err
		}
	}
	return Value{}, &body[len(body)-1], child, nil
}

// evalLambda implements procedure construction (§4.2): validate
// parameters and body, capture env by reference, return a Lambda value.
func evalLambda(args []Expression, env *Environment, pos *Position) (Value, *Expression, *Environment, error) {
	if len(args) < 2 {
		return Value{}, nil, nil, errArityError(pos, "lambda: expected a parameter list and a non-empty body, got %d operand(s)", len(args))
	}
	paramsExpr := args[0]
	if paramsExpr.kind != ExprList {
		return Value{}, nil, nil, errTypeError(pos, "lambda: parameter list must be a list of symbols")
	}
	params, err := symbolParams(paramsExpr.elements, "lambda")
	if err != nil {
		return Value{}, nil, nil, err
	}
	lam, err := NewLambda(params, args[1:], env, pos)
	if err != nil {
		return Value{}, nil, nil, err
	}
	return lam, nil, nil, nil
}

// evalBegin implements sequencing (§4.2): every expression but the last is
// evaluated for effect; the last is in tail position.
func evalBegin(args []Expression, env *Environment, _ *Position) (Value, *Expression, *Environment, error) {
	if len(args) == 0 {
		return Nil, nil, nil, nil
	}
	for _, e := range args[:len(args)-1] {
		if _, err := Eval(e, env); err != nil {
			return Value{}, nil, nil, err
		}
	}
	return Value{}, &args[len(args)-1], env, nil
}

// evalAnd implements short-circuit conjunction (§4.2): no operands → #t;
// otherwise the first falsy result short-circuits, without evaluating the
// remainder, and the last value is returned when every operand is truthy.
func evalAnd(args []Expression, env *Environment, _ *Position) (Value, *Expression, *Environment, error) {
	if len(args) == 0 {
		return True, nil, nil, nil
	}
	var result Value
	for _, e := range args {
		v, err := Eval(e, env)
		if err != nil {
			return Value{}, nil, nil, err
		}
		if !v.Truthy() {
			return False, nil, nil, nil
		}
		result = v
	}
	return result, nil, nil, nil
}

// evalOr implements short-circuit disjunction (§4.2): no operands → #f;
// otherwise the first truthy result is returned immediately, without
// evaluating the remainder; #f if none are truthy.
func evalOr(args []Expression, env *Environment, _ *Position) (Value, *Expression, *Environment, error) {
	if len(args) == 0 {
		return False, nil, nil, nil
	}
	for _, e := range args {
		v, err := Eval(e, env)
		if err != nil {
			return Value{}, nil, nil, err
		}
		if v.Truthy() {
			return v, nil, nil, nil
		}
	}
	return False, nil, nil, nil
}

// evalAsync sketches the interface shape of the planned fiber-based
// `async` form (§5; SPEC_FULL §C.1): it would capture env and the
// expression sequence, hand them to a fiber scheduler, and return a
// TaskHandle immediately. No scheduler exists yet, so — exactly like
// original_source/src/runtime/special_forms/concurrency.rs's eval_async
// stub — it reports the gap as a RuntimeError rather than silently
// evaluating synchronously, which would give callers the wrong semantics
// (a synchronous value instead of a TaskHandle).
func evalAsync(_ []Expression, _ *Environment, pos *Position) (Value, *Expression, *Environment, error) {
	return Value{}, nil, nil, errRuntimeError(pos, "async: fiber scheduler not implemented")
}

func symbolParams(exprs []Expression, formName string) ([]string, error) {
	params := make([]string, len(exprs))
	for i, p := range exprs {
		if p.kind != ExprAtom || p.atom.kind != KindSymbol {
			return nil, errTypeError(p.pos, "%s: parameter %d must be a symbol", formName, i)
		}
		params[i] = p.atom.text
	}
	return params, nil
}
