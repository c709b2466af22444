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

import "testing"

func TestIf(t *testing.T) {
	if v := evalSource(t, "(if #t 1 2)"); v.AsNumber() != 1 {
		t.Errorf("got %v", v)
	}
	if v := evalSource(t, "(if #f 1 2)"); v.AsNumber() != 2 {
		t.Errorf("got %v", v)
	}
	// every non-#f value is truthy
	if v := evalSource(t, "(if 0 1 2)"); v.AsNumber() != 1 {
		t.Errorf("got %v", v)
	}
}

func TestIfArity(t *testing.T) {
	ee := evalErr(t, "(if #t 1)")
	if ee.Kind != ErrArityError {
		t.Errorf("got %v", ee.Kind)
	}
}

func TestDefineSymbolForm(t *testing.T) {
	v := evalSource(t, "(define x 10) x")
	if v.AsNumber() != 10 {
		t.Errorf("got %v", v)
	}
}

func TestDefineFunctionForm(t *testing.T) {
	v := evalSource(t, "(define (square x) (* x x)) (square 7)")
	if v.AsNumber() != 49 {
		t.Errorf("got %v", v)
	}
}

func TestLambdaAndApplication(t *testing.T) {
	v := evalSource(t, "((lambda (x y) (+ x y)) 3 4)")
	if v.AsNumber() != 7 {
		t.Errorf("got %v", v)
	}
}

func TestLambdaDuplicateParams(t *testing.T) {
	ee := evalErr(t, "(lambda (x x) x)")
	if ee.Kind != ErrRuntimeError {
		t.Errorf("got %v", ee.Kind)
	}
}

func TestBegin(t *testing.T) {
	v := evalSource(t, "(begin 1 2 3)")
	if v.AsNumber() != 3 {
		t.Errorf("got %v", v)
	}
	if v := evalSource(t, "(begin)"); !v.IsNil() {
		t.Errorf("empty begin should be Nil, got %v", v)
	}
}

func TestAndShortCircuits(t *testing.T) {
	it := New()
	var evaluated []string
	mark := func(name string, result Value) Value {
		it.Define(name, NewBuiltin(name, "", 0, 0, func(_ []Value, _ *Position) (Value, error) {
			evaluated = append(evaluated, name)
			return result, nil
		}))
		return result
	}
	mark("a", False)
	mark("b", True)

	v, err := it.Run("(and (a) (b))")
	if err != nil {
		t.Fatal(err)
	}
	if v.Truthy() {
		t.Errorf("expected #f, got %s", Display(v))
	}
	if len(evaluated) != 1 || evaluated[0] != "a" {
		t.Errorf("and must not evaluate past the first falsy operand, evaluated %v", evaluated)
	}
}

func TestOrShortCircuits(t *testing.T) {
	it := New()
	var evaluated []string
	it.Define("a", NewBuiltin("a", "", 0, 0, func(_ []Value, _ *Position) (Value, error) {
		evaluated = append(evaluated, "a")
		return Number(1), nil
	}))
	it.Define("b", NewBuiltin("b", "", 0, 0, func(_ []Value, _ *Position) (Value, error) {
		evaluated = append(evaluated, "b")
		return Number(2), nil
	}))

	v, err := it.Run("(or (a) (b))")
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 1 {
		t.Errorf("got %v", v)
	}
	if len(evaluated) != 1 || evaluated[0] != "a" {
		t.Errorf("or must not evaluate past the first truthy operand, evaluated %v", evaluated)
	}
}

func TestAndOrEmptyIdentities(t *testing.T) {
	if v := evalSource(t, "(and)"); !v.AsBool() {
		t.Errorf("(and) must be #t")
	}
	if v := evalSource(t, "(or)"); v.AsBool() {
		t.Errorf("(or) must be #f")
	}
}

func TestLetBindings(t *testing.T) {
	v := evalSource(t, "(let ((x 1) (y 2)) (+ x y))")
	if v.AsNumber() != 3 {
		t.Errorf("got %v", v)
	}
}

func TestLetDuplicateBindingName(t *testing.T) {
	ee := evalErr(t, "(let ((x 1) (x 2)) x)")
	if ee.Kind != ErrRuntimeError {
		t.Errorf("got %v", ee.Kind)
	}
}

func TestAsyncNotImplemented(t *testing.T) {
	ee := evalErr(t, "(async 1)")
	if ee.Kind != ErrRuntimeError {
		t.Errorf("got %v", ee.Kind)
	}
}
