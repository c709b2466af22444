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

func TestArithmeticIdentities(t *testing.T) {
	if v := evalSource(t, "(+ )"); v.AsNumber() != 0 {
		t.Errorf("(+) should be 0, got %v", v)
	}
	if v := evalSource(t, "(* )"); v.AsNumber() != 1 {
		t.Errorf("(*) should be 1, got %v", v)
	}
	if v := evalSource(t, "(- 5)"); v.AsNumber() != -5 {
		t.Errorf("(- 5) should negate, got %v", v)
	}
	if v := evalSource(t, "(/ 4)"); v.AsNumber() != 0.25 {
		t.Errorf("(/ 4) should be reciprocal, got %v", v)
	}
}

func TestDivisionByZero(t *testing.T) {
	ee := evalErr(t, "(/ 1 0)")
	if ee.Kind != ErrDivisionByZero {
		t.Errorf("got %v", ee.Kind)
	}
	ee = evalErr(t, "(/ 0)")
	if ee.Kind != ErrDivisionByZero {
		t.Errorf("got %v", ee.Kind)
	}
}

func TestChainedComparisons(t *testing.T) {
	if v := evalSource(t, "(< 1 2 3)"); !v.AsBool() {
		t.Error("1<2<3 should hold")
	}
	if v := evalSource(t, "(< 1 3 2)"); v.AsBool() {
		t.Error("1<3 but 3<2 is false, chain should fail")
	}
	if v := evalSource(t, "(<= 1 1 2)"); !v.AsBool() {
		t.Error("1<=1<=2 should hold")
	}
}

func TestArithmeticTypeError(t *testing.T) {
	ee := evalErr(t, `(+ 1 "x")`)
	if ee.Kind != ErrTypeError {
		t.Errorf("got %v", ee.Kind)
	}
}

func TestListBuiltins(t *testing.T) {
	if v := evalSource(t, "(car (list 1 2 3))"); v.AsNumber() != 1 {
		t.Errorf("got %v", v)
	}
	v := evalSource(t, "(cdr (list 1 2 3))")
	if !v.IsList() || len(v.AsList()) != 2 {
		t.Errorf("got %#v", v)
	}
	v = evalSource(t, "(cons 1 (list 2 3))")
	if Display(v) != "(1 2 3)" {
		t.Errorf("got %s", Display(v))
	}
	if v := evalSource(t, "(null? (list))"); !v.AsBool() {
		t.Error("empty list should be null?")
	}
	if v := evalSource(t, "(length (list 1 2 3))"); v.AsNumber() != 3 {
		t.Errorf("got %v", v)
	}
}

func TestCarCdrErrors(t *testing.T) {
	ee := evalErr(t, "(car (list))")
	if ee.Kind != ErrDomainError {
		t.Errorf("car of empty list should be DomainError, got %v", ee.Kind)
	}
	ee = evalErr(t, "(car 5)")
	if ee.Kind != ErrTypeError {
		t.Errorf("car of non-list should be TypeError, got %v", ee.Kind)
	}
}

func TestConsRejectsNonListTail(t *testing.T) {
	ee := evalErr(t, "(cons 1 2)")
	if ee.Kind != ErrTypeError {
		t.Errorf("got %v", ee.Kind)
	}
}

func TestActiveLimitsBoundsListLength(t *testing.T) {
	saved := ActiveLimits
	defer func() { ActiveLimits = saved }()
	SetLimits(Limits{MaxListLength: 3})

	ee := evalErr(t, "(list 1 2 3 4)")
	if ee.Kind != ErrDomainError {
		t.Errorf("list over the configured limit should be DomainError, got %v", ee.Kind)
	}
	ee = evalErr(t, "(cons 1 (list 2 3 4))")
	if ee.Kind != ErrDomainError {
		t.Errorf("cons growing past the configured limit should be DomainError, got %v", ee.Kind)
	}

	if v := evalSource(t, "(list 1 2 3)"); len(v.AsList()) != 3 {
		t.Errorf("list at exactly the limit should still succeed, got %v", v)
	}
}

func TestTypePredicates(t *testing.T) {
	cases := map[string]bool{
		"(number? 1)":     true,
		"(number? \"x\")":  false,
		"(boolean? #t)":   true,
		"(string? \"x\")":  true,
		"(symbol? 'x)":    true,
		"(list? (list))":  true,
		"(list? 1)":       false,
	}
	for src, want := range cases {
		if v := evalSource(t, src); v.AsBool() != want {
			t.Errorf("%s: got %v, want %v", src, v.AsBool(), want)
		}
	}
}

func TestHelpListsEveryBuiltin(t *testing.T) {
	docs := Help()
	if len(docs) == 0 {
		t.Fatal("expected at least one registered builtin")
	}
	names := map[string]bool{}
	for _, d := range docs {
		names[d.Name] = true
	}
	for _, want := range []string{"+", "-", "*", "/", "=", "<", ">", "<=", ">=", "car", "cdr", "cons", "list", "null?", "length", "number?", "boolean?", "string?", "symbol?", "list?", "procedure?"} {
		if !names[want] {
			t.Errorf("Help() missing builtin %q", want)
		}
	}
}
