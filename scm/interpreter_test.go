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

func TestInterpreterRunSequencesTopLevelExpressions(t *testing.T) {
	it := New()
	v, err := it.Run("(define x 1) (define y 2) (+ x y)")
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 3 {
		t.Errorf("got %v", v)
	}
}

func TestInterpreterRunEmptySource(t *testing.T) {
	it := New()
	v, err := it.Run("   ; just a comment\n")
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsNil() {
		t.Errorf("empty program should yield Nil, got %v", v)
	}
}

func TestInterpreterDefineStagesBinding(t *testing.T) {
	it := New()
	it.Define("staged", Number(99))
	v, err := it.Run("staged")
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 99 {
		t.Errorf("got %v", v)
	}
}

func TestInterpreterParseThenEval(t *testing.T) {
	it := New()
	exprs, err := it.Parse("(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	if len(exprs) != 1 {
		t.Fatalf("got %d expressions", len(exprs))
	}
	v, err := it.Eval(exprs[0])
	if err != nil {
		t.Fatal(err)
	}
	if v.AsNumber() != 3 {
		t.Errorf("got %v", v)
	}
}

func TestInterpreterPropagatesParseError(t *testing.T) {
	it := New()
	if _, err := it.Run("(+ 1 2"); err == nil {
		t.Fatal("expected a parse error")
	}
}
