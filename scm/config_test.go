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

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLimitsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limits.yaml")
	content := "maxCallDepth: 1000\nmaxListLength: 500\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	limits, err := LoadLimits(path)
	if err != nil {
		t.Fatal(err)
	}
	if limits.MaxCallDepth != 1000 || limits.MaxListLength != 500 {
		t.Errorf("got %+v", limits)
	}
}

func TestDefaultLimitsAreUnbounded(t *testing.T) {
	if err := DefaultLimits.CheckCallDepth(1_000_000); err != nil {
		t.Errorf("zero MaxCallDepth should mean unlimited, got %v", err)
	}
	if err := DefaultLimits.CheckListLength(1_000_000); err != nil {
		t.Errorf("zero MaxListLength should mean unlimited, got %v", err)
	}
}

func TestLimitsRejectOverBudget(t *testing.T) {
	l := Limits{MaxCallDepth: 10, MaxListLength: 5}
	if err := l.CheckCallDepth(11); err == nil {
		t.Error("expected an error once depth exceeds the configured limit")
	}
	if err := l.CheckListLength(6); err == nil {
		t.Error("expected an error once length exceeds the configured limit")
	}
}
