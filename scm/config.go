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
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Limits bounds resource-sensitive parts of evaluation. These are not
// evaluator invariants but resource guards an embedder can tune
// (SPEC_FULL §A.3): the evaluator itself stays bound only by TCO
// and the Go stack, and an embedder who wants a hard ceiling loads Limits
// from YAML the way the teacher's deployment config does.
type Limits struct {
	MaxCallDepth  int `yaml:"maxCallDepth"`
	MaxListLength int `yaml:"maxListLength"`
}

// DefaultLimits mirrors "no additional limit beyond the host's own stack
// and memory" — both fields zero means unlimited per CheckCallDepth/
// CheckListLength below.
var DefaultLimits = Limits{}

// ActiveLimits is what Eval (call depth) and the cons/list builtins (list
// length) actually check against. Defaults to DefaultLimits (unlimited);
// cmd/schemer's `--limits` flag replaces it via SetLimits before a program
// runs.
var ActiveLimits = DefaultLimits

// SetLimits installs l as ActiveLimits. Not safe to call concurrently with
// evaluation; intended for one-time setup before a program or REPL starts.
func SetLimits(l Limits) {
	ActiveLimits = l
}

// LoadLimits reads a Limits document from a YAML config file. Grounded on
// the teacher's config-from-YAML idiom (memcp reads its server config the
// same way); ecosystem choice is goccy/go-yaml rather than gopkg.in/yaml.v3
// because the rest of this module's stack already favors actively
// maintained tidwall/goccy-style libraries over the older gopkg.in set.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("scm: reading limits config %s: %w", path, err)
	}
	var l Limits
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Limits{}, fmt.Errorf("scm: parsing limits config %s: %w", path, err)
	}
	return l, nil
}

// CheckCallDepth returns a RuntimeError once depth exceeds a configured
// (non-zero) MaxCallDepth. Eval calls this against ActiveLimits on every
// non-tail recursive descent into itself (argument evaluation, operator
// evaluation, a lambda body's non-final statements); the goto-driven tail
// loop never triggers it, since a tail call reuses Eval's current stack
// frame instead of growing it.
func (l Limits) CheckCallDepth(depth int) error {
	if l.MaxCallDepth > 0 && depth > l.MaxCallDepth {
		return errRuntimeError(nil, "call depth exceeded configured limit of %d", l.MaxCallDepth)
	}
	return nil
}

// CheckListLength returns a DomainError once n exceeds a configured
// (non-zero) MaxListLength, for embedders that want to reject pathological
// `list`/`cons` growth.
func (l Limits) CheckListLength(n int) error {
	if l.MaxListLength > 0 && n > l.MaxListLength {
		return errDomainError(nil, "list length %d exceeds configured limit of %d", n, l.MaxListLength)
	}
	return nil
}
