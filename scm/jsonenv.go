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
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DumpEnvironmentJSON renders env's own-frame bindings (not the parent
// chain) as a JSON object mapping name to a display string, for
// debug/introspect tooling (cmd/schemer's `:env` REPL command, repl.go).
// Building it through sjson.Set keeps the same "construct JSON
// incrementally without a struct" idiom the rest of the ecosystem pack uses
// for ad-hoc documents, rather than hand-rolling string concatenation.
func DumpEnvironmentJSON(env *Environment) (string, error) {
	doc := "{}"
	var err error
	for _, name := range env.Names() {
		v, _ := env.Lookup(name)
		doc, err = sjson.Set(doc, escapeJSONPath(name), Display(v))
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// PatchEnvironmentJSON stages bindings from a flat {name: number} JSON
// document into env's own frame, for embedders that want to seed a run
// from externally supplied JSON input (e.g. a test fixture or an RPC
// payload) instead of calling Define per field by hand; cmd/schemer's
// `run --seed` flag (run.go) is the CLI-facing use of this. Only numbers are
// accepted here: a JSON document has no way to spell a Symbol, Builtin, or
// Lambda, and silently coercing a JSON string into a Scheme string would
// hide the caller's intent for the common "feed me some numeric inputs"
// case this function exists for.
func PatchEnvironmentJSON(env *Environment, doc string) error {
	if !gjson.Valid(doc) {
		return errRuntimeError(nil, "PatchEnvironmentJSON: invalid JSON document")
	}
	result := gjson.Parse(doc)
	var fieldErr error
	result.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			fieldErr = errTypeError(nil, "PatchEnvironmentJSON: field %q must be a JSON number, got %s", key.String(), value.Type)
			return false
		}
		env.Define(key.String(), Number(value.Float()))
		return true
	})
	return fieldErr
}

// LookupEnvironmentField reads one field back out of a DumpEnvironmentJSON
// document by name. Used by tests asserting on a staged environment's
// contents without re-parsing the whole JSON document by hand, and by
// repl.go's `:env name` form to print a single binding.
func LookupEnvironmentField(doc, name string) (string, bool) {
	res := gjson.Get(doc, escapeJSONPath(name))
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// escapeJSONPath escapes the gjson/sjson path metacharacters ('.', '*',
// '?', '|', '#', '@') that are legal in a Scheme identifier (e.g.
// `list->vector`, `string=?`) but meaningful in a dotted path, using
// gjson's documented backslash-escape convention for path components.
func escapeJSONPath(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
