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

import "sync"

// Symbols are interned: identical identifier text always produces a Value
// built from the same canonical string, so equality reduces to the text
// comparison the spec calls for (§3.1 "equality is by text") while keeping
// repeated symbol construction cheap, the way the teacher's short-string
// Symbol type in scm/scmer.go is meant to behave.
var (
	symbolInternMu sync.RWMutex
	symbolIntern   = make(map[string]string, 256)
)

func internSymbol(name string) Value {
	symbolInternMu.RLock()
	canonical, ok := symbolIntern[name]
	symbolInternMu.RUnlock()
	if ok {
		return Value{kind: KindSymbol, text: canonical}
	}

	symbolInternMu.Lock()
	defer symbolInternMu.Unlock()
	if canonical, ok := symbolIntern[name]; ok {
		return Value{kind: KindSymbol, text: canonical}
	}
	symbolIntern[name] = name
	return Value{kind: KindSymbol, text: name}
}
