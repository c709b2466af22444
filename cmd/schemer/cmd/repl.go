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
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/tailform/scheme/scm"
)

const (
	newPrompt    = "\033[32m>\033[0m "
	contPrompt   = "\033[32m.\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// runRepl mirrors the teacher's Repl in scm/prompt.go: a readline loop
// that accumulates unterminated input across lines (an unmatched paren
// continues rather than errors) and reports evaluation errors without
// exiting, per §7's "the enclosing interactive loop catches the error at
// the top level, reports it, and continues reading". Unlike the teacher,
// there is no panic/recover dance here — errors already arrive as plain
// Go error values from scm.Interpreter.Run. A line starting with `:env` is
// handled specially instead of being parsed as Scheme source: bare `:env`
// prints the current top-level frame's bindings as JSON via
// scm.DumpEnvironmentJSON; `:env name` looks up a single binding in that
// JSON via scm.LookupEnvironmentField.
func runRepl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".schemer-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	it := scm.New()
	var pending strings.Builder

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending.Len() == 0 {
				break
			}
			pending.Reset()
			rl.SetPrompt(newPrompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if pending.Len() > 0 {
			pending.WriteByte('\n')
		}
		pending.WriteString(line)
		source := pending.String()
		if strings.TrimSpace(source) == "" {
			pending.Reset()
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(source), ":env") {
			pending.Reset()
			doc, err := scm.DumpEnvironmentJSON(it.Env)
			if err != nil {
				fmt.Println("Error: " + err.Error())
				continue
			}
			if field := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(source), ":env")); field != "" {
				v, ok := scm.LookupEnvironmentField(doc, field)
				if !ok {
					fmt.Printf("%s: unbound\n", field)
					continue
				}
				fmt.Println(v)
				continue
			}
			fmt.Println(doc)
			continue
		}

		if unbalanced(source) {
			rl.SetPrompt(contPrompt)
			continue
		}

		result, runErr := it.Run(source)
		pending.Reset()
		rl.SetPrompt(newPrompt)

		if runErr != nil {
			if evalErr, ok := runErr.(*scm.EvalError); ok {
				fmt.Println(evalErr.UserMessage())
			} else {
				fmt.Println("Error: " + runErr.Error())
			}
			continue
		}
		fmt.Print(resultPrompt)
		fmt.Println(scm.Display(result))
	}
	return nil
}

// unbalanced reports whether source has more '(' than ')' outside of a
// string literal, the simple heuristic the teacher's Repl uses (there,
// via a recovered "expecting matching )" panic) to decide whether to keep
// reading more lines before handing the buffer to the reader.
func unbalanced(source string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range source {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth > 0
}
