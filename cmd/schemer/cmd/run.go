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
	"os"

	"github.com/spf13/cobra"
	"github.com/tailform/scheme/scm"
)

var evalExpr string
var seedPath string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a program from a file or inline expression",
	Long: `Execute every top-level expression in a program in sequence.

Examples:
  schemer run program.scm
  schemer run -e "(+ 1 2 3)"
  schemer run --seed fixture.json program.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().StringVar(&seedPath, "seed", "", "JSON file of {name: number} bindings to stage before running")
}

func runProgram(_ *cobra.Command, args []string) error {
	source, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	it := scm.New()

	if seedPath != "" {
		doc, err := os.ReadFile(seedPath)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", seedPath, err)
		}
		if err := scm.PatchEnvironmentJSON(it.Env, string(doc)); err != nil {
			return fmt.Errorf("failed to stage seed bindings: %w", err)
		}
	}

	result, err := it.Run(source)
	if err != nil {
		if evalErr, ok := err.(*scm.EvalError); ok {
			fmt.Fprintln(os.Stderr, evalErr.UserMessage())
		} else {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		}
		return fmt.Errorf("execution failed")
	}

	if verbose {
		fmt.Printf("=> %s\n", scm.Display(result))
	}
	return nil
}

func readSource(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
