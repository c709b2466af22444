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

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a single expression and print its value",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		it := scm.New()
		result, err := it.Run(args[0])
		if err != nil {
			if evalErr, ok := err.(*scm.EvalError); ok {
				fmt.Fprintln(os.Stderr, evalErr.UserMessage())
			} else {
				fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			}
			return fmt.Errorf("evaluation failed")
		}
		fmt.Println(scm.Display(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
