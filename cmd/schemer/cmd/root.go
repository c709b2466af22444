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
// Package cmd wires the scm evaluation core to a cobra CLI, grounded on
// go-dws's cmd/dwscript/cmd layout: a root command with persistent flags
// and one subcommand file per verb.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tailform/scheme/scm"
)

var verbose bool
var limitsPath string

var rootCmd = &cobra.Command{
	Use:     "schemer",
	Short:   "A small, functional Scheme interpreter",
	Version: "0.1.0",
	Long: `schemer runs and explores programs written in a small, functional
Scheme dialect: numbers, booleans, strings, symbols, lists, lexically
scoped closures, and tail-call optimized recursion.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if limitsPath == "" {
			return nil
		}
		l, err := scm.LoadLimits(limitsPath)
		if err != nil {
			return fmt.Errorf("loading --limits: %w", err)
		}
		scm.SetLimits(l)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&limitsPath, "limits", "", "path to a YAML file bounding call depth / list length")
}
