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

// Arithmetic and numeric-comparison builtins (§4.3). Grounded on the
// teacher's scm/alu.go arithmetic family, reworked to return structured
// errors instead of panicking and to follow this spec's exact zero/one-arg
// identity rules rather than the teacher's.
func init() {
	register("+", "sum of zero or more numbers; 0 with no arguments", 0, -1, builtinAdd)
	register("-", "negation with one argument, subtraction with two or more", 1, -1, builtinSub)
	register("*", "product of zero or more numbers; 1 with no arguments", 0, -1, builtinMul)
	register("/", "reciprocal with one argument, division with two or more", 1, -1, builtinDiv)
	register("=", "pairwise numeric equality, chained across all arguments", 2, -1, builtinCompare(func(a, b float64) bool { return a == b }))
	register("<", "pairwise strictly-increasing check, chained across all arguments", 2, -1, builtinCompare(func(a, b float64) bool { return a < b }))
	register(">", "pairwise strictly-decreasing check, chained across all arguments", 2, -1, builtinCompare(func(a, b float64) bool { return a > b }))
	register("<=", "pairwise non-decreasing check, chained across all arguments", 2, -1, builtinCompare(func(a, b float64) bool { return a <= b }))
	register(">=", "pairwise non-increasing check, chained across all arguments", 2, -1, builtinCompare(func(a, b float64) bool { return a >= b }))
}

func asNumbers(name string, args []Value, pos *Position) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		if !a.IsNumber() {
			return nil, errTypeError(pos, "%s: expected number, got %s", name, a.TypeName())
		}
		nums[i] = a.AsNumber()
	}
	return nums, nil
}

func builtinAdd(args []Value, pos *Position) (Value, error) {
	nums, err := asNumbers("+", args, pos)
	if err != nil {
		return Value{}, err
	}
	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return Number(sum), nil
}

func builtinSub(args []Value, pos *Position) (Value, error) {
	nums, err := asNumbers("-", args, pos)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 1 {
		return Number(-nums[0]), nil
	}
	result := nums[0]
	for _, n := range nums[1:] {
		result -= n
	}
	return Number(result), nil
}

func builtinMul(args []Value, pos *Position) (Value, error) {
	nums, err := asNumbers("*", args, pos)
	if err != nil {
		return Value{}, err
	}
	product := 1.0
	for _, n := range nums {
		product *= n
	}
	return Number(product), nil
}

func builtinDiv(args []Value, pos *Position) (Value, error) {
	nums, err := asNumbers("/", args, pos)
	if err != nil {
		return Value{}, err
	}
	if len(nums) == 1 {
		if nums[0] == 0 {
			return Value{}, errDivisionByZero(pos)
		}
		return Number(1 / nums[0]), nil
	}
	result := nums[0]
	for _, n := range nums[1:] {
		if n == 0 {
			return Value{}, errDivisionByZero(pos)
		}
		result /= n
	}
	return Number(result), nil
}

// builtinCompare builds a pairwise-chained comparison builtin: all adjacent
// pairs in the argument vector must satisfy ok (§4.3), e.g. (< 1 2 3) holds
// iff 1<2 and 2<3.
func builtinCompare(ok func(a, b float64) bool) func(args []Value, pos *Position) (Value, error) {
	return func(args []Value, pos *Position) (Value, error) {
		nums, err := asNumbers("comparison", args, pos)
		if err != nil {
			return Value{}, err
		}
		for i := 1; i < len(nums); i++ {
			if !ok(nums[i-1], nums[i]) {
				return False, nil
			}
		}
		return True, nil
	}
}
