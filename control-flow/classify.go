package main

import (
	"fmt"
	"io"
)

// branch identifies which arm of the if/else-if chain a value took.
type branch int

const (
	branchOne branch = iota
	branchBelow25
	branchAbove50
	branchBetween
)

var messages = [...]string{
	branchOne:     "The value is one",
	branchBelow25: "The value is less than 25",
	branchAbove50: "The value is greater than 50",
	branchBetween: "The value is greater than 25 but less than 50",
}

func (b branch) String() string {
	switch b {
	case branchOne:
		return "one"
	case branchBelow25:
		return "below-25"
	case branchAbove50:
		return "above-50"
	case branchBetween:
		return "between"
	default:
		return fmt.Sprintf("branch(%d)", int(b))
	}
}

// branchOf evaluates the conditions top to bottom and stops at the first match.
//
// Order matters: 1 is also < 25, but the equality check comes first, so 1
// never reaches the second arm. Every x < 1 lands in "less than 25".
// Both 25 and 50 fail the strict comparisons and fall through to the else.
func branchOf(x int) branch {
	if x == 1 {
		return branchOne
	} else if x < 25 {
		return branchBelow25
	} else if x > 50 {
		return branchAbove50
	} else {
		return branchBetween
	}
}

// classify returns the message for x.
func classify(x int) string {
	return messages[branchOf(x)]
}

// controlFlow prints the classification of x as one line.
func controlFlow(w io.Writer, x int) {
	fmt.Fprintln(w, classify(x))
}
