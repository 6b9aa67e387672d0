package main

import (
	"fmt"
	"io"
	"os"
)

// A tour of the strings package, one question per line.
//
// Run:
//
//	go run .
func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	section(w, "Building and copying strings")
	demoBuild(w)

	section(w, "Comparison and case")
	demoCompare(w)

	section(w, "Searching — replace, contains, prefix")
	demoSearch(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
