package main

import (
	"fmt"
	"io"
	"os"
)

// Arrays are values, slices are views. Each section prints what it builds.
//
// Run:
//
//	go run .
func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	section(w, "Arrays — assignment copies every element")
	demoArrayCopy(w)

	section(w, "Vectors — push, pop, reverse, capacity")
	demoVector(w)

	section(w, "Ranges — materialize an iterator into a slice")
	demoRange(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
