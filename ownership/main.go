package main

import (
	"fmt"
	"io"
	"os"
)

// A string in Go is already a read-only view: a {ptr, len} header over bytes
// nobody may write to. To get something mutable you must copy into a []byte
// you own.
//
// Run:
//
//	go run .
func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	section(w, "Borrowed view vs owned buffer")
	demoOwnership(w)

	section(w, "Aliasing vs duplication on a []byte view")
	demoAliasing(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
