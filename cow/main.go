package main

import (
	"fmt"
	"io"
	"os"
)

// Copy-on-write: one function, two kinds of input, same output.
//
// Run:
//
//	go run .
func main() {
	run(os.Stdout)
}

func run(w io.Writer) {
	borrowedData := BorrowedString("Jai Shree Ram!")
	processData(w, borrowedData)

	ownedData := OwnedString("Jai Bajarang Bali!")
	processData(w, ownedData)
}

// processData doesn't know or care which variant it got.
func processData(w io.Writer, data Cow) {
	processed := data.Upper()
	fmt.Fprintf(w, "Processed data: %s\n", processed)
}
