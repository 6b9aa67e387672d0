package main

import (
	"bytes"
	"fmt"
	"io"
)

const (
	borrowedLiteral = "Jai Shree Ram!"
	suffixLiteral   = "Jai Bajrang bali"
)

// toOwned copies view into a freshly allocated buffer. The result shares no
// memory with view, so appending to it can never reach the original bytes.
func toOwned(view string) []byte {
	owned := make([]byte, len(view), len(view)+len(suffixLiteral))
	copy(owned, view)
	return owned
}

func demoOwnership(w io.Writer) {
	borrowed := borrowedLiteral // string: read-only view of the literal
	owned := toOwned(borrowed)  // []byte: ours to mutate

	owned = append(owned, suffixLiteral...)

	fmt.Fprintf(w, "Borrowed string: %s\n", borrowed)
	fmt.Fprintf(w, "Owned string: %s\n", owned)
}

// demoAliasing shows why the copy in toOwned is required once the view is a
// []byte: re-slicing shares the backing array, bytes.Clone does not.
func demoAliasing(w io.Writer) {
	original := []byte(borrowedLiteral)

	alias := original[:3] // same backing array
	alias[0] = 'j'
	fmt.Fprintf(w, "  after alias[0] = 'j':  original=%q\n", original)

	original[0] = 'J'
	clone := bytes.Clone(original) // independent allocation
	clone[0] = 'j'
	fmt.Fprintf(w, "  after clone[0] = 'j':  original=%q clone=%q\n", original, clone)
}
