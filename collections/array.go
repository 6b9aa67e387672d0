package main

import (
	"fmt"
	"io"
)

// A Go array's length is part of its type, and assigning one copies all of
// its elements. There is no header and no shared backing array, unlike a
// slice.
func demoArrayCopy(w io.Writer) {
	x := [2]int{5, 7}
	y := x // full value copy

	fmt.Fprintf(w, "x = %s, y = %s\n", debugList(x[:]), debugList(y[:]))
}
