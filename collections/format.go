package main

import (
	"fmt"
	"strings"
)

// debugList renders s as "[a, b, c]". Strings are quoted so that
// ["a b"] and ["a", "b"] print differently.
func debugList[T any](s []T) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch v := any(v).(type) {
		case string:
			fmt.Fprintf(&sb, "%q", v)
		default:
			fmt.Fprintf(&sb, "%v", v)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
