package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// replaceAll returns a copy of s with every old replaced by repl. s itself
// is never modified; strings are immutable.
func replaceAll(s, old, repl string) string {
	return strings.ReplaceAll(s, old, repl)
}

// equalIgnoringCase lower-cases both sides with full Unicode case mapping
// and compares. strings.EqualFold is the cheaper answer for simple folding;
// the two agree on everything this program prints.
func equalIgnoringCase(a, b string) bool {
	lower := cases.Lower(language.Und)
	return lower.String(a) == lower.String(b)
}

// startsWithAny reports whether the first rune of s is one of set.
// This is a different question from strings.HasPrefix(s, string(set)).
func startsWithAny(s string, set ...rune) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return false
	}
	for _, c := range set {
		if r == c {
			return true
		}
	}
	return false
}

func demoBuild(w io.Writer) {
	name := "Tyler"
	course := "Go"
	newName := replaceAll(name, "Tyler", "Ty")

	fmt.Fprintf(w, "  name=%s course=%s newName=%s\n", name, course, newName)

	str1 := "hello"
	str2 := strings.Clone(str1) // separate allocation, same bytes
	str3 := &str2               // pointer to the variable, not to the bytes
	fmt.Fprintf(w, "  str1=%s str2=%s *str3=%s\n", str1, str2, *str3)

	gopher := "\x47\x6f\x70\x68\x65\x72"
	fmt.Fprintf(w, "  \"\\x47\\x6f\\x70\\x68\\x65\\x72\" = %s\n", gopher)
}

func demoCompare(w io.Writer) {
	fmt.Fprintf(w, "  lower(\"ONE\") == \"one\": %t\n", equalIgnoringCase("ONE", "one"))
	fmt.Fprintf(w, "  EqualFold(\"ONE\", \"one\"): %t\n", strings.EqualFold("ONE", "one"))
	fmt.Fprintf(w, "  \"ONE\" == \"one\": %t\n", "ONE" == "one")
}

func demoSearch(w io.Writer) {
	s := "this is old"
	fmt.Fprintf(w, "  replace(%q, old→new) = %q\n", s, replaceAll(s, "old", "new"))
	fmt.Fprintf(w, "  replace(%q, is→an)   = %q\n", s, replaceAll(s, "is", "an"))

	bananas := "bananas"
	fmt.Fprintf(w, "  contains(nana)=%t contains(apples)=%t\n",
		strings.Contains(bananas, "nana"), strings.Contains(bananas, "apples"))
	fmt.Fprintf(w, "  hasPrefix(bana)=%t hasPrefix(nana)=%t\n",
		strings.HasPrefix(bananas, "bana"), strings.HasPrefix(bananas, "nana"))
	fmt.Fprintf(w, "  startsWithAny(b,a,n,a)=%t startsWithAny(a,b,c,d)=%t startsWithAny(x,y)=%t\n",
		startsWithAny(bananas, 'b', 'a', 'n', 'a'),
		startsWithAny(bananas, 'a', 'b', 'c', 'd'),
		startsWithAny(bananas, 'x', 'y'))
}
