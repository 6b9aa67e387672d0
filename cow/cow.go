package main

import (
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cow is text that is either borrowed or owned. Readers cannot tell the two
// apart; the only difference is that the first mutation of a borrowed value
// pays for a copy.
//
//	Borrowed(view) → aliases the caller's bytes, never writes to them
//	Owned(buf)     → buf now belongs to the Cow and may be written in place
//
// The zero value is an empty borrowed Cow.
type Cow struct {
	data  []byte
	owned bool
}

// Borrowed wraps view without copying it.
func Borrowed(view []byte) Cow {
	return Cow{data: view}
}

// Owned takes ownership of buf. The caller must not use buf afterwards.
func Owned(buf []byte) Cow {
	return Cow{data: buf, owned: true}
}

// BorrowedString wraps the bytes of s without copying them. This is only
// sound because a borrowed Cow never writes to its data: string memory may
// live in read-only segments.
func BorrowedString(s string) Cow {
	return Borrowed(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// OwnedString allocates a buffer holding s and owns it.
func OwnedString(s string) Cow {
	return Owned([]byte(s))
}

func (c Cow) IsOwned() bool  { return c.owned }
func (c Cow) Len() int       { return len(c.data) }
func (c Cow) String() string { return string(c.data) }

// Bytes returns a copy of the content, whichever variant c is.
func (c Cow) Bytes() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// ToMut returns a buffer that is safe to write. A borrowed Cow is copied once
// and becomes owned; later calls return the same buffer.
func (c *Cow) ToMut() []byte {
	if !c.owned {
		c.data = c.Bytes()
		c.owned = true
	}
	return c.data
}

// IntoOwned consumes c and returns its content as an owned buffer.
func (c Cow) IntoOwned() []byte {
	return c.ToMut()
}

// Upper consumes c and returns its content upper-cased.
//
// Owned ASCII content is rewritten in place. Borrowed content is copied
// first, and non-ASCII text goes through a full Unicode caser since the
// result may be longer than the input ("ß" → "SS").
func (c Cow) Upper() Cow {
	if !isASCII(c.data) {
		return Owned(cases.Upper(language.Und).Bytes(c.data))
	}

	buf := c.ToMut()
	for i, b := range buf {
		if 'a' <= b && b <= 'z' {
			buf[i] = b - ('a' - 'A')
		}
	}
	return c
}

func isASCII(b []byte) bool {
	for _, r := range b {
		if r >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
