package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoArrayCopy(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	demoArrayCopy(&buf)
	assert.Equal(t, "x = [5, 7], y = [5, 7]\n", buf.String())
}

// TestArrayCopyIsIndependent: after y := x, writes to either are invisible
// to the other.
func TestArrayCopyIsIndependent(t *testing.T) {
	t.Parallel()

	x := [2]int{5, 7}
	y := x
	require.Equal(t, x, y)

	y[0] = 99
	x[1] = -1

	assert.Equal(t, [2]int{5, -1}, x)
	assert.Equal(t, [2]int{99, 7}, y)
}

// TestSliceCopyWouldAlias is the contrast: a slice assignment copies only
// the header.
func TestSliceCopyWouldAlias(t *testing.T) {
	t.Parallel()

	x := []int{5, 7}
	y := x
	y[0] = 99

	assert.Equal(t, 99, x[0])
}

func TestDebugList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", debugList([]int(nil)))
	assert.Equal(t, "[5, 7]", debugList([]int{5, 7}))
	assert.Equal(t, `["a b", "c"]`, debugList([]string{"a b", "c"}))
	assert.Equal(t, "[1.5]", debugList([]float64{1.5}))
}

func TestPushPop(t *testing.T) {
	t.Parallel()

	var s []int
	s = push(s, 1)
	s = push(s, 2)

	s, v, ok := pop(s)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1}, s)

	s, _, _ = pop(s)
	s, v, ok = pop(s)
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Empty(t, s)
}

func TestDemoVector(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	demoVector(&buf)

	want := strings.Join([]string{
		"[1, 2, 3, 4]",
		"[1, 2, 3]",
		`["String1", "String2", "String3"]`,
		`["String3", "String2", "String1"]`,
		"2",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestCollectRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lo, hi int
		want   []int
	}{
		{"zero to five", 0, 5, []int{0, 1, 2, 3, 4}},
		{"negative start", -2, 1, []int{-2, -1, 0}},
		{"empty", 3, 3, nil},
		{"inverted", 5, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, collectRange(tt.lo, tt.hi))
		})
	}
}

// TestIntRangeStopsEarly: breaking out of the loop must stop the producer.
func TestIntRangeStopsEarly(t *testing.T) {
	t.Parallel()

	var got []int
	for i := range intRange(0, 1_000_000) {
		if i == 3 {
			break
		}
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestDemoRange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	demoRange(&buf)
	assert.Equal(t, "[0, 1, 2, 3, 4]\n", buf.String())
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	run(&first)
	run(&second)
	assert.Equal(t, first.String(), second.String())
}
