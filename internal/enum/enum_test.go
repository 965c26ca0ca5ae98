package enum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type color int

const (
	red color = iota
	green
	blue
	colorCount
)

func (c color) String() string {
	return [...]string{"Red", "Green", "Blue"}[c]
}

func TestRange(t *testing.T) {
	r := Span(green, blue)
	assert.False(t, r.Contains(red))
	assert.True(t, r.Contains(green))
	assert.True(t, r.Contains(blue))
	assert.False(t, r.Contains(colorCount))
	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Disjoint(Span(red, red)))
	assert.False(t, r.Disjoint(Range[color]{From: red, To: blue}))
	assert.Equal(t, 0, Range[color]{From: blue, To: red}.Len())
}

func TestIndex(t *testing.T) {
	ix := NewIndex(colorCount, color.String)
	for _, name := range []string{"red", "RED", " Red "} {
		c, ok := ix.Lookup(name)
		assert.True(t, ok, fmt.Sprintf("lookup of %q", name))
		assert.Equal(t, red, c)
	}
	_, ok := ix.Lookup("magenta")
	assert.False(t, ok)
	assert.Equal(t, []string{"Blue", "Green", "Red"}, ix.Names())
	ix.Add("Azure", blue)
	c, _ := ix.Lookup("azure")
	assert.Equal(t, blue, c)
	assert.Equal(t, 4, ix.Size())
}
