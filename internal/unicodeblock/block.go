package unicodeblock

import (
	"fmt"
	"sort"
)

// Block is a named, inclusive range of code points. The zero value means the
// code point falls in no known block.
type Block struct {
	Name  string
	First rune
	Last  rune
}

// None is returned for code points outside every known block.
var None = Block{}

// Of returns the block containing r, or None.
func Of(r rune) Block {
	idx := sort.Search(len(blocks), func(i int) bool {
		return blocks[i].Last >= r
	})
	if idx < len(blocks) && blocks[idx].Contains(r) {
		return blocks[idx]
	}
	return None
}

// Contains reports whether r lies within the block range.
func (b Block) Contains(r rune) bool {
	if b.Name == "" {
		return false
	}
	return r >= b.First && r <= b.Last
}

// IsNone reports whether b is the zero block.
func (b Block) IsNone() bool {
	return b.Name == ""
}

func (b Block) String() string {
	if b.Name == "" {
		return "No Block"
	}
	return b.Name
}

// Range formats the block bounds as U+XXXX..U+XXXX.
func (b Block) Range() string {
	if b.Name == "" {
		return ""
	}
	return fmt.Sprintf("U+%04X..U+%04X", b.First, b.Last)
}

// Classifier adapts Of to interfaces that expect a BlockOf method.
type Classifier struct{}

// BlockOf returns the block containing r.
func (Classifier) BlockOf(r rune) Block {
	return Of(r)
}

// Blocks returns a copy of the known block table in code point order.
func Blocks() []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return out
}
