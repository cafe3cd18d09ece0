package ollsolve

import (
	"fmt"
	"math/bits"
)

// Pattern encodes the orientation of the 8 non-center U-face facelets
// as a bitmask. Bit layout is MSB-first over U indices
// [0,1,2,3,5,6,7,8], so numeric ordering of Pattern values matches
// lexicographic ordering of their 8-character string renderings.
type Pattern uint8

// PatternComplete is the fully oriented last layer.
const PatternComplete Pattern = 0xFF

// ollIndices are the U-face facelets that participate in the pattern,
// row-major with the center excluded.
var ollIndices = [8]int{0, 1, 2, 3, 5, 6, 7, 8}

// rotateUTable gives, for each pattern position, the position it reads
// from after one clockwise U-layer turn.
var rotateUTable = [8]int{5, 3, 0, 6, 1, 7, 4, 2}

// OLLPattern derives the orientation pattern of the cube's U face.
// A bit is set when the facelet matches the U center color.
func (c *Cube) OLLPattern() Pattern {
	center := c.Facelets[CubeFaceU][4]
	var p Pattern
	for i, idx := range ollIndices {
		if c.Facelets[CubeFaceU][idx] == center {
			p |= 1 << (7 - i)
		}
	}
	return p
}

// IsOLLComplete reports whether every U-face facelet matches the center.
func (c *Cube) IsOLLComplete() bool {
	return c.OLLPattern() == PatternComplete
}

// bit returns pattern position i (0 = leftmost in the string form).
func (p Pattern) bit(i int) Pattern {
	return (p >> (7 - i)) & 1
}

// RotateU returns the pattern a 90-degree clockwise U turn would
// produce. Applying it four times returns the original pattern.
func (p Pattern) RotateU() Pattern {
	var out Pattern
	for i := 0; i < 8; i++ {
		out |= p.bit(rotateUTable[i]) << (7 - i)
	}
	return out
}

// Canonical returns the smallest of the pattern's four rotations.
// Two patterns are equivalent iff their canonical forms match.
func (p Pattern) Canonical() Pattern {
	min := p
	r := p
	for i := 0; i < 3; i++ {
		r = r.RotateU()
		if r < min {
			min = r
		}
	}
	return min
}

// Score counts oriented facelets, bounded [0,8]. A search heuristic
// only, never a correctness signal.
func (p Pattern) Score() int {
	return bits.OnesCount8(uint8(p))
}

// String renders the pattern as 8 characters over {0,1}.
func (p Pattern) String() string {
	buf := make([]byte, 8)
	for i := 0; i < 8; i++ {
		buf[i] = '0' + byte(p.bit(i))
	}
	return string(buf)
}

// ParsePattern parses an 8-character pattern string.
func ParsePattern(s string) (Pattern, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("pattern must be 8 characters, got %d: %w", len(s), ErrInvalidPattern)
	}
	var p Pattern
	for i := 0; i < 8; i++ {
		switch s[i] {
		case '1':
			p |= 1 << (7 - i)
		case '0':
		default:
			return 0, fmt.Errorf("pattern byte %q at %d: %w", s[i], i, ErrInvalidPattern)
		}
	}
	return p, nil
}

// mustPattern is for literal tables; it panics on bad input.
func mustPattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}
