package ollsolve

import "strings"

// f2lSignature digests the lower two layers: the whole D face plus the
// bottom two rows of F, B, R and L, 33 stickers in all. Computed on
// demand to detect unintended mutation during an attempt; never stored.
func f2lSignature(c *Cube) string {
	var b strings.Builder
	b.Grow(33)
	for i := 0; i < 9; i++ {
		b.WriteString(c.Facelets[CubeFaceD][i].String())
	}
	for _, face := range []CubeFace{CubeFaceF, CubeFaceB, CubeFaceR, CubeFaceL} {
		for i := 3; i < 9; i++ {
			b.WriteString(c.Facelets[face][i].String())
		}
	}
	return b.String()
}

// sigDiff counts character positions where two signatures disagree.
func sigDiff(a, b string) int {
	if len(a) != len(b) {
		return len(a) + len(b)
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}
