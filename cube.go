package ollsolve

import (
	"fmt"
	"strings"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

func colorFromByte(b byte) (Color, bool) {
	switch b {
	case 'W':
		return White, true
	case 'Y':
		return Yellow, true
	case 'G':
		return Green, true
	case 'B':
		return Blue, true
	case 'R':
		return Red, true
	case 'O':
		return Orange, true
	default:
		return White, false
	}
}

// CubeFace indexes one of the six faces.
type CubeFace int

const (
	CubeFaceU CubeFace = 0 // Up (White)
	CubeFaceD CubeFace = 1 // Down (Yellow)
	CubeFaceF CubeFace = 2 // Front (Green)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceR CubeFace = 4 // Right (Red)
	CubeFaceL CubeFace = 5 // Left (Orange)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceU:
		return "U"
	case CubeFaceD:
		return "D"
	case CubeFaceF:
		return "F"
	case CubeFaceB:
		return "B"
	case CubeFaceR:
		return "R"
	case CubeFaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
// On the U face, index 0 is the back-left corner and 8 the front-right.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{}
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceU:
		return White
	case CubeFaceD:
		return Yellow
	case CubeFaceF:
		return Green
	case CubeFaceB:
		return Blue
	case CubeFaceR:
		return Red
	case CubeFaceL:
		return Orange
	default:
		return White
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// IsSolved returns true if the cube is in the solved state.
func (c *Cube) IsSolved() bool {
	for face := CubeFace(0); face < 6; face++ {
		expected := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != expected {
				return false
			}
		}
	}
	return true
}

// Turn turns a single outer face. turns is normalized into [0,4):
// 0 is a no-op, 1 is clockwise, 2 is a half turn, 3 is counter-clockwise.
func (c *Cube) Turn(face CubeFace, turns int) {
	switch normalizeTurns(turns) {
	case 1:
		c.rotateFaceCW(face)
		c.cycleEdgesCW(face)
	case 2:
		c.rotateFaceCW(face)
		c.cycleEdgesCW(face)
		c.rotateFaceCW(face)
		c.cycleEdgesCW(face)
	case 3:
		c.rotateFaceCCW(face)
		c.cycleEdgesCCW(face)
	}
}

// normalizeTurns maps any signed turn count into [0,4).
func normalizeTurns(turns int) int {
	n := turns % 4
	if n < 0 {
		n += 4
	}
	return n
}

// rotateFaceCW rotates a face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face CubeFace) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// rotateFaceCCW rotates a face 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face CubeFace) {
	f := &c.Facelets[face]
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// cycleEdgesCW cycles the strip of adjacent facelets around a face.
func (c *Cube) cycleEdgesCW(face CubeFace) {
	switch face {
	case CubeFaceU:
		// U sends the F top row to L
		c.cycleStrip(
			CubeFaceF, [3]int{0, 1, 2},
			CubeFaceL, [3]int{0, 1, 2},
			CubeFaceB, [3]int{0, 1, 2},
			CubeFaceR, [3]int{0, 1, 2},
		)
	case CubeFaceD:
		c.cycleStrip(
			CubeFaceF, [3]int{6, 7, 8},
			CubeFaceR, [3]int{6, 7, 8},
			CubeFaceB, [3]int{6, 7, 8},
			CubeFaceL, [3]int{6, 7, 8},
		)
	case CubeFaceF:
		c.cycleStrip(
			CubeFaceU, [3]int{6, 7, 8},
			CubeFaceR, [3]int{0, 3, 6},
			CubeFaceD, [3]int{2, 1, 0},
			CubeFaceL, [3]int{8, 5, 2},
		)
	case CubeFaceB:
		c.cycleStrip(
			CubeFaceU, [3]int{2, 1, 0},
			CubeFaceL, [3]int{0, 3, 6},
			CubeFaceD, [3]int{6, 7, 8},
			CubeFaceR, [3]int{8, 5, 2},
		)
	case CubeFaceR:
		c.cycleStrip(
			CubeFaceU, [3]int{2, 5, 8},
			CubeFaceB, [3]int{6, 3, 0},
			CubeFaceD, [3]int{2, 5, 8},
			CubeFaceF, [3]int{2, 5, 8},
		)
	case CubeFaceL:
		c.cycleStrip(
			CubeFaceU, [3]int{0, 3, 6},
			CubeFaceF, [3]int{0, 3, 6},
			CubeFaceD, [3]int{0, 3, 6},
			CubeFaceB, [3]int{8, 5, 2},
		)
	}
}

// cycleEdgesCCW is cycleEdgesCW applied three times.
func (c *Cube) cycleEdgesCCW(face CubeFace) {
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
}

// cycleStrip cycles 4 groups of 3 facelets: group 1 receives group 4,
// 4 receives 3, 3 receives 2, and 2 receives the saved group 1.
func (c *Cube) cycleStrip(f1 CubeFace, i1 [3]int, f2 CubeFace, i2 [3]int, f3 CubeFace, i3 [3]int, f4 CubeFace, i4 [3]int) {
	var t [3]Color
	for k := 0; k < 3; k++ {
		t[k] = c.Facelets[f1][i1[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f1][i1[k]] = c.Facelets[f4][i4[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f4][i4[k]] = c.Facelets[f3][i3[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f3][i3[k]] = c.Facelets[f2][i2[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f2][i2[k]] = t[k]
	}
}

// Serialize renders the cube as a 54-character string, faces in
// U, D, F, B, R, L order, each face row-major. Round-trips through
// ParseCubeState.
func (c *Cube) Serialize() string {
	var b strings.Builder
	b.Grow(54)
	for face := CubeFace(0); face < 6; face++ {
		for i := 0; i < 9; i++ {
			b.WriteString(c.Facelets[face][i].String())
		}
	}
	return b.String()
}

// ParseCubeState parses a 54-character state string produced by Serialize.
func ParseCubeState(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("cube state must be 54 characters, got %d: %w", len(s), ErrInvalidState)
	}
	c := &Cube{}
	for face := CubeFace(0); face < 6; face++ {
		for i := 0; i < 9; i++ {
			color, ok := colorFromByte(s[int(face)*9+i])
			if !ok {
				return nil, fmt.Errorf("invalid sticker %q at position %d: %w", s[int(face)*9+i], int(face)*9+i, ErrInvalidState)
			}
			c.Facelets[face][i] = color
		}
	}
	return c, nil
}

// String returns a text representation of the cube net.
func (c *Cube) String() string {
	var b strings.Builder

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[CubeFaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[CubeFaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
