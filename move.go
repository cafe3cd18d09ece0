package ollsolve

import (
	"errors"
	"fmt"
	"strings"
)

// Face represents a move target in standard notation: the six outer
// faces, the three slices, the three whole-cube rotations, and the six
// wide (two-layer) turns.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	FaceM Face = "M" // Middle slice, follows L
	FaceE Face = "E" // Equatorial slice, follows D
	FaceS Face = "S" // Standing slice, follows F

	FaceX Face = "x" // Whole-cube rotation on R axis
	FaceY Face = "y" // Whole-cube rotation on U axis
	FaceZ Face = "z" // Whole-cube rotation on F axis

	FaceRw Face = "r" // Wide right
	FaceLw Face = "l" // Wide left
	FaceUw Face = "u" // Wide up
	FaceDw Face = "d" // Wide down
	FaceFw Face = "f" // Wide front
	FaceBw Face = "b" // Wide back
)

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single parsed move. Moves are constructed per token
// and consumed immediately; nothing retains them across applications.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, M', u2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// faceFromByte maps a notation letter to a Face.
func faceFromByte(ch byte) (Face, bool) {
	switch ch {
	case 'R':
		return FaceR, true
	case 'L':
		return FaceL, true
	case 'U':
		return FaceU, true
	case 'D':
		return FaceD, true
	case 'F':
		return FaceF, true
	case 'B':
		return FaceB, true
	case 'M':
		return FaceM, true
	case 'E':
		return FaceE, true
	case 'S':
		return FaceS, true
	case 'x':
		return FaceX, true
	case 'y':
		return FaceY, true
	case 'z':
		return FaceZ, true
	case 'r':
		return FaceRw, true
	case 'l':
		return FaceLw, true
	case 'u':
		return FaceUw, true
	case 'd':
		return FaceDw, true
	case 'f':
		return FaceFw, true
	case 'b':
		return FaceBw, true
	default:
		return "", false
	}
}

// ParseMove parses a single notation token into a Move.
//
// An unrecognized leading letter is ErrUnknownMove; a recognized letter
// with garbage after it is ErrMalformedToken. Callers treat the two
// differently: unknown moves abort a sequence, malformed tokens are
// skipped with a warning.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrMalformedToken
	}

	face, ok := faceFromByte(s[0])
	if !ok {
		return Move{}, fmt.Errorf("%q: %w", s, ErrUnknownMove)
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		case "2'", "2`":
			turn = Double // 180 either way
		default:
			return Move{}, fmt.Errorf("%q: %w", s, ErrMalformedToken)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
//
// Malformed tokens are skipped and reported as warnings. An unknown
// face or axis stops parsing and returns the moves gathered so far
// together with the error.
func ParseMoves(s string) ([]Move, []string, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))
	var warnings []string

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			if errors.Is(err, ErrMalformedToken) {
				warnings = append(warnings, fmt.Sprintf("skipping malformed token %q", part))
				continue
			}
			return moves, warnings, err
		}
		moves = append(moves, move)
	}

	return moves, warnings, nil
}

// FormatMoves formats a slice of moves as a space-separated string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the group inverse of a sequence: each move
// inverted, in reverse order.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
