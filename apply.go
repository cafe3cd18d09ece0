package ollsolve

import (
	"errors"
	"fmt"
	"strings"
)

// faceTurn is a single signed outer-face turn, the primitive every
// composite move expands into.
type faceTurn struct {
	face  CubeFace
	turns int
}

// expandMove rewrites a move as signed outer-face turns. Slices,
// rotations and wide moves are compositional:
//
//	M = L R'    E = D U'    S = F B'
//	x = R M' L' y = U E' D' z = F S' B'
//	r = R M'    l = L M     u = U E'
//	d = D E     f = F S     b = B S'
func expandMove(m Move) ([]faceTurn, error) {
	t := int(m.Turn)
	switch m.Face {
	case FaceR:
		return []faceTurn{{CubeFaceR, t}}, nil
	case FaceL:
		return []faceTurn{{CubeFaceL, t}}, nil
	case FaceU:
		return []faceTurn{{CubeFaceU, t}}, nil
	case FaceD:
		return []faceTurn{{CubeFaceD, t}}, nil
	case FaceF:
		return []faceTurn{{CubeFaceF, t}}, nil
	case FaceB:
		return []faceTurn{{CubeFaceB, t}}, nil
	case FaceM:
		return []faceTurn{{CubeFaceL, t}, {CubeFaceR, -t}}, nil
	case FaceE:
		return []faceTurn{{CubeFaceD, t}, {CubeFaceU, -t}}, nil
	case FaceS:
		return []faceTurn{{CubeFaceF, t}, {CubeFaceB, -t}}, nil
	case FaceX:
		return composite(faceTurn{CubeFaceR, t}, Move{FaceM, Turn(-t)}, faceTurn{CubeFaceL, -t})
	case FaceY:
		return composite(faceTurn{CubeFaceU, t}, Move{FaceE, Turn(-t)}, faceTurn{CubeFaceD, -t})
	case FaceZ:
		return composite(faceTurn{CubeFaceF, t}, Move{FaceS, Turn(-t)}, faceTurn{CubeFaceB, -t})
	case FaceRw:
		return wide(faceTurn{CubeFaceR, t}, Move{FaceM, Turn(-t)})
	case FaceLw:
		return wide(faceTurn{CubeFaceL, t}, Move{FaceM, Turn(t)})
	case FaceUw:
		return wide(faceTurn{CubeFaceU, t}, Move{FaceE, Turn(-t)})
	case FaceDw:
		return wide(faceTurn{CubeFaceD, t}, Move{FaceE, Turn(t)})
	case FaceFw:
		return wide(faceTurn{CubeFaceF, t}, Move{FaceS, Turn(t)})
	case FaceBw:
		return wide(faceTurn{CubeFaceB, t}, Move{FaceS, Turn(-t)})
	default:
		return nil, fmt.Errorf("%q: %w", m.Face, ErrUnknownMove)
	}
}

func wide(outer faceTurn, slice Move) ([]faceTurn, error) {
	expanded, err := expandMove(slice)
	if err != nil {
		return nil, err
	}
	return append([]faceTurn{outer}, expanded...), nil
}

func composite(first faceTurn, slice Move, last faceTurn) ([]faceTurn, error) {
	expanded, err := expandMove(slice)
	if err != nil {
		return nil, err
	}
	out := make([]faceTurn, 0, len(expanded)+2)
	out = append(out, first)
	out = append(out, expanded...)
	out = append(out, last)
	return out, nil
}

// ApplyMove applies a single move to the cube in place.
func (c *Cube) ApplyMove(m Move) error {
	turns, err := expandMove(m)
	if err != nil {
		return err
	}
	for _, ft := range turns {
		c.Turn(ft.face, ft.turns)
	}
	return nil
}

// ApplyMoves applies a sequence of moves. It stops at the first move
// that fails and returns the count applied so far.
func (c *Cube) ApplyMoves(moves []Move) (int, error) {
	for i, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return i, err
		}
	}
	return len(moves), nil
}

// ApplyAlgorithm parses and applies a notation string token by token.
// Each token is consumed as soon as it parses. Malformed tokens are
// skipped and reported as warnings; an unknown face or axis stops the
// application and the count of moves applied so far is returned with
// the error.
func (c *Cube) ApplyAlgorithm(alg string) (applied int, warnings []string, err error) {
	for _, token := range strings.Fields(alg) {
		move, perr := ParseMove(token)
		if perr != nil {
			if isMalformed(perr) {
				warnings = append(warnings, fmt.Sprintf("skipping malformed token %q", token))
				continue
			}
			return applied, warnings, perr
		}
		if aerr := c.ApplyMove(move); aerr != nil {
			return applied, warnings, aerr
		}
		applied++
	}
	return applied, warnings, nil
}

func isMalformed(err error) bool {
	return errors.Is(err, ErrMalformedToken)
}
