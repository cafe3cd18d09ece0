package ollsolve

import "math/rand"

var scrambleTurns = []Turn{CW, CCW, Double}

// RandomScramble returns n random outer-face moves, never turning the
// same face twice in a row.
func RandomScramble(n int) []Move {
	faces := []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}
	moves := make([]Move, 0, n)
	var last Face
	for len(moves) < n {
		f := faces[rand.Intn(len(faces))]
		if f == last {
			continue
		}
		last = f
		moves = append(moves, Move{Face: f, Turn: scrambleTurns[rand.Intn(len(scrambleTurns))]})
	}
	return moves
}
