package ollsolve

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		face Face
		turn Turn
	}{
		{"R", FaceR, CW},
		{"R'", FaceR, CCW},
		{"R2", FaceR, Double},
		{"U2'", FaceU, Double},
		{"M'", FaceM, CCW},
		{"x", FaceX, CW},
		{"r`", FaceRw, CCW},
		{"b2", FaceBw, Double},
	}
	for _, tt := range tests {
		m, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tt.in, err)
			continue
		}
		if m.Face != tt.face || m.Turn != tt.turn {
			t.Errorf("ParseMove(%q) = %v/%v, want %v/%v", tt.in, m.Face, m.Turn, tt.face, tt.turn)
		}
	}
}

func TestParseMoveErrors(t *testing.T) {
	if _, err := ParseMove("Q"); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("unknown letter: got %v, want ErrUnknownMove", err)
	}
	if _, err := ParseMove("R3"); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("bad suffix: got %v, want ErrMalformedToken", err)
	}
	if _, err := ParseMove(""); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("empty token: got %v, want ErrMalformedToken", err)
	}
}

func TestParseMovesSkipsMalformed(t *testing.T) {
	moves, warnings, err := ParseMoves("R U'' F2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2", len(moves))
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
}

func TestParseMovesStopsOnUnknown(t *testing.T) {
	moves, _, err := ParseMoves("R U Q F")
	if !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("got %v, want ErrUnknownMove", err)
	}
	if len(moves) != 2 {
		t.Fatalf("got %d moves before failure, want 2", len(moves))
	}
}

func TestMoveInverse(t *testing.T) {
	if inv := (Move{FaceR, CW}).Inverse(); inv.Turn != CCW {
		t.Error("R inverse should be R'")
	}
	if inv := (Move{FaceR, CCW}).Inverse(); inv.Turn != CW {
		t.Error("R' inverse should be R")
	}
	if inv := (Move{FaceR, Double}).Inverse(); inv.Turn != Double {
		t.Error("R2 inverse should be R2")
	}
}

func TestMoveInverseRestoresState(t *testing.T) {
	faces := []Face{
		FaceR, FaceL, FaceU, FaceD, FaceF, FaceB,
		FaceM, FaceE, FaceS, FaceX, FaceY, FaceZ,
		FaceRw, FaceLw, FaceUw, FaceDw, FaceFw, FaceBw,
	}
	for _, f := range faces {
		for _, turn := range []Turn{CW, CCW, Double} {
			c := NewCube()
			m := Move{Face: f, Turn: turn}
			if err := c.ApplyMove(m); err != nil {
				t.Fatalf("apply %s: %v", m, err)
			}
			if err := c.ApplyMove(m.Inverse()); err != nil {
				t.Fatalf("apply inverse of %s: %v", m, err)
			}
			if !c.IsSolved() {
				t.Errorf("%s then %s should restore the cube", m, m.Inverse())
			}
		}
	}
}

func TestInvertMoves(t *testing.T) {
	moves, _, err := ParseMoves("R U R' U R U2 R'")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	inv := InvertMoves(moves)
	if got, want := FormatMoves(inv), "R U2 R' U' R U' R'"; got != want {
		t.Fatalf("inverse = %q, want %q", got, want)
	}

	c := NewCube()
	if _, err := c.ApplyMoves(moves); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := c.ApplyMoves(inv); err != nil {
		t.Fatalf("apply inverse: %v", err)
	}
	if !c.IsSolved() {
		t.Fatal("sequence then its inverse should restore the cube")
	}
}

func TestApplyAlgorithmWarnsAndCounts(t *testing.T) {
	c := NewCube()
	applied, warnings, err := c.ApplyAlgorithm("R U'' U'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(warnings))
	}

	c = NewCube()
	applied, _, err = c.ApplyAlgorithm("R U Q F")
	if !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("got %v, want ErrUnknownMove", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d before failure, want 2", applied)
	}
}

func TestNotation(t *testing.T) {
	moves := []Move{{FaceR, CW}, {FaceU, CCW}, {FaceF, Double}, {FaceRw, CCW}}
	if got, want := FormatMoves(moves), "R U' F2 r'"; got != want {
		t.Fatalf("FormatMoves = %q, want %q", got, want)
	}
	if FormatMoves(nil) != "" {
		t.Fatal("empty sequence should format as empty string")
	}
}
