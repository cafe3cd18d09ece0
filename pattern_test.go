package ollsolve

import (
	"errors"
	"testing"
)

func TestPatternOfSolvedCube(t *testing.T) {
	p := NewCube().OLLPattern()
	if p != PatternComplete {
		t.Fatalf("solved cube pattern = %s, want 11111111", p)
	}
	if p.Score() != 8 {
		t.Fatalf("solved score = %d, want 8", p.Score())
	}
}

func TestPatternAfterSune(t *testing.T) {
	c := NewCube()
	if _, _, err := c.ApplyAlgorithm("R U R' U R U2 R'"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := c.OLLPattern().String(); got != "01111010" {
		t.Fatalf("pattern = %s, want 01111010", got)
	}
}

func TestRotateUClosure(t *testing.T) {
	for v := 0; v < 256; v++ {
		p := Pattern(v)
		r := p
		for i := 0; i < 4; i++ {
			r = r.RotateU()
		}
		if r != p {
			t.Fatalf("RotateU^4(%s) = %s, want identity", p, r)
		}
	}
}

func TestRotateUMatchesPhysicalTurn(t *testing.T) {
	c := NewCube()
	if _, _, err := c.ApplyAlgorithm("R U R' U R U2 R'"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := c.OLLPattern().RotateU()
	c.Turn(CubeFaceU, 1)
	if got := c.OLLPattern(); got != want {
		t.Fatalf("pattern after U = %s, RotateU predicted %s", got, want)
	}
}

func TestCanonicalInvariantUnderRotation(t *testing.T) {
	for v := 0; v < 256; v++ {
		p := Pattern(v)
		canon := p.Canonical()
		r := p
		for i := 0; i < 4; i++ {
			r = r.RotateU()
			if r.Canonical() != canon {
				t.Fatalf("canonical of %s changed under rotation", p)
			}
			if canon > r {
				t.Fatalf("canonical %s exceeds rotation %s of %s", canon, r, p)
			}
		}
	}
}

func TestCanonicalValues(t *testing.T) {
	tests := []struct{ in, want string }{
		{"01111010", "01011011"},
		{"01011010", "01011010"},
		{"00000000", "00000000"},
		{"00111001", "00111001"},
		{"11111111", "11111111"},
	}
	for _, tt := range tests {
		p := mustPattern(tt.in)
		if got := p.Canonical().String(); got != tt.want {
			t.Errorf("canonical(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00000000", 0},
		{"11111111", 8},
		{"01111010", 5},
		{"01011110", 5},
		{"10000000", 1},
	}
	for _, tt := range tests {
		if got := mustPattern(tt.in).Score(); got != tt.want {
			t.Errorf("score(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("01111010")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.String() != "01111010" {
		t.Fatalf("round trip = %s", p)
	}
	if _, err := ParsePattern("0111101"); !errors.Is(err, ErrInvalidPattern) {
		t.Error("short pattern should fail")
	}
	if _, err := ParsePattern("0111102x"); !errors.Is(err, ErrInvalidPattern) {
		t.Error("non-binary pattern should fail")
	}
}
