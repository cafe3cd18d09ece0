package ollsolve

import (
	"errors"
	"testing"
)

// seedState builds the state a case's algorithm solves: a solved cube
// with the algorithm's inverse applied.
func seedState(t *testing.T, alg string) *Cube {
	t.Helper()
	moves, warnings, err := ParseMoves(alg)
	if err != nil || len(warnings) > 0 {
		t.Fatalf("parse %q: %v %v", alg, err, warnings)
	}
	c := NewCube()
	if _, err := c.ApplyMoves(InvertMoves(moves)); err != nil {
		t.Fatalf("apply inverse of %q: %v", alg, err)
	}
	return c
}

func TestSeedCaseSoundness(t *testing.T) {
	for _, cs := range NewRegistry().Cases() {
		c := seedState(t, cs.Algorithm)
		if got := c.OLLPattern(); got != cs.Pattern {
			t.Errorf("case %d: constructed pattern %s, table says %s", cs.ID, got, cs.Pattern)
		}
		if _, _, err := c.ApplyAlgorithm(cs.Algorithm); err != nil {
			t.Fatalf("case %d: apply: %v", cs.ID, err)
		}
		if !c.IsOLLComplete() {
			t.Errorf("case %d: algorithm %q did not orient the last layer", cs.ID, cs.Algorithm)
		}
	}
}

func TestMatchExact(t *testing.T) {
	reg := NewRegistry()
	m, ok := reg.Match(mustPattern("01111010"))
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Case.ID != 26 || m.Rotation != 0 {
		t.Fatalf("got case %d rotation %d, want case 26 rotation 0", m.Case.ID, m.Rotation)
	}
	if m.Algorithm != "R U2 R' U' R U' R'" {
		t.Fatalf("algorithm = %q", m.Algorithm)
	}
}

func TestMatchTieBreakFirstRegisteredWins(t *testing.T) {
	reg := NewRegistry()
	m, ok := reg.Match(mustPattern("00111001"))
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Case.ID != 45 {
		t.Fatalf("got case %d, want 45 (registered before 33)", m.Case.ID)
	}
}

func TestMatchRotatedSolvesRotatedState(t *testing.T) {
	// Pre-rotating the top layer rotates the pattern without touching
	// the lower layers; matching must adapt instead of turning U back.
	c := seedState(t, "F R U R' U' F'")
	c.Turn(CubeFaceU, 1)

	reg := NewRegistry()
	m, ok := reg.Match(c.OLLPattern())
	if !ok {
		t.Fatalf("no match for rotated pattern %s", c.OLLPattern())
	}
	if m.Case.ID != 45 || m.Rotation != 1 {
		t.Fatalf("got case %d rotation %d, want case 45 rotation 1", m.Case.ID, m.Rotation)
	}
	if _, _, err := c.ApplyAlgorithm(m.Algorithm); err != nil {
		t.Fatalf("apply adapted algorithm: %v", err)
	}
	if !c.IsOLLComplete() {
		t.Fatalf("adapted algorithm %q did not orient the rotated state", m.Algorithm)
	}
}

func TestMatchNoHit(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Match(mustPattern("10000001")); ok {
		t.Fatal("pattern outside every seed orbit should not match")
	}
}

func TestAdaptAlgorithm(t *testing.T) {
	tests := []struct {
		alg      string
		rotation int
		want     string
	}{
		{"R U R' U'", 0, "R U R' U'"},
		{"F R U R' U' F'", 1, "L F U F' U' L'"},
		{"R U2 R' U' R U' R'", 2, "L U2 L' U' L U' L'"},
		{"F R U R' U' F'", 3, "R B U B' U' R'"},
		{"r U r' M2", 1, "f U f' M2"},
	}
	for _, tt := range tests {
		if got := AdaptAlgorithm(tt.alg, tt.rotation); got != tt.want {
			t.Errorf("adapt(%q, %d) = %q, want %q", tt.alg, tt.rotation, got, tt.want)
		}
	}
}

func TestRegisterIdempotentByPattern(t *testing.T) {
	reg := NewRegistry()
	before := len(reg.Cases())

	existing := reg.Register(OLLCase{ID: 900, Pattern: mustPattern("01111010"), Algorithm: "U"})
	if existing.ID != 26 {
		t.Fatalf("registering a duplicate pattern returned case %d, want existing 26", existing.ID)
	}
	if len(reg.Cases()) != before {
		t.Fatal("duplicate registration must not grow the registry")
	}

	added := reg.Register(OLLCase{ID: 901, Pattern: mustPattern("10000001"), Algorithm: "R U R' U'", Classification: ClassUnknown})
	if added.ID != 901 {
		t.Fatalf("new pattern returned case %d, want 901", added.ID)
	}
	if len(reg.Cases()) != before+1 {
		t.Fatal("new pattern should append")
	}
}

func TestRegisterOverwritesDisabledPlaceholder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(OLLCase{ID: 910, Pattern: mustPattern("11000011"), Disabled: true})

	// Disabled flag on the incoming entry is cleared.
	got := reg.Register(OLLCase{ID: 911, Pattern: mustPattern("11000011"), Algorithm: "R U R'", Classification: ClassSetup})
	if got.ID != 911 || got.Disabled {
		t.Fatalf("placeholder not overwritten: %+v", got)
	}

	found, ok := reg.Lookup(911)
	if !ok || found.Algorithm != "R U R'" {
		t.Fatalf("lookup after overwrite: %+v ok=%v", found, ok)
	}
	if _, ok := reg.Lookup(910); ok {
		t.Fatal("placeholder id should be gone")
	}
}

func TestReclassifyTransitions(t *testing.T) {
	reg := NewRegistry()
	reg.Register(OLLCase{ID: 920, Pattern: mustPattern("11100000"), Algorithm: "R U R'", Classification: ClassUnknown})

	if err := reg.Reclassify(920, ClassFinisher); err != nil {
		t.Fatalf("unknown -> finisher: %v", err)
	}
	if err := reg.Reclassify(920, ClassSetup); err != nil {
		t.Fatalf("finisher -> setup: %v", err)
	}
	if err := reg.Reclassify(920, ClassFinisher); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("setup -> finisher: got %v, want ErrBadTransition", err)
	}
	if err := reg.Reclassify(920, ClassUnknown); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("setup -> unknown: got %v, want ErrBadTransition", err)
	}
	if err := reg.Reclassify(9999, ClassSetup); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("missing case: got %v, want ErrBadTransition", err)
	}
}
