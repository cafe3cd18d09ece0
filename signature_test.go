package ollsolve

import "testing"

func TestF2LSignature(t *testing.T) {
	c := NewCube()
	sig := f2lSignature(c)
	if len(sig) != 33 {
		t.Fatalf("signature length = %d, want 33", len(sig))
	}

	// U turns never touch the lower two layers.
	c.Turn(CubeFaceU, 1)
	if f2lSignature(c) != sig {
		t.Fatal("U turn must not change the signature")
	}

	// An R turn does.
	c.Turn(CubeFaceR, 1)
	if f2lSignature(c) == sig {
		t.Fatal("R turn must change the signature")
	}
}

func TestF2LSignatureSurvivesOLLAlgorithms(t *testing.T) {
	c := NewCube()
	if _, _, err := c.ApplyAlgorithm("R U R' F' L D2 B"); err != nil {
		t.Fatalf("scramble: %v", err)
	}
	sig := f2lSignature(c)
	for _, alg := range []string{"F R U R' U' F'", "R U R' U R U2 R'", "R U2 R' U' R U R' U' R U' R'"} {
		if _, _, err := c.ApplyAlgorithm(alg); err != nil {
			t.Fatalf("apply %q: %v", alg, err)
		}
		if got := f2lSignature(c); got != sig {
			t.Fatalf("%q corrupted the lower layers", alg)
		}
	}
}

func TestSigDiff(t *testing.T) {
	if d := sigDiff("ABC", "ABC"); d != 0 {
		t.Errorf("identical: %d", d)
	}
	if d := sigDiff("ABC", "AXC"); d != 1 {
		t.Errorf("one char: %d", d)
	}
	if d := sigDiff("ABC", "ABCD"); d == 0 {
		t.Error("length mismatch must count as a difference")
	}
}
