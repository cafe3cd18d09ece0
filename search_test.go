package ollsolve

import "testing"

func TestSolveDFSZeroMoves(t *testing.T) {
	moves, ok := SolveDFS(NewCube(), 3)
	if !ok {
		t.Fatal("an oriented cube should succeed immediately")
	}
	if len(moves) != 0 {
		t.Fatalf("got %d moves, want 0", len(moves))
	}
}

func TestSolveDFSFindsOrientation(t *testing.T) {
	c := seedState(t, "F R U R' U' F'")
	moves, ok := SolveDFS(c, 6)
	if !ok {
		t.Fatal("expected a solution within depth 6")
	}
	if len(moves) == 0 || len(moves) > 6 {
		t.Fatalf("got %d moves", len(moves))
	}
	if _, err := c.ApplyMoves(moves); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !c.IsOLLComplete() {
		t.Fatal("DFS result did not orient the last layer")
	}
}

func TestSolveDFSRespectsDepthBound(t *testing.T) {
	c := seedState(t, "F R U R' U' F'")
	before := c.Facelets
	if _, ok := SolveDFS(c, 2); ok {
		t.Fatal("no 2-move orientation exists for this state")
	}
	if c.Facelets != before {
		t.Fatal("a failed search must leave the input untouched")
	}
}

func TestProducerBFS(t *testing.T) {
	target := mustPattern("01111010")
	producer, solver, ok := ProducerBFS(target, 7)
	if !ok {
		t.Fatal("expected a producer within depth 7")
	}

	c := NewCube()
	if _, err := c.ApplyMoves(producer); err != nil {
		t.Fatalf("apply producer: %v", err)
	}
	if got := c.OLLPattern(); got != target {
		t.Fatalf("producer yields %s, want %s", got, target)
	}
	if _, err := c.ApplyMoves(solver); err != nil {
		t.Fatalf("apply solver: %v", err)
	}
	if !c.IsOLLComplete() {
		t.Fatal("solver did not orient the produced state")
	}
}

func TestProducerBFSTrivialTarget(t *testing.T) {
	producer, solver, ok := ProducerBFS(PatternComplete, 3)
	if !ok || len(producer) != 0 || len(solver) != 0 {
		t.Fatalf("solved-pattern target should be empty: %v %v %v", producer, solver, ok)
	}
}

func TestHeuristicBFSImmediateSuccess(t *testing.T) {
	res := HeuristicBFS(NewCube(), HeuristicConfig{MaxDepth: 3, AllowRegression: 1})
	if !res.Found || len(res.Moves) != 0 {
		t.Fatalf("oriented cube: found=%v moves=%d", res.Found, len(res.Moves))
	}
}

func TestHeuristicBFSFindsShallowFix(t *testing.T) {
	c := NewCube()
	c.Turn(CubeFaceF, -1)
	res := HeuristicBFS(c, HeuristicConfig{MaxDepth: 2, AllowRegression: 2})
	if !res.Found {
		t.Fatal("expected a fix within depth 2")
	}
	if _, err := c.ApplyMoves(res.Moves); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !c.IsOLLComplete() {
		t.Fatal("heuristic result did not orient the last layer")
	}
}

func TestHeuristicBFSReportsDiagnostics(t *testing.T) {
	c := seedState(t, "R U2 R2 F R F' U2 R' F R F'")
	res := HeuristicBFS(c, HeuristicConfig{MaxDepth: 1, AllowRegression: 1})
	if res.Found {
		t.Fatal("no 1-move orientation exists for the dot case")
	}
	if res.Expanded == 0 {
		t.Error("diagnostics should count expanded nodes")
	}
	if res.BestScore < c.OLLPattern().Score() {
		t.Errorf("best score %d below starting score %d", res.BestScore, c.OLLPattern().Score())
	}
}
