package ollsolve

import "time"

// defaultAlphabet is the 9-symbol move set every search uses unless
// widened: quarter and half turns of R, U and F.
var defaultAlphabet = []Move{
	{FaceR, CW}, {FaceR, CCW}, {FaceR, Double},
	{FaceU, CW}, {FaceU, CCW}, {FaceU, Double},
	{FaceF, CW}, {FaceF, CCW}, {FaceF, Double},
}

// widenedAlphabet adds the L and B variants for deeper rescue searches.
var widenedAlphabet = append(append([]Move{}, defaultAlphabet...),
	Move{FaceL, CW}, Move{FaceL, CCW}, Move{FaceL, Double},
	Move{FaceB, CW}, Move{FaceB, CCW}, Move{FaceB, Double},
)

// SolveDFS searches for an orienting sequence with iterative deepening
// over depth limits 1..maxDepth. Continuing on the face just turned is
// pruned, which covers immediate inverses and trivial duplicates. It
// returns the first sequence found at the shallowest depth that has
// one, and succeeds with zero moves on an already oriented cube.
func SolveDFS(c *Cube, maxDepth int) ([]Move, bool) {
	if c.IsOLLComplete() {
		return []Move{}, true
	}
	work := c.Clone()
	path := make([]Move, 0, maxDepth)
	for limit := 1; limit <= maxDepth; limit++ {
		if found := dfs(work, &path, limit, ""); found {
			out := make([]Move, len(path))
			copy(out, path)
			return out, true
		}
	}
	return nil, false
}

func dfs(c *Cube, path *[]Move, remaining int, lastFace Face) bool {
	if remaining == 0 {
		return false
	}
	for _, m := range defaultAlphabet {
		if m.Face == lastFace {
			continue
		}
		if err := c.ApplyMove(m); err != nil {
			continue
		}
		*path = append(*path, m)
		if c.IsOLLComplete() {
			return true
		}
		if dfs(c, path, remaining-1, m.Face) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		if err := c.ApplyMove(m.Inverse()); err != nil {
			return false
		}
	}
	return false
}

// bfsNode carries one frontier entry; every branch owns its own clone
// so exploration never aliases shared state.
type bfsNode struct {
	cube  *Cube
	moves []Move
}

// ProducerBFS searches breadth-first from the solved root for a
// sequence producing the target pattern, deduplicating by pattern.
// It returns both the producing sequence and its group inverse; the
// inverse solves any state bearing the target pattern.
func ProducerBFS(target Pattern, maxDepth int) (producer, solver []Move, ok bool) {
	root := NewCube()
	if root.OLLPattern() == target {
		return []Move{}, []Move{}, true
	}
	seen := map[Pattern]bool{root.OLLPattern(): true}
	frontier := []bfsNode{{cube: root, moves: nil}}

	for depth := 0; depth < maxDepth; depth++ {
		var next []bfsNode
		for _, node := range frontier {
			for _, m := range defaultAlphabet {
				child := node.cube.Clone()
				if err := child.ApplyMove(m); err != nil {
					continue
				}
				p := child.OLLPattern()
				if seen[p] {
					continue
				}
				seen[p] = true
				moves := append(append([]Move{}, node.moves...), m)
				if p == target {
					return moves, InvertMoves(moves), true
				}
				next = append(next, bfsNode{cube: child, moves: moves})
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return nil, nil, false
}

// HeuristicConfig tunes the score-guided search.
type HeuristicConfig struct {
	// MaxDepth bounds the search depth.
	MaxDepth int
	// AllowRegression is how far below the best score seen a neighbor
	// may fall before it is pruned.
	AllowRegression int
	// Alphabet defaults to the 9-symbol set when nil.
	Alphabet []Move
}

// HeuristicResult reports the outcome of a score-guided search,
// including diagnostics when nothing was found.
type HeuristicResult struct {
	Found     bool
	Moves     []Move
	Expanded  int
	Elapsed   time.Duration
	BestScore int
}

// HeuristicBFS expands breadth-first, guided by the orientation score.
// Neighbors scoring more than AllowRegression below the best score
// seen so far are pruned. States are deduplicated by canonical pattern
// keyed to the shallowest depth reached: reaching one again no deeper
// adds nothing. Terminates on the first fully oriented state or when
// the frontier or depth budget runs out.
func HeuristicBFS(c *Cube, cfg HeuristicConfig) HeuristicResult {
	start := time.Now()
	alphabet := cfg.Alphabet
	if alphabet == nil {
		alphabet = defaultAlphabet
	}

	res := HeuristicResult{BestScore: c.OLLPattern().Score()}
	if c.OLLPattern() == PatternComplete {
		res.Found = true
		res.Moves = []Move{}
		res.Elapsed = time.Since(start)
		return res
	}

	seenAt := map[Pattern]int{c.OLLPattern().Canonical(): 0}
	frontier := []bfsNode{{cube: c.Clone(), moves: nil}}

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		var next []bfsNode
		for _, node := range frontier {
			for _, m := range alphabet {
				child := node.cube.Clone()
				if err := child.ApplyMove(m); err != nil {
					continue
				}
				res.Expanded++

				p := child.OLLPattern()
				score := p.Score()
				if score > res.BestScore {
					res.BestScore = score
				}
				moves := append(append([]Move{}, node.moves...), m)
				if p == PatternComplete {
					res.Found = true
					res.Moves = moves
					res.Elapsed = time.Since(start)
					return res
				}
				if score < res.BestScore-cfg.AllowRegression {
					continue
				}
				key := p.Canonical()
				if prev, ok := seenAt[key]; ok && depth >= prev {
					continue
				}
				seenAt[key] = depth
				next = append(next, bfsNode{cube: child, moves: moves})
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	res.Elapsed = time.Since(start)
	return res
}
