package ollsolve

import (
	"fmt"
	"strings"
	"sync"
)

// Classification describes what an algorithm is empirically known to do
// from its matched pattern.
type Classification string

const (
	// ClassFinisher fully completes orientation from its pattern.
	ClassFinisher Classification = "finisher"
	// ClassSetup only partially improves orientation.
	ClassSetup Classification = "setup"
	// ClassUnknown has not been confirmed either way yet.
	ClassUnknown Classification = "unknown"
)

// CanTransitionTo enforces the allowed reclassification lattice:
// unknown may become either, a finisher may be demoted to setup,
// and nothing is promoted back.
func (c Classification) CanTransitionTo(next Classification) bool {
	switch c {
	case ClassUnknown:
		return next == ClassFinisher || next == ClassSetup
	case ClassFinisher:
		return next == ClassSetup
	default:
		return false
	}
}

// OLLCase is one entry of the algorithm database.
type OLLCase struct {
	ID             int
	Name           string
	Pattern        Pattern
	Algorithm      string
	Classification Classification
	Verified       bool
	Disabled       bool
}

// seedCases is the literal table the registry starts from. Order
// matters: matching scans in registration order and earlier entries
// shadow later duplicates (OLL 45 shadows OLL 33 here; both render
// the same U-face pattern).
var seedCases = []OLLCase{
	{ID: 1, Name: "Dot", Pattern: mustPattern("00000000"), Algorithm: "R U2 R2 F R F' U2 R' F R F'", Classification: ClassFinisher, Verified: true},
	{ID: 21, Name: "H", Pattern: mustPattern("01011010"), Algorithm: "R U2 R' U' R U R' U' R U' R'", Classification: ClassFinisher, Verified: true},
	{ID: 26, Name: "Anti-Sune", Pattern: mustPattern("01111010"), Algorithm: "R U2 R' U' R U' R'", Classification: ClassFinisher, Verified: true},
	{ID: 27, Name: "Sune", Pattern: mustPattern("01011110"), Algorithm: "R U R' U R U2 R'", Classification: ClassFinisher, Verified: true},
	{ID: 43, Name: "P-left", Pattern: mustPattern("01101001"), Algorithm: "F' U' L' U L F", Classification: ClassFinisher, Verified: true},
	{ID: 44, Name: "P-right", Pattern: mustPattern("11010100"), Algorithm: "F U R U' R' F'", Classification: ClassFinisher, Verified: true},
	{ID: 45, Name: "T", Pattern: mustPattern("00111001"), Algorithm: "F R U R' U' F'", Classification: ClassFinisher, Verified: true},
	{ID: 33, Name: "T-alt", Pattern: mustPattern("00111001"), Algorithm: "R U R' U' R' F R F'", Classification: ClassFinisher, Verified: true},
}

// Registry holds the OLL cases. Reads dominate (every attempt matches),
// writes are rare (registration, reclassification), so a RWMutex.
type Registry struct {
	mu    sync.RWMutex
	cases []OLLCase
}

// NewRegistry creates a registry seeded with the built-in case table.
func NewRegistry() *Registry {
	r := &Registry{}
	r.cases = make([]OLLCase, len(seedCases))
	copy(r.cases, seedCases)
	return r
}

// Cases returns a snapshot of the registry in registration order.
func (r *Registry) Cases() []OLLCase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]OLLCase, len(r.cases))
	copy(out, r.cases)
	return out
}

// Lookup returns the first enabled case with the given id.
func (r *Registry) Lookup(id int) (OLLCase, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cases {
		if c.ID == id {
			return c, true
		}
	}
	return OLLCase{}, false
}

// MatchResult is a database hit: the matched case, the rotation that
// matched, and the algorithm re-expressed for the physical cube.
type MatchResult struct {
	Case      OLLCase
	Rotation  int
	Algorithm string
}

// Match scans enabled cases in registration order, trying each case's
// four pattern rotations against the observed pattern. The first exact
// match wins. A hit at rotation r>0 substitutes face letters through
// the rotation's face map instead of physically turning U, which keeps
// already-placed lower-layer pieces untouched.
func (r *Registry) Match(p Pattern) (MatchResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.cases {
		if c.Disabled || c.Algorithm == "" {
			continue
		}
		cp := c.Pattern
		for rot := 0; rot < 4; rot++ {
			if cp == p {
				return MatchResult{
					Case:      c,
					Rotation:  rot,
					Algorithm: AdaptAlgorithm(c.Algorithm, rot),
				}, true
			}
			cp = cp.RotateU()
		}
	}
	return MatchResult{}, false
}

// faceMaps[r] re-expresses an algorithm for a state that is the case
// pattern rotated r times clockwise. U, D, slices and rotations are
// unaffected.
var faceMaps = [4]map[byte]byte{
	1: {'R': 'F', 'F': 'L', 'L': 'B', 'B': 'R', 'r': 'f', 'f': 'l', 'l': 'b', 'b': 'r'},
	2: {'R': 'L', 'L': 'R', 'F': 'B', 'B': 'F', 'r': 'l', 'l': 'r', 'f': 'b', 'b': 'f'},
	3: {'R': 'B', 'B': 'L', 'L': 'F', 'F': 'R', 'r': 'b', 'b': 'l', 'l': 'f', 'f': 'r'},
}

// AdaptAlgorithm substitutes face letters through the rotation face map.
// rotation 0 returns the algorithm unchanged.
func AdaptAlgorithm(alg string, rotation int) string {
	m := faceMaps[rotation&3]
	if m == nil {
		return alg
	}
	tokens := strings.Fields(alg)
	for i, tok := range tokens {
		if sub, ok := m[tok[0]]; ok {
			tokens[i] = string(sub) + tok[1:]
		}
	}
	return strings.Join(tokens, " ")
}

// Register adds a case, idempotent by pattern. An existing enabled
// entry with the same pattern is returned unchanged; a disabled
// placeholder with the same pattern is overwritten in place; otherwise
// the entry is appended. Entries are never deleted.
func (r *Registry) Register(entry OLLCase) OLLCase {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.cases {
		if c.Pattern != entry.Pattern {
			continue
		}
		if !c.Disabled {
			return c
		}
		entry.Disabled = false
		r.cases[i] = entry
		return entry
	}
	r.cases = append(r.cases, entry)
	return entry
}

// Reclassify changes a case's classification subject to the transition
// rule. Finding no case with the id is an error too.
func (r *Registry) Reclassify(id int, next Classification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.cases {
		if c.ID != id {
			continue
		}
		if !c.Classification.CanTransitionTo(next) {
			return fmt.Errorf("case %d: %s -> %s: %w", id, c.Classification, next, ErrBadTransition)
		}
		r.cases[i].Classification = next
		return nil
	}
	return fmt.Errorf("case %d not found: %w", id, ErrBadTransition)
}

// ApplyOverride applies a persisted classification override loaded at
// startup. Overrides that violate the transition rule are skipped.
func (r *Registry) ApplyOverride(id int, class Classification) {
	_ = r.Reclassify(id, class)
}
