// Package ollsolve computes move sequences that orient the last layer
// (OLL) of a 3x3x3 cube. It combines a curated algorithm database with
// rotation-aware matching, three bounded search strategies over an
// 8-bit orientation abstraction, and a self-correcting solve loop that
// detects stagnation, verifies lower-layer integrity with rollback,
// and promotes empirically confirmed algorithms into persisted state.
package ollsolve

import "time"

// Solver is the entry point. Construct one per process with New; it
// carries the case registry, the learned finisher table and the
// persistence collaborator shared by every solve.
type Solver struct {
	registry   *Registry
	store      Store
	finishers  map[string]string
	promotions map[string]int
	overrides  []ClassificationOverride

	maxAttempts     int
	stagnationLimit int
}

// New creates a Solver and, when a store is attached, loads the
// persisted finishers, classification overrides and derived patterns.
// Load failures are ignored; the solver starts from its seed state.
func New(opts ...Option) *Solver {
	s := &Solver{
		registry:        NewRegistry(),
		finishers:       make(map[string]string),
		promotions:      make(map[string]int),
		maxAttempts:     defaultMaxAttempts,
		stagnationLimit: defaultStagnationLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.loadPersisted()
	return s
}

func (s *Solver) loadPersisted() {
	if s.store == nil {
		return
	}
	if fins, err := s.store.LoadRuntimeFinishers(); err == nil {
		for k, v := range fins {
			s.finishers[k] = v
		}
	}
	if overrides, err := s.store.LoadClassificationOverrides(); err == nil {
		s.overrides = overrides
		for _, o := range overrides {
			s.registry.ApplyOverride(o.CaseID, o.Classification)
		}
	}
	if derived, err := s.store.LoadDerivedPatterns(); err == nil {
		for i, dp := range derived {
			p, perr := ParsePattern(dp.Pattern)
			if perr != nil {
				continue
			}
			s.registry.Register(OLLCase{
				ID:             1000 + i,
				Name:           "derived",
				Pattern:        p,
				Algorithm:      dp.Algorithm,
				Classification: ClassFinisher,
			})
		}
	}
}

// SolveOLL orients the last layer of the given cube. The input is
// cloned; the returned Result carries the final state. Failure is a
// structured Result, never a panic.
func (s *Solver) SolveOLL(c *Cube) Result {
	return newSession(s, c).run()
}

// Classify reports what is known about a pattern: the matched case's
// classification, or finisher when only a learned finisher covers it,
// or unknown.
func (s *Solver) Classify(p Pattern) Classification {
	if m, ok := s.registry.Match(p); ok {
		return m.Case.Classification
	}
	key := p.Canonical().String()
	if _, ok := s.finishers[key]; ok {
		return ClassFinisher
	}
	if _, ok := staticFinishers[key]; ok {
		return ClassFinisher
	}
	return ClassUnknown
}

// RegisterCase adds a case to the registry (idempotent by pattern) and
// persists it as a derived pattern, best effort.
func (s *Solver) RegisterCase(entry OLLCase) OLLCase {
	out := s.registry.Register(entry)
	if s.store != nil {
		_ = s.store.SaveDerivedPattern(DerivedPattern{
			Pattern:   entry.Pattern.String(),
			Algorithm: entry.Algorithm,
			Source:    "registered",
			CreatedAt: time.Now(),
		})
	}
	return out
}

// Reclassify changes a case's classification, enforcing the allowed
// transitions, and rewrites the persisted override map in full.
func (s *Solver) Reclassify(id int, next Classification, reason string) error {
	if err := s.registry.Reclassify(id, next); err != nil {
		return err
	}
	s.overrides = append(s.overrides, ClassificationOverride{
		CaseID:         id,
		Classification: next,
		Reason:         reason,
		UpdatedAt:      time.Now(),
	})
	if s.store != nil {
		_ = s.store.SaveClassificationOverrides(s.overrides)
	}
	return nil
}

// Registry exposes the case table for listing and offline tooling.
func (s *Solver) Registry() *Registry {
	return s.registry
}
