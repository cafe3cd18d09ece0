package ollsolve

// Option configures a Solver.
type Option func(*Solver)

// WithStore attaches a persistence layer. Without one the solver runs
// fully in memory and nothing is learned across runs.
func WithStore(store Store) Option {
	return func(s *Solver) {
		s.store = store
	}
}

// WithMaxAttempts overrides the orchestrator's attempt cap.
func WithMaxAttempts(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithStagnationLimit overrides how many consecutive non-improving
// attempts are tolerated before aborting.
func WithStagnationLimit(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.stagnationLimit = n
		}
	}
}

// WithRegistry substitutes a prepared case registry, mainly for tests.
func WithRegistry(r *Registry) Option {
	return func(s *Solver) {
		if r != nil {
			s.registry = r
		}
	}
}
