package ollsolve

import (
	"time"

	"github.com/google/uuid"
)

// Orchestrator tunables. The attempt cap and stagnation limit are
// adjustable through options; the rest are fixed behavior.
const (
	defaultMaxAttempts     = 10
	defaultStagnationLimit = 3

	softDiffThreshold     = 3
	softDiffThresholdHigh = 6
	sessionSoftDiffBudget = 12
	promotionThreshold    = 2
	plannerRepeatTrigger  = 3
	nearCompleteScore     = 7
)

// staticFinishers maps a canonical pattern to an algorithm known to
// complete orientation for at least one of its rotations. Checked
// after the database and the learned finishers.
var staticFinishers = map[string]string{
	"00000000": "R U2 R2 F R F' U2 R' F R F'",
	"01011010": "R U2 R' U' R U R' U' R U' R'",
	"01011011": "R U2 R' U' R U' R'",
	"00111001": "F R U R' U' F'",
}

// fallbackSetups are tried in order during the early attempts when
// nothing matches; each is a known-safe sequence that reshuffles the
// last layer without touching the lower two layers on its own.
var fallbackSetups = []string{
	"F R U R' U' F'",
	"R U R' U R U2 R'",
	"R U2 R' U' R U' R'",
	"R U R' U'",
}

// emergencyAlgs rotate once the fallback window is spent.
var emergencyAlgs = []string{
	"R U R' U R U2 R'",
	"F R U R' U' F'",
	"R U2 R' U' R U' R'",
}

// AppliedAlgorithm is one entry of a solve trace.
type AppliedAlgorithm struct {
	Attempt     int
	CaseID      int
	Name        string
	Source      string
	Algorithm   string
	Moves       int
	PrePattern  string
	PostPattern string
	Reverted    bool
}

// Result is the structured outcome of a solve. The orchestrator never
// panics for an unsolved cube; failure is a Result with Success false.
type Result struct {
	Success       bool
	IsOLLComplete bool
	TotalMoves    int
	Attempts      int
	FinalPattern  string
	BestScore     int
	Reason        string
	Trace         []AppliedAlgorithm
	Final         *Cube
}

// solveState is the orchestrator's explicit state machine.
type solveState int

const (
	stateAnalyzing solveState = iota
	stateSelecting
	stateApplying
	stateVerifying
	statePlateau
	stateDone
	stateAborted
)

// selection is the algorithm chosen for the current attempt.
type selection struct {
	caseID    int
	name      string
	class     Classification
	source    string
	algorithm string
	verify    bool
}

// blacklistKey identifies a (case, pattern) pairing rejected this
// session after an integrity rollback.
type blacklistKey struct {
	algorithm string
	pattern   Pattern
}

// session holds all per-solve mutable state. Nothing here outlives a
// single SolveOLL call.
type session struct {
	solver *Solver
	id     string

	cube    *Cube
	preLoop *Cube

	attempt    int
	totalMoves int
	trace      []AppliedAlgorithm

	startScore int
	bestScore  int
	noImprove  int
	rescueUsed bool
	softBudget int

	blacklist      map[blacklistKey]bool
	shortcutTried  map[Pattern]bool
	repeatCount    map[Pattern]int
	plateauStatics map[Pattern]bool

	current      selection
	snapshot     *Cube
	preSig       string
	prePat       Pattern
	appliedCount int
	reason       string
}

func newSession(s *Solver, c *Cube) *session {
	work := c.Clone()
	start := work.OLLPattern().Score()
	return &session{
		solver:         s,
		id:             uuid.New().String(),
		cube:           work,
		preLoop:        c.Clone(),
		startScore:     start,
		bestScore:      start,
		softBudget:     sessionSoftDiffBudget,
		blacklist:      make(map[blacklistKey]bool),
		shortcutTried:  make(map[Pattern]bool),
		repeatCount:    make(map[Pattern]int),
		plateauStatics: make(map[Pattern]bool),
	}
}

// run drives the state machine to Done or Aborted and assembles the
// structured result.
func (ss *session) run() Result {
	state := stateAnalyzing
	for {
		switch state {
		case stateAnalyzing:
			state = ss.analyze()
		case stateSelecting:
			state = ss.selectAlgorithm()
		case stateApplying:
			state = ss.apply()
		case stateVerifying:
			state = ss.verify()
		case statePlateau:
			state = ss.plateau()
		case stateDone, stateAborted:
			return ss.finish(state)
		}
	}
}

func (ss *session) finish(state solveState) Result {
	complete := ss.cube.IsOLLComplete()
	if !complete && ss.cube.OLLPattern().Score() < ss.bestScore {
		// Never present a regressed state as partial progress.
		ss.cube = ss.preLoop.Clone()
	}
	reason := ss.reason
	if complete {
		reason = "oriented"
	}
	return Result{
		Success:       complete,
		IsOLLComplete: complete,
		TotalMoves:    ss.totalMoves,
		Attempts:      ss.attempt,
		FinalPattern:  ss.cube.OLLPattern().String(),
		BestScore:     ss.bestScore,
		Reason:        reason,
		Trace:         ss.trace,
		Final:         ss.cube,
	}
}

func (ss *session) analyze() solveState {
	p := ss.cube.OLLPattern()
	if p == PatternComplete {
		return stateDone
	}
	if ss.attempt >= ss.solver.maxAttempts {
		ss.reason = "attempt cap reached"
		return stateAborted
	}
	canon := p.Canonical()
	if p.Score() >= nearCompleteScore && !ss.shortcutTried[canon] {
		ss.shortcutTried[canon] = true
		if ss.runSearch("shortcut", HeuristicConfig{MaxDepth: 4, AllowRegression: 1}) {
			return stateAnalyzing
		}
	}
	if ss.noImprove >= ss.solver.stagnationLimit {
		ss.reason = "stagnated"
		return stateAborted
	}
	if ss.noImprove == ss.solver.stagnationLimit-1 && !ss.rescueUsed {
		ss.rescueUsed = true
		if ss.runSearch("rescue", HeuristicConfig{MaxDepth: 6, AllowRegression: 2, Alphabet: widenedAlphabet}) {
			return stateAnalyzing
		}
	}
	return stateSelecting
}

// runSearch applies a heuristic search's result directly, outside the
// selection ladder. Searches accept only fully oriented outcomes, so
// no integrity check is needed beyond recording the attempt.
func (ss *session) runSearch(source string, cfg HeuristicConfig) bool {
	res := HeuristicBFS(ss.cube, cfg)
	if !res.Found {
		return false
	}
	ss.attempt++
	pre := ss.cube.OLLPattern()
	if _, err := ss.cube.ApplyMoves(res.Moves); err != nil {
		return false
	}
	ss.totalMoves += len(res.Moves)
	post := ss.cube.OLLPattern()
	ss.record(selection{source: source, algorithm: FormatMoves(res.Moves), class: ClassUnknown},
		pre, post, len(res.Moves), false)
	ss.bookkeep(pre, post)
	return true
}

func (ss *session) selectAlgorithm() solveState {
	p := ss.cube.OLLPattern()
	canon := p.Canonical().String()

	if m, ok := ss.solver.registry.Match(p); ok {
		alg := m.Algorithm
		if m.Case.Classification == ClassFinisher {
			alg = ss.withAUF(alg)
		}
		sel := selection{
			caseID:    m.Case.ID,
			name:      m.Case.Name,
			class:     m.Case.Classification,
			source:    "database",
			algorithm: alg,
		}
		if !ss.blacklist[blacklistKey{sel.algorithm, p}] {
			ss.current = sel
			return stateApplying
		}
	}

	if alg, ok := ss.solver.finishers[canon]; ok {
		alg = ss.withAUF(alg)
		if !ss.blacklist[blacklistKey{alg, p}] {
			ss.current = selection{class: ClassFinisher, source: "finisher", algorithm: alg}
			return stateApplying
		}
	}
	if alg, ok := staticFinishers[canon]; ok {
		alg = ss.withAUF(alg)
		if !ss.blacklist[blacklistKey{alg, p}] {
			ss.current = selection{class: ClassFinisher, source: "finisher", algorithm: alg}
			return stateApplying
		}
	}

	if ss.attempt < len(fallbackSetups) {
		ss.logUnknown(p)
		alg := fallbackSetups[ss.attempt%len(fallbackSetups)]
		if !ss.blacklist[blacklistKey{alg, p}] {
			ss.current = selection{class: ClassSetup, source: "fallback", algorithm: alg, verify: true}
			return stateApplying
		}
	}

	for i := 0; i < len(emergencyAlgs); i++ {
		alg := emergencyAlgs[(ss.attempt+i)%len(emergencyAlgs)]
		if !ss.blacklist[blacklistKey{alg, p}] {
			ss.current = selection{class: ClassSetup, source: "emergency", algorithm: alg, verify: true}
			return stateApplying
		}
	}

	ss.reason = "no applicable algorithm"
	return stateAborted
}

// withAUF returns the algorithm, possibly prefixed with a U turn.
// Rotation-invariant patterns carry no offset information, so a
// matched finisher can sit one U turn away from its case; a trial
// clone picks the adjustment that actually orients.
func (ss *session) withAUF(alg string) string {
	trial := ss.cube.Clone()
	if _, _, err := trial.ApplyAlgorithm(alg); err == nil && trial.IsOLLComplete() {
		return alg
	}
	for _, pre := range []string{"U", "U'", "U2"} {
		adjusted := pre + " " + alg
		trial := ss.cube.Clone()
		if _, _, err := trial.ApplyAlgorithm(adjusted); err == nil && trial.IsOLLComplete() {
			return adjusted
		}
	}
	return alg
}

func (ss *session) logUnknown(p Pattern) {
	if ss.solver.store == nil {
		return
	}
	now := time.Now()
	_ = ss.solver.store.LogUnknownPattern(UnknownPattern{
		Pattern:     p.String(),
		SampleState: ss.cube.Serialize(),
		Score:       p.Score(),
		Attempt:     ss.attempt,
		Occurrences: 1,
		FirstSeen:   now,
		LastSeen:    now,
	})
}

func (ss *session) apply() solveState {
	ss.attempt++
	ss.snapshot = ss.cube.Clone()
	ss.preSig = f2lSignature(ss.cube)
	ss.prePat = ss.cube.OLLPattern()

	applied, _, err := ss.cube.ApplyAlgorithm(ss.current.algorithm)
	if err != nil {
		ss.cube = ss.snapshot
		ss.blacklist[blacklistKey{ss.current.algorithm, ss.prePat}] = true
		ss.record(ss.current, ss.prePat, ss.prePat, 0, true)
		ss.bookkeep(ss.prePat, ss.prePat)
		return stateAnalyzing
	}
	ss.totalMoves += applied
	ss.appliedCount = applied

	if ss.current.verify {
		return stateVerifying
	}
	post := ss.cube.OLLPattern()
	ss.record(ss.current, ss.prePat, post, applied, false)
	ss.promote(ss.current, ss.prePat, post)
	return ss.afterAttempt(post)
}

func (ss *session) verify() solveState {
	post := ss.cube.OLLPattern()
	diff := sigDiff(ss.preSig, f2lSignature(ss.cube))
	if diff == 0 {
		ss.record(ss.current, ss.prePat, post, ss.appliedCount, false)
		ss.promote(ss.current, ss.prePat, post)
		return ss.afterAttempt(post)
	}

	threshold := softDiffThreshold
	if ss.prePat.Score() >= 6 {
		threshold = softDiffThresholdHigh
	}
	improved := post.Score() > ss.prePat.Score()
	if improved && diff <= threshold && diff <= ss.softBudget {
		ss.softBudget -= diff
		ss.record(ss.current, ss.prePat, post, ss.appliedCount, false)
		ss.promote(ss.current, ss.prePat, post)
		return ss.afterAttempt(post)
	}

	// Integrity violation: roll back, blacklist, no progress credit.
	ss.cube = ss.snapshot
	ss.totalMoves -= ss.appliedCount
	ss.blacklist[blacklistKey{ss.current.algorithm, ss.prePat}] = true
	ss.record(ss.current, ss.prePat, ss.prePat, 0, true)
	ss.bookkeep(ss.prePat, ss.prePat)
	if ss.stalled() {
		return statePlateau
	}
	return stateAnalyzing
}

func (ss *session) afterAttempt(post Pattern) solveState {
	ss.bookkeep(ss.prePat, post)
	if post == PatternComplete {
		return stateDone
	}
	if ss.stalled() {
		return statePlateau
	}
	return stateAnalyzing
}

func (ss *session) bookkeep(pre, post Pattern) {
	if post.Score() > ss.bestScore {
		ss.bestScore = post.Score()
	}
	if post.Score() > pre.Score() {
		ss.noImprove = 0
		return
	}
	ss.noImprove++
	ss.repeatCount[post.Canonical()]++
}

func (ss *session) stalled() bool {
	return ss.repeatCount[ss.cube.OLLPattern().Canonical()] >= 1
}

// plateau escalates: a static finisher for the stuck key, then a
// widened score-guided search, then the planner once the key has
// repeated enough.
func (ss *session) plateau() solveState {
	p := ss.cube.OLLPattern()
	canon := p.Canonical()

	if alg, ok := staticFinishers[canon.String()]; ok && !ss.plateauStatics[canon] {
		ss.plateauStatics[canon] = true
		if !ss.blacklist[blacklistKey{alg, p}] {
			ss.current = selection{class: ClassFinisher, source: "plateau-finisher", algorithm: alg, verify: true}
			return stateApplying
		}
	}

	if ss.runSearch("plateau-heuristic", HeuristicConfig{MaxDepth: 5, AllowRegression: 2, Alphabet: widenedAlphabet}) {
		return stateAnalyzing
	}

	if ss.repeatCount[canon] >= plannerRepeatTrigger {
		if ss.runPlanner() {
			return stateAnalyzing
		}
		ss.reason = "planner exhausted"
		return stateAborted
	}
	return stateAnalyzing
}

// runPlanner targets full completion directly: bounded DFS at depth 5,
// then depth 7 reached through every 2-move composite seed.
func (ss *session) runPlanner() bool {
	if moves, ok := SolveDFS(ss.cube, 5); ok {
		return ss.applyPlanned(moves)
	}
	for _, m1 := range defaultAlphabet {
		for _, m2 := range defaultAlphabet {
			if m2.Face == m1.Face {
				continue
			}
			seeded := ss.cube.Clone()
			if _, err := seeded.ApplyMoves([]Move{m1, m2}); err != nil {
				continue
			}
			if moves, ok := SolveDFS(seeded, 5); ok {
				full := append([]Move{m1, m2}, moves...)
				return ss.applyPlanned(full)
			}
		}
	}
	return false
}

func (ss *session) applyPlanned(moves []Move) bool {
	ss.attempt++
	pre := ss.cube.OLLPattern()
	if _, err := ss.cube.ApplyMoves(moves); err != nil {
		return false
	}
	ss.totalMoves += len(moves)
	post := ss.cube.OLLPattern()
	ss.record(selection{source: "planner", algorithm: FormatMoves(moves), class: ClassUnknown},
		pre, post, len(moves), false)
	ss.bookkeep(pre, post)
	return true
}

// record appends a trace entry and emits the metrics event. Store
// failures are swallowed; the solve proceeds degraded.
func (ss *session) record(sel selection, pre, post Pattern, moves int, reverted bool) {
	ss.trace = append(ss.trace, AppliedAlgorithm{
		Attempt:     ss.attempt,
		CaseID:      sel.caseID,
		Name:        sel.name,
		Source:      sel.source,
		Algorithm:   sel.algorithm,
		Moves:       moves,
		PrePattern:  pre.String(),
		PostPattern: post.String(),
		Reverted:    reverted,
	})
	if ss.solver.store == nil {
		return
	}
	_ = ss.solver.store.AppendMetric(MetricEvent{
		SessionID:      ss.id,
		Attempt:        ss.attempt,
		CaseID:         sel.caseID,
		Classification: sel.class,
		PrePattern:     pre.String(),
		PostPattern:    post.String(),
		Improved:       post.Score() > pre.Score(),
		Completed:      post == PatternComplete,
		IntegrityOK:    !reverted,
		Source:         sel.source,
		CreatedAt:      time.Now(),
	})
}

// promote counts completions achieved by setup-classified algorithms
// and persists them as runtime finishers once confirmed. Promotion is
// monotonic: an entry is never auto-reverted.
func (ss *session) promote(sel selection, pre, post Pattern) {
	if sel.class != ClassSetup || post != PatternComplete {
		return
	}
	key := pre.Canonical().String()
	ss.solver.promotions[key]++
	if ss.solver.promotions[key] < promotionThreshold {
		return
	}
	if _, exists := ss.solver.finishers[key]; exists {
		return
	}
	ss.solver.finishers[key] = sel.algorithm
	if ss.solver.store != nil {
		snapshot := make(map[string]string, len(ss.solver.finishers))
		for k, v := range ss.solver.finishers {
			snapshot[k] = v
		}
		_ = ss.solver.store.SaveRuntimeFinishers(snapshot)
	}
}
