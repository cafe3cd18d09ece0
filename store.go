package ollsolve

import "time"

// MetricEvent is one append-only record of a solve attempt.
type MetricEvent struct {
	SessionID      string
	Attempt        int
	CaseID         int
	Classification Classification
	PrePattern     string
	PostPattern    string
	Improved       bool
	Completed      bool
	IntegrityOK    bool
	Source         string
	CreatedAt      time.Time
}

// DerivedPattern is a pattern→algorithm discovery with provenance.
type DerivedPattern struct {
	Pattern   string
	Algorithm string
	Source    string
	CreatedAt time.Time
}

// ClassificationOverride reclassifies a case across runs, with audit
// fields preserved.
type ClassificationOverride struct {
	CaseID         int
	Classification Classification
	Reason         string
	UpdatedAt      time.Time
}

// UnknownPattern is a logged pattern no database or finisher entry
// matched, kept with a sample state for offline learning.
type UnknownPattern struct {
	Pattern     string
	SampleState string
	Score       int
	Attempt     int
	Occurrences int
	FirstSeen   time.Time
	LastSeen    time.Time
}

// Store is the persistence collaborator. Every method is best effort:
// callers swallow errors and continue degraded rather than abort an
// in-progress solve.
type Store interface {
	AppendMetric(ev MetricEvent) error

	SaveDerivedPattern(dp DerivedPattern) error
	LoadDerivedPatterns() ([]DerivedPattern, error)

	SaveClassificationOverrides(overrides []ClassificationOverride) error
	LoadClassificationOverrides() ([]ClassificationOverride, error)

	SaveRuntimeFinishers(finishers map[string]string) error
	LoadRuntimeFinishers() (map[string]string, error)

	LogUnknownPattern(up UnknownPattern) error
	ListUnknownPatterns() ([]UnknownPattern, error)
}
