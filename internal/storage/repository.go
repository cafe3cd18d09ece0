package storage

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/gocube_oll_solver"
)

const timeLayout = time.RFC3339Nano

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AppendMetric records one solve attempt. The log is append only.
func (d *DB) AppendMetric(ev ollsolve.MetricEvent) error {
	_, err := d.db.Exec(`
		INSERT INTO oll_metrics
			(session_id, attempt, case_id, classification, pre_pattern,
			 post_pattern, improved, completed, integrity_ok, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.SessionID, ev.Attempt, ev.CaseID, string(ev.Classification),
		ev.PrePattern, ev.PostPattern, boolToInt(ev.Improved),
		boolToInt(ev.Completed), boolToInt(ev.IntegrityOK), ev.Source,
		ev.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to append metric: %w", err)
	}
	return nil
}

// SaveDerivedPattern upserts one discovered pattern→algorithm mapping.
func (d *DB) SaveDerivedPattern(dp ollsolve.DerivedPattern) error {
	_, err := d.db.Exec(`
		INSERT INTO derived_patterns (pattern, algorithm, source, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(pattern) DO UPDATE SET
			algorithm = excluded.algorithm,
			source    = excluded.source`,
		dp.Pattern, dp.Algorithm, dp.Source, dp.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to save derived pattern: %w", err)
	}
	return nil
}

// LoadDerivedPatterns returns every stored derived pattern.
func (d *DB) LoadDerivedPatterns() ([]ollsolve.DerivedPattern, error) {
	rows, err := d.db.Query(
		`SELECT pattern, algorithm, source, created_at FROM derived_patterns ORDER BY pattern`)
	if err != nil {
		return nil, fmt.Errorf("failed to load derived patterns: %w", err)
	}
	defer rows.Close()

	var out []ollsolve.DerivedPattern
	for rows.Next() {
		var dp ollsolve.DerivedPattern
		var created string
		if err := rows.Scan(&dp.Pattern, &dp.Algorithm, &dp.Source, &created); err != nil {
			return nil, fmt.Errorf("failed to scan derived pattern: %w", err)
		}
		dp.CreatedAt = parseTime(created)
		out = append(out, dp)
	}
	return out, rows.Err()
}

// SaveClassificationOverrides rewrites the override map in full.
func (d *DB) SaveClassificationOverrides(overrides []ollsolve.ClassificationOverride) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM classification_overrides`); err != nil {
		return fmt.Errorf("failed to clear overrides: %w", err)
	}
	for _, o := range overrides {
		_, err := tx.Exec(`
			INSERT INTO classification_overrides (case_id, classification, reason, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(case_id) DO UPDATE SET
				classification = excluded.classification,
				reason         = excluded.reason,
				updated_at     = excluded.updated_at`,
			o.CaseID, string(o.Classification), o.Reason, o.UpdatedAt.Format(timeLayout))
		if err != nil {
			return fmt.Errorf("failed to save override for case %d: %w", o.CaseID, err)
		}
	}
	return tx.Commit()
}

// LoadClassificationOverrides returns the persisted override map.
func (d *DB) LoadClassificationOverrides() ([]ollsolve.ClassificationOverride, error) {
	rows, err := d.db.Query(
		`SELECT case_id, classification, reason, updated_at FROM classification_overrides ORDER BY case_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}
	defer rows.Close()

	var out []ollsolve.ClassificationOverride
	for rows.Next() {
		var o ollsolve.ClassificationOverride
		var class, updated string
		if err := rows.Scan(&o.CaseID, &class, &o.Reason, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		o.Classification = ollsolve.Classification(class)
		o.UpdatedAt = parseTime(updated)
		out = append(out, o)
	}
	return out, rows.Err()
}

// SaveRuntimeFinishers rewrites the finisher map in full.
func (d *DB) SaveRuntimeFinishers(finishers map[string]string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM runtime_finishers`); err != nil {
		return fmt.Errorf("failed to clear finishers: %w", err)
	}
	for pattern, alg := range finishers {
		if _, err := tx.Exec(
			`INSERT INTO runtime_finishers (pattern, algorithm) VALUES (?, ?)`,
			pattern, alg); err != nil {
			return fmt.Errorf("failed to save finisher %s: %w", pattern, err)
		}
	}
	return tx.Commit()
}

// LoadRuntimeFinishers returns the persisted finisher map.
func (d *DB) LoadRuntimeFinishers() (map[string]string, error) {
	rows, err := d.db.Query(`SELECT pattern, algorithm FROM runtime_finishers`)
	if err != nil {
		return nil, fmt.Errorf("failed to load finishers: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var pattern, alg string
		if err := rows.Scan(&pattern, &alg); err != nil {
			return nil, fmt.Errorf("failed to scan finisher: %w", err)
		}
		out[pattern] = alg
	}
	return out, rows.Err()
}

// LogUnknownPattern upserts an unmatched pattern, bumping its
// occurrence count and refreshing the sample state.
func (d *DB) LogUnknownPattern(up ollsolve.UnknownPattern) error {
	_, err := d.db.Exec(`
		INSERT INTO unknown_patterns
			(pattern, sample_state, score, attempt, occurrences, first_seen, last_seen)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(pattern) DO UPDATE SET
			occurrences  = occurrences + 1,
			sample_state = excluded.sample_state,
			score        = excluded.score,
			attempt      = excluded.attempt,
			last_seen    = excluded.last_seen`,
		up.Pattern, up.SampleState, up.Score, up.Attempt,
		up.FirstSeen.Format(timeLayout), up.LastSeen.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to log unknown pattern: %w", err)
	}
	return nil
}

// ListUnknownPatterns returns logged patterns, most seen first.
func (d *DB) ListUnknownPatterns() ([]ollsolve.UnknownPattern, error) {
	rows, err := d.db.Query(`
		SELECT pattern, sample_state, score, attempt, occurrences, first_seen, last_seen
		FROM unknown_patterns ORDER BY occurrences DESC, pattern`)
	if err != nil {
		return nil, fmt.Errorf("failed to list unknown patterns: %w", err)
	}
	defer rows.Close()

	var out []ollsolve.UnknownPattern
	for rows.Next() {
		var up ollsolve.UnknownPattern
		var first, last string
		if err := rows.Scan(&up.Pattern, &up.SampleState, &up.Score, &up.Attempt,
			&up.Occurrences, &first, &last); err != nil {
			return nil, fmt.Errorf("failed to scan unknown pattern: %w", err)
		}
		up.FirstSeen = parseTime(first)
		up.LastSeen = parseTime(last)
		out = append(out, up)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
