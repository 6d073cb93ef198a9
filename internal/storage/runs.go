package storage

import (
	"fmt"
	"time"
)

// RunRecord summarises one headless session of several episodes.
type RunRecord struct {
	ID         int64
	Policy     string
	Seed       int64
	Episodes   int
	Frames     int
	BestScore  int
	TotalScore int
	CreatedAt  time.Time
}

// AvgScore returns the mean episode score of the run.
func (r RunRecord) AvgScore() float64 {
	if r.Episodes == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Episodes)
}

// SaveRun records a headless session summary and returns its row ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (policy, seed, episodes, frames, best_score, total_score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Policy, r.Seed, r.Episodes, r.Frames, r.BestScore, r.TotalScore,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest run summaries, newest first. An empty
// policy matches every policy.
func (s *Store) RecentRuns(policy string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, policy, seed, episodes, frames, best_score, total_score, created_at
		 FROM runs
		 WHERE ? = '' OR policy = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		policy, policy, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Policy, &r.Seed, &r.Episodes, &r.Frames,
			&r.BestScore, &r.TotalScore, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: run iteration: %w", err)
	}
	return runs, nil
}
