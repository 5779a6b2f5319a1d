package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mriviere/discoverlens/internal/model"
)

// Run describes one stored analysis run.
type Run struct {
	CreatedAt   time.Time
	Source      string
	TitleColumn string
	Model       string
	ID          int64
	TotalTitles int
}

// SaveRun records a run and its classification results in one transaction.
// Returns the new run id.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run Run, results []model.ClassificationResult) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, title_column, total_titles, model) VALUES (?, ?, ?, ?)`,
		run.Source, run.TitleColumn, len(results), run.Model)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO classifications
			(run_id, position, title, main_category, main_category_name,
			 main_score, confidence, keyword_only, secondary_json, all_scores_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range results {
		secondary, err := json.Marshal(r.Secondary)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal secondary categories: %w", err)
		}
		allScores, err := json.Marshal(r.AllScores)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal scores: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			runID, i, r.Title, r.MainCategory, r.MainCategoryName,
			r.MainScore, r.Confidence, r.KeywordOnly, string(secondary), string(allScores)); err != nil {
			return 0, fmt.Errorf("failed to insert classification %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// GetRunResults loads the classification results of a run, in the original
// input order. Re-aggregating the returned set reproduces the run's
// summaries exactly: aggregation is a pure function of the classified set.
func (s *SQLiteStorage) GetRunResults(ctx context.Context, runID int64) ([]model.ClassificationResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, main_category, main_category_name, main_score,
		       confidence, keyword_only, secondary_json, all_scores_json
		FROM classifications
		WHERE run_id = ?
		ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query classifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []model.ClassificationResult
	for rows.Next() {
		var r model.ClassificationResult
		var secondary, allScores string

		if err := rows.Scan(&r.Title, &r.MainCategory, &r.MainCategoryName,
			&r.MainScore, &r.Confidence, &r.KeywordOnly, &secondary, &allScores); err != nil {
			return nil, fmt.Errorf("failed to scan classification: %w", err)
		}

		if err := json.Unmarshal([]byte(secondary), &r.Secondary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal secondary categories: %w", err)
		}
		if err := json.Unmarshal([]byte(allScores), &r.AllScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scores: %w", err)
		}

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classifications: %w", err)
	}

	return results, nil
}

// GetRun returns run metadata, or nil when the run does not exist.
func (s *SQLiteStorage) GetRun(ctx context.Context, runID int64) (*Run, error) {
	var run Run
	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, source, title_column, total_titles, model
		FROM runs WHERE id = ?`, runID).
		Scan(&run.ID, &run.CreatedAt, &run.Source, &run.TitleColumn, &run.TotalTitles, &run.Model)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, source, title_column, total_titles, model
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.Source, &run.TitleColumn,
			&run.TotalTitles, &run.Model); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}
