package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rake"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rake.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements rake.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// HashContent returns the hex encoded xxHash64 of text. Analyses of
// identical text share the same ContentHash.
func HashContent(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// CreateAnalysis stores a new analysis and its keywords in one transaction.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *rake.Analysis, text string) error {
	if err := a.Validate(); err != nil {
		return err
	}

	a.ID = uuid.New().String()
	a.CreatedAt = time.Now().UTC().Truncate(time.Second)
	a.ContentHash = HashContent(text)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO analyses (id, source, title, content_hash, candidates, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Source, a.Title, a.ContentHash, a.Candidates, a.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, kw := range a.Keywords {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO keywords (analysis_id, position, phrase, score)
			VALUES (?, ?, ?, ?)
		`, a.ID, i, kw.Phrase, kw.Score); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindAnalysisByID retrieves an analysis with its keywords in ranked order.
func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*rake.Analysis, error) {
	var a rake.Analysis
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, title, content_hash, candidates, created_at
		FROM analyses
		WHERE id = ?
	`, id).Scan(&a.ID, &a.Source, &a.Title, &a.ContentHash, &a.Candidates, &createdAt)
	if err == sql.ErrNoRows {
		return nil, rake.Errorf(rake.ENOTFOUND, "analysis not found")
	}
	if err != nil {
		return nil, err
	}

	if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if a.Keywords, err = s.findKeywords(ctx, a.ID); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *AnalysisService) findKeywords(ctx context.Context, analysisID string) ([]rake.Keyword, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT phrase, score
		FROM keywords
		WHERE analysis_id = ?
		ORDER BY position ASC
	`, analysisID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []rake.Keyword
	for rows.Next() {
		var kw rake.Keyword
		if err := rows.Scan(&kw.Phrase, &kw.Score); err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	return keywords, rows.Err()
}

// FindAnalyses retrieves analyses matching the filter, newest first.
func (s *AnalysisService) FindAnalyses(ctx context.Context, filter rake.AnalysisFilter) ([]*rake.Analysis, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, title, content_hash, candidates, created_at FROM analyses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*rake.Analysis
	for rows.Next() {
		var a rake.Analysis
		var createdAt string

		if err := rows.Scan(&a.ID, &a.Source, &a.Title, &a.ContentHash, &a.Candidates, &createdAt); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		analyses = append(analyses, &a)
	}

	return analyses, rows.Err()
}

// DeleteAnalysis permanently removes an analysis. Its keywords are removed
// by the foreign key cascade.
func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return rake.Errorf(rake.ENOTFOUND, "analysis not found")
	}

	return nil
}
