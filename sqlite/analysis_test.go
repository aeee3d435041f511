package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysis(source string) *rake.Analysis {
	return &rake.Analysis{
		Source:     source,
		Title:      "Compatibility of Linear Constraints",
		Candidates: 5,
		Keywords: []rake.Keyword{
			{Phrase: "linear constraints", Score: 4},
			{Phrase: "natural numbers", Score: 4},
			{Phrase: "compatibility", Score: 1},
		},
	}
}

func TestAnalysisService_CreateAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("generates ID, timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))
		a := newAnalysis("abstract.txt")

		err := svc.CreateAnalysis(context.Background(), a, "the analysed text")

		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
		assert.Equal(t, sqlite.HashContent("the analysed text"), a.ContentHash)
	})

	t.Run("rejects analysis without source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))

		err := svc.CreateAnalysis(context.Background(), &rake.Analysis{}, "text")

		require.Error(t, err)
		assert.Equal(t, rake.EINVALID, rake.ErrorCode(err))
	})

	t.Run("stores analyses without keywords", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))
		ctx := context.Background()
		a := &rake.Analysis{Source: "empty.txt"}

		require.NoError(t, svc.CreateAnalysis(ctx, a, ""))

		found, err := svc.FindAnalysisByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Keywords)
	})
}

func TestAnalysisService_FindAnalysisByID(t *testing.T) {
	t.Parallel()

	t.Run("returns keywords in ranked order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))
		ctx := context.Background()
		a := newAnalysis("abstract.txt")
		require.NoError(t, svc.CreateAnalysis(ctx, a, "text"))

		found, err := svc.FindAnalysisByID(ctx, a.ID)

		require.NoError(t, err)
		assert.Equal(t, a.Source, found.Source)
		assert.Equal(t, a.Title, found.Title)
		assert.Equal(t, 5, found.Candidates)
		assert.Equal(t, a.Keywords, found.Keywords)
		assert.True(t, a.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))

		_, err := svc.FindAnalysisByID(context.Background(), "missing")

		assert.Equal(t, rake.ENOTFOUND, rake.ErrorCode(err))
	})
}

func TestAnalysisService_FindAnalyses(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))
		ctx := context.Background()
		for i := range 3 {
			require.NoError(t, svc.CreateAnalysis(ctx, newAnalysis(fmt.Sprintf("doc%d.txt", i)), "text"))
		}

		analyses, err := svc.FindAnalyses(ctx, rake.AnalysisFilter{})

		require.NoError(t, err)
		require.Len(t, analyses, 3)
		assert.Equal(t, "doc2.txt", analyses[0].Source)
		assert.Equal(t, "doc0.txt", analyses[2].Source)
		assert.Nil(t, analyses[0].Keywords)
	})

	t.Run("filters by source and content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateAnalysis(ctx, newAnalysis("a.txt"), "first"))
		require.NoError(t, svc.CreateAnalysis(ctx, newAnalysis("a.txt"), "second"))
		require.NoError(t, svc.CreateAnalysis(ctx, newAnalysis("b.txt"), "first"))

		source := "a.txt"
		bySource, err := svc.FindAnalyses(ctx, rake.AnalysisFilter{Source: &source})
		require.NoError(t, err)
		assert.Len(t, bySource, 2)

		hash := sqlite.HashContent("first")
		byHash, err := svc.FindAnalyses(ctx, rake.AnalysisFilter{ContentHash: &hash})
		require.NoError(t, err)
		assert.Len(t, byHash, 2)

		both, err := svc.FindAnalyses(ctx, rake.AnalysisFilter{Source: &source, ContentHash: &hash})
		require.NoError(t, err)
		require.Len(t, both, 1)
		assert.Equal(t, "a.txt", both[0].Source)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))
		ctx := context.Background()
		for i := range 5 {
			require.NoError(t, svc.CreateAnalysis(ctx, newAnalysis(fmt.Sprintf("doc%d.txt", i)), "text"))
		}

		page, err := svc.FindAnalyses(ctx, rake.AnalysisFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "doc3.txt", page[0].Source)

		rest, err := svc.FindAnalyses(ctx, rake.AnalysisFilter{Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})
}

func TestAnalysisService_DeleteAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("removes analysis and its keywords", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewAnalysisService(db)
		ctx := context.Background()
		a := newAnalysis("abstract.txt")
		require.NoError(t, svc.CreateAnalysis(ctx, a, "text"))

		require.NoError(t, svc.DeleteAnalysis(ctx, a.ID))

		_, err := svc.FindAnalysisByID(ctx, a.ID)
		assert.Equal(t, rake.ENOTFOUND, rake.ErrorCode(err))

		var keywords int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM keywords WHERE analysis_id = ?", a.ID).Scan(&keywords))
		assert.Zero(t, keywords)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(setupTestDB(t))

		err := svc.DeleteAnalysis(context.Background(), "missing")

		assert.Equal(t, rake.ENOTFOUND, rake.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	assert.Len(t, sqlite.HashContent("text"), 16)
	assert.Equal(t, sqlite.HashContent("text"), sqlite.HashContent("text"))
	assert.NotEqual(t, sqlite.HashContent("text"), sqlite.HashContent("other"))
	assert.Equal(t, "ef46db3751d8e999", sqlite.HashContent(""))
}
