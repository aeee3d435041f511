// Package batch runs keyword extraction over many sources.
// It coordinates document loading, extraction, and optional storage of
// the resulting analyses.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// dedupeFalsePositiveRate is the acceptable false positive rate when
// skipping repeated sources.
const dedupeFalsePositiveRate = 1e-9

// Runner extracts keywords from many sources concurrently.
type Runner struct {
	Loader    rake.DocumentLoader
	Extractor rake.KeywordExtractor

	// Analyses stores every successful outcome when set.
	Analyses rake.AnalysisService

	Concurrency int

	// RetryDelays are the waits between load attempts. Nil means
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Log receives retry notices.
	Log LogFunc
}

// Outcome holds the result of processing one source.
type Outcome struct {
	Source   string
	Document *rake.Document
	Result   *rake.Result

	// Analysis is the stored analysis when the runner saves results.
	Analysis *rake.Analysis

	// Duplicate is set when the source repeats an earlier one and was skipped.
	Duplicate bool

	Err error
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run extracts keywords from every source and returns one outcome per
// source in input order. A failing source does not stop the others; its
// error is recorded in its outcome. Invalid options fail the whole run.
func (r *Runner) Run(ctx context.Context, sources []string, opts rake.Options, progress ProgressFunc) ([]*Outcome, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	outcomes := make([]*Outcome, len(sources))
	var pending []int

	seen := bloom.NewFilter(uint(len(sources)), dedupeFalsePositiveRate)
	for i, source := range sources {
		outcomes[i] = &Outcome{Source: source}
		if !seen.Add(source) {
			outcomes[i].Duplicate = true
			continue
		}
		pending = append(pending, i)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	done := make(chan int, total)
	var completed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range pending {
			g.Go(func() error {
				r.process(gctx, outcomes[i], opts)
				done <- i
				return nil
			})
		}
		_ = g.Wait()
		close(done)
	}()

	for i := range done {
		completed++
		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Source:    outcomes[i].Source,
		}
		if err := outcomes[i].Err; err != nil {
			event.Type = ProgressFailed
			event.Error = err
		}
		progress(event)
	}

	// Save in input order so stored history follows the command line.
	if r.Analyses != nil {
		for _, i := range pending {
			if outcomes[i].Err != nil {
				continue
			}
			outcomes[i].Err = r.save(ctx, outcomes[i])
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// process loads and analyses a single source.
func (r *Runner) process(ctx context.Context, o *Outcome, opts rake.Options) {
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	doc, err := LoadWithRetryDelays(ctx, o.Source, r.Loader.LoadDocument, r.Log, delays)
	if err != nil {
		o.Err = err
		return
	}
	if doc.Source == "" {
		doc.Source = o.Source
	}
	o.Document = doc

	result, err := r.Extractor.Extract(ctx, doc.Text, opts)
	if err != nil {
		o.Err = err
		return
	}
	o.Result = result
}

func (r *Runner) save(ctx context.Context, o *Outcome) error {
	a := &rake.Analysis{
		Source:     o.Source,
		Title:      o.Document.Title,
		Candidates: o.Result.Total(),
		Keywords:   o.Result.Keywords,
	}
	if err := r.Analyses.CreateAnalysis(ctx, a, o.Document.Text); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	o.Analysis = a
	return nil
}

// Failed returns the number of outcomes that carry an error.
func Failed(outcomes []*Outcome) int {
	var n int
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
