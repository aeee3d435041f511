package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/rake"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := rake.AnalysisFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rake.ErrorMessage(err))
		return err
	}

	if c.JSON {
		if analyses == nil {
			analyses = []*rake.Analysis{}
		}
		return writeJSON(deps.Stdout, analyses)
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'rake extract --save' to store one.")
		return nil
	}

	for _, a := range analyses {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.ID, a.CreatedAt.Local().Format(time.DateTime), a.Source)
	}

	return nil
}
