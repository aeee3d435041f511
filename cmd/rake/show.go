package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/rake"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	a, err := deps.Analyses.FindAnalysisByID(deps.Ctx, c.ID)
	if err != nil {
		if rake.ErrorCode(err) == rake.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: analysis %q not found. Use 'rake history' to see stored analyses.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rake.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		if a.Keywords == nil {
			a.Keywords = []rake.Keyword{}
		}
		return writeJSON(deps.Stdout, a)
	}

	fmt.Fprintf(deps.Stdout, "Source:     %s\n", a.Source)
	if a.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title:      %s\n", a.Title)
	}
	fmt.Fprintf(deps.Stdout, "Created:    %s\n", a.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(deps.Stdout, "Candidates: %d\n", a.Candidates)
	fmt.Fprintf(deps.Stdout, "Hash:       %s\n", a.ContentHash)

	if out := rake.FormatKeywords(a.Keywords); out != "" {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, out)
	}
	return nil
}
