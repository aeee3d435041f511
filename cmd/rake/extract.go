package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/batch"
	"github.com/fwojciec/rake/fs"
	"github.com/goccy/go-json"
)

// sourceOutput is the JSON form of one source in a multi-source run.
type sourceOutput struct {
	Source     string         `json:"source"`
	Title      string         `json:"title,omitempty"`
	ID         string         `json:"id,omitempty"`
	Candidates int            `json:"candidates"`
	Keywords   []rake.Keyword `json:"keywords"`
	Duplicate  bool           `json:"duplicate,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if c.Text != "" && len(c.Sources) > 0 {
		fmt.Fprintf(deps.Stderr, "error: use either --text or sources, not both\n")
		return rake.Errorf(rake.EINVALID, "use either --text or sources, not both")
	}

	runner := *deps.Runner
	sources := c.Sources
	switch {
	case c.Text != "":
		runner.Loader = &TextLoader{Text: c.Text}
		sources = []string{TextSource}
	case len(sources) == 0:
		sources = []string{fs.Stdin}
	}
	if c.Concurrency > 0 {
		runner.Concurrency = c.Concurrency
	}
	if c.Save {
		runner.Analyses = deps.Analyses
	}

	opts := rake.Options{
		StopWords:     c.StopWords,
		StopWordPath:  c.Stoplist,
		MaxKeywords:   c.Max,
		MinWordLength: c.MinLength,
	}

	var progress batch.ProgressFunc
	if len(sources) > 1 {
		progress = func(event batch.ProgressEvent) {
			if event.Type == batch.ProgressFailed {
				fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", batch.TruncateSource(event.Source, 60), event.Error)
			}
		}
	}

	outcomes, err := runner.Run(deps.Ctx, sources, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rake.ErrorMessage(err))
		return err
	}

	if len(outcomes) == 1 {
		return c.writeSingle(deps, outcomes[0])
	}

	if c.JSON {
		if err := writeJSON(deps.Stdout, sourceOutputs(outcomes)); err != nil {
			return err
		}
	} else {
		c.writeText(deps, outcomes)
	}

	if failed := batch.Failed(outcomes); failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(outcomes))
	}
	return nil
}

func (c *ExtractCmd) writeSingle(deps *Dependencies, o *batch.Outcome) error {
	if o.Err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", o.Err)
		return o.Err
	}

	if c.JSON {
		keywords := o.Result.Keywords
		if keywords == nil {
			keywords = []rake.Keyword{}
		}
		if err := writeJSON(deps.Stdout, keywords); err != nil {
			return err
		}
	} else if out := rake.FormatKeywords(o.Result.Keywords); out != "" {
		fmt.Fprintln(deps.Stdout, out)
	}

	if o.Analysis != nil {
		fmt.Fprintf(deps.Stderr, "Saved analysis %s\n", o.Analysis.ID)
	}
	return nil
}

func (c *ExtractCmd) writeText(deps *Dependencies, outcomes []*batch.Outcome) {
	first := true
	for _, o := range outcomes {
		switch {
		case o.Duplicate:
			fmt.Fprintf(deps.Stderr, "  skip %s: duplicate source\n", batch.TruncateSource(o.Source, 60))
			continue
		case o.Err != nil:
			continue
		}

		if !first {
			fmt.Fprintln(deps.Stdout)
		}
		first = false

		fmt.Fprintf(deps.Stdout, "==> %s <==\n", o.Source)
		if out := rake.FormatKeywords(o.Result.Keywords); out != "" {
			fmt.Fprintln(deps.Stdout, out)
		}
		if o.Analysis != nil {
			fmt.Fprintf(deps.Stderr, "Saved analysis %s (%s)\n", o.Analysis.ID, o.Source)
		}
	}
}

func sourceOutputs(outcomes []*batch.Outcome) []sourceOutput {
	out := make([]sourceOutput, 0, len(outcomes))
	for _, o := range outcomes {
		so := sourceOutput{
			Source:    o.Source,
			Keywords:  []rake.Keyword{},
			Duplicate: o.Duplicate,
		}
		if o.Document != nil {
			so.Title = o.Document.Title
		}
		if o.Result != nil {
			so.Candidates = o.Result.Total()
			if o.Result.Keywords != nil {
				so.Keywords = o.Result.Keywords
			}
		}
		if o.Analysis != nil {
			so.ID = o.Analysis.ID
		}
		if o.Err != nil {
			so.Error = o.Err.Error()
		}
		out = append(out, so)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
