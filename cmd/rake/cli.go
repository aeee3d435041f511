package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *Config
	Logger   *slog.Logger
	Runner   *batch.Runner
	Analyses rake.AnalysisService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `placeholder:"PATH" help:"YAML configuration file (default: rake.yaml if present)"`
	DB     string `name:"db" env:"RAKE_DB" placeholder:"PATH" help:"Database path for stored analyses"`
	Debug  bool   `env:"RAKE_DEBUG" help:"Log diagnostics to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract keywords from files, URLs or text"`
	History HistoryCmd `cmd:"" help:"List stored analyses"`
	Show    ShowCmd    `cmd:"" help:"Show a stored analysis"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored analysis"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Sources     []string      `arg:"" optional:"" help:"Files, http(s) URLs, or - for stdin (default: stdin)"`
	Text        string        `help:"Analyse this text instead of reading sources"`
	Stoplist    string        `short:"s" env:"RAKE_STOPLIST" placeholder:"PATH" help:"Stopword file"`
	StopWords   []string      `short:"w" name:"stopword" help:"Stopword (repeatable, takes precedence over --stoplist)"`
	Max         int           `short:"n" help:"Maximum number of keywords (0 keeps the top third)"`
	MinLength   int           `short:"m" name:"min-length" help:"Words must be longer than this many characters to be scored"`
	JSON        bool          `name:"json" help:"Write JSON output"`
	Save        bool          `help:"Store each analysis in the database"`
	Concurrency int           `short:"c" help:"Concurrent source limit"`
	Extractor   string        `placeholder:"NAME" help:"HTML content extractor: trafilatura or readability"`
	Timeout     time.Duration `help:"HTTP fetch timeout"`
	Render      bool          `help:"Render URLs in headless Chrome before extraction"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Source string `help:"Only list analyses of this source"`
	Limit  int    `default:"20" help:"Maximum number of analyses to list (0 for all)"`
	JSON   bool   `name:"json" help:"Write JSON output"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Analysis ID"`
	JSON bool   `name:"json" help:"Write JSON output"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Analysis ID"`
	Force bool   `help:"Confirm deletion"`
}
