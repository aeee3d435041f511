package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/batch"
	"github.com/fwojciec/rake/fs"
	"github.com/fwojciec/rake/goquery"
	rakehttp "github.com/fwojciec/rake/http"
	"github.com/fwojciec/rake/readability"
	"github.com/fwojciec/rake/rod"
	rakeslog "github.com/fwojciec/rake/slog"
	"github.com/fwojciec/rake/sqlite"
	"github.com/fwojciec/rake/trafilatura"
)

func main() {
	ctx := context.Background()

	if err := LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read for the "-" source.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Analyses replaces the SQLite service when set, for end-to-end testing.
	Analyses rake.AnalysisService

	fetcher rake.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		_ = m.fetcher.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rake"),
		kong.Description("Rapid automatic keyword extraction."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rake --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	config, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	if cli.Debug {
		config.Debug = true
	}
	if cli.DB != "" {
		config.Database = cli.DB
	}
	deps.Config = config
	deps.Logger = newLogger(stderr, config.Debug)

	cmd := strings.Fields(kongCtx.Command())[0]
	defer m.Close()

	if cmd != "extract" || cli.Extract.Save {
		analyses, err := m.openAnalyses(config, stderr)
		if err != nil {
			return err
		}
		deps.Analyses = analyses
	}

	if cmd == "extract" {
		runner, err := m.newRunner(config, &cli.Extract, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Runner = runner
	}

	return kongCtx.Run(deps)
}

// openAnalyses returns the analysis service, opening the database if needed.
func (m *Main) openAnalyses(config *Config, stderr io.Writer) (rake.AnalysisService, error) {
	if m.Analyses != nil {
		return m.Analyses, nil
	}

	path := config.Database
	if path == "" {
		path = defaultDBPath()
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		fmt.Fprintf(stderr, "Hint: Set RAKE_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewAnalysisService(m.DB), nil
}

// newRunner wires the extraction pipeline for the extract command.
func (m *Main) newRunner(config *Config, cmd *ExtractCmd, logger *slog.Logger, stderr io.Writer) (*batch.Runner, error) {
	name := config.Extractor
	if cmd.Extractor != "" {
		name = cmd.Extractor
	}
	content, err := newContentExtractor(name)
	if err != nil {
		return nil, err
	}
	converter := goquery.NewTextConverter()

	fetcher, err := newFetcher(config, cmd, stderr)
	if err != nil {
		return nil, err
	}
	m.fetcher = rakeslog.NewLoggingFetcher(fetcher, logger)

	files := fs.NewDocumentLoader(content, converter)
	if m.Stdin != nil {
		files.Stdin = m.Stdin
	}
	pages := &rakehttp.DocumentLoader{
		Fetcher:     m.fetcher,
		Extractor:   content,
		Converter:   converter,
		RateLimiter: rakehttp.NewDomainLimiter(config.RequestsPerSecond),
	}

	stopWords := rakeslog.NewLoggingStopWordLoader(fs.NewStopWordLoader(), logger)
	extractor, err := rake.NewExtractor(config.Rake, stopWords)
	if err != nil {
		return nil, err
	}

	return &batch.Runner{
		Loader:      rakeslog.NewLoggingDocumentLoader(&SourceLoader{Files: files, URLs: pages}, logger),
		Extractor:   rakeslog.NewLoggingExtractor(extractor, logger),
		Concurrency: config.Concurrency,
		Log: func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		},
	}, nil
}

// newFetcher returns a browser-backed fetcher when rendering is requested
// and a plain HTTP fetcher otherwise.
func newFetcher(config *Config, cmd *ExtractCmd, stderr io.Writer) (rake.Fetcher, error) {
	if config.Render || cmd.Render {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}

	timeout := config.Timeout
	if cmd.Timeout > 0 {
		timeout = cmd.Timeout
	}
	return rakehttp.NewFetcher(rakehttp.WithTimeout(timeout)), nil
}

func newContentExtractor(name string) (rake.ContentExtractor, error) {
	switch name {
	case "", "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "readability":
		return readability.NewExtractor(), nil
	}
	return nil, rake.Errorf(rake.EINVALID, "unknown extractor %q (use trafilatura or readability)", name)
}

// newLogger returns a debug-level text logger on w when debug is set and
// a logger that discards everything otherwise.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rake.db"
	}
	dir := filepath.Join(home, ".rake")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rake.db")
}
