package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/batch"
	rakehttp "github.com/fwojciec/rake/http"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when --config is not given. It may be absent.
const DefaultConfigPath = "rake.yaml"

// Config is the file-based configuration. Command-line flags override it.
type Config struct {
	Rake rake.Config `yaml:",inline"`

	Debug             bool          `yaml:"debug"`
	Database          string        `yaml:"database"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	Timeout           time.Duration `yaml:"timeout"`
	Extractor         string        `yaml:"extractor"`
	Render            bool          `yaml:"render"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Concurrency:       batch.DefaultConcurrency,
		RequestsPerSecond: 1,
		Timeout:           rakehttp.DefaultFetchTimeout,
		Extractor:         "trafilatura",
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if err := c.Rake.Validate(); err != nil {
		return err
	}
	if c.Concurrency < 0 {
		return rake.Errorf(rake.EINVALID, "concurrency must be non-negative, got %d", c.Concurrency)
	}
	if c.RequestsPerSecond <= 0 {
		return rake.Errorf(rake.EINVALID, "requests_per_second must be positive, got %g", c.RequestsPerSecond)
	}
	if c.Timeout < 0 {
		return rake.Errorf(rake.EINVALID, "timeout must be non-negative, got %s", c.Timeout)
	}
	switch c.Extractor {
	case "trafilatura", "readability":
	default:
		return rake.Errorf(rake.EINVALID, "unknown extractor %q (use trafilatura or readability)", c.Extractor)
	}
	return nil
}

// LoadConfig reads the YAML configuration at path on top of DefaultConfig.
// An empty path reads DefaultConfigPath and tolerates its absence; an
// explicit path that does not exist returns ENOTFOUND.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultConfigPath
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if optional {
			return cfg, nil
		}
		return nil, rake.Errorf(rake.ENOTFOUND, "config file %q not found", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, rake.Errorf(rake.EINVALID, "invalid config file %q: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv loads environment variables from the given .env files. Missing
// files are skipped and variables already set are not overridden.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
