// Package slog provides logging decorators for rake services using log/slog.
package slog
