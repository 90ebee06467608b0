// Command schemacheck validates a cars-data.json listing file against the
// car document rules, or prints the car OpenAPI schema.
//
// Configuration comes from SCHEMACHECK_* environment variables or a .env
// file:
//
//	SCHEMACHECK_INPUT=public/cars/cars-data.json go run ./cmd/schemacheck
//	SCHEMACHECK_SCHEMA=true go run ./cmd/schemacheck
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	sr "github.com/kroiauto/schemarule"
	"github.com/kroiauto/schemarule/internal/config"
	"github.com/kroiauto/schemarule/internal/logger"
	"github.com/kroiauto/schemarule/schemas"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitFailure = 2
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
	log := logger.New(os.Stderr, logger.Format(cfg.LogFormat), cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, log, os.Stdin, os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, stdin io.Reader, stdout io.Writer) int {
	if cfg.Schema {
		if err := printSchema(stdout); err != nil {
			log.Error("generate schema", "error", err)
			return exitFailure
		}
		return exitOK
	}

	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			log.Error("open input", "path", cfg.Input, "error", err)
			return exitFailure
		}
		defer f.Close()
		in = f
	}

	results, err := schemas.LoadCars(ctx, in)
	if err != nil {
		log.Error("load cars", "path", cfg.Input, "error", err)
		return exitFailure
	}

	markers := schemas.Markers(results)
	for _, m := range markers {
		level := slog.LevelError
		if m.Level != sr.LevelError {
			level = slog.LevelWarn
		}
		log.Log(ctx, level, m.Message, "path", m.Path, "level", string(m.Level))
	}
	log.Info("validated cars",
		"cars", len(results),
		"errors", len(markers.Errors()),
		"warnings", len(markers.Warnings()),
	)

	if markers.HasErrors() || (cfg.FailOnWarning && len(markers.Warnings()) > 0) {
		return exitInvalid
	}
	return exitOK
}

func printSchema(w io.Writer) error {
	ref, err := sr.NewSchemaRefForValue(schemas.Car{})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ref.Value)
}
