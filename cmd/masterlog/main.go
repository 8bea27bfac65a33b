// Copyright 2025 ENKI-420
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	trainingdata "github.com/ENKI-420/dnalang-training-data"
	"github.com/ENKI-420/dnalang-training-data/export"
	"github.com/ENKI-420/dnalang-training-data/storage"
)

func main() {
	app := &cli.App{
		Name:  "masterlog",
		Usage: "Convert DNA::}{::lang masterlogs into AI training data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "convert",
				Usage:  "Convert a masterlog into a training bundle and records file",
				Action: convertCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the masterlog",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the bundle JSON; the records JSONL is written alongside",
						Value:   "masterlog_training.json",
					},
					&cli.BoolFlag{
						Name:  "snapshot",
						Usage: "Also write a binary snapshot of the records",
					},
				},
			},
			{
				Name:      "batch",
				Usage:     "Convert many masterlogs concurrently",
				ArgsUsage: "MASTERLOG [MASTERLOG...]",
				Action:    batchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Directory for the converted outputs",
						Value:   "training_data",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Worker pool size (0 selects half the CPUs)",
					},
					&cli.BoolFlag{
						Name:  "snapshot",
						Usage: "Also write binary snapshots of the records",
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export a records file for fine-tuning or Ollama",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "records",
						Aliases:  []string{"r"},
						Usage:    "Path to the records file (JSONL or .snap)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (alpaca, ollama)",
						Value:   "alpaca",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output path (defaults to training_alpaca.json or Modelfile.aura)",
					},
					&cli.IntFlag{
						Name:  "max-samples",
						Usage: "Maximum records to export",
						Value: 500,
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Ollama base model for the Modelfile",
						Value: "phi3:mini",
					},
					&cli.IntFlag{
						Name:  "knowledge-entries",
						Usage: "Q/A pairs embedded in the Modelfile SYSTEM block",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func convertCommand(c *cli.Context) error {
	input := c.String("input")
	output := c.String("output")

	pipeline, err := trainingdata.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Masterlog: %s\n", input)

	conversion, err := pipeline.ConvertFile(input)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := writeConversion(output, conversion, c.Bool("snapshot")); err != nil {
		return err
	}

	stats := conversion.Corpus.Stats
	fmt.Fprintf(os.Stderr, "Conversion complete\n")
	fmt.Fprintf(os.Stderr, "  Equations: %d\n", stats.EquationCount)
	fmt.Fprintf(os.Stderr, "  Metrics: %d\n", stats.MetricCount)
	fmt.Fprintf(os.Stderr, "  Organisms: %d\n", stats.OrganismCount)
	fmt.Fprintf(os.Stderr, "  Sections: %d\n", stats.SectionCount)
	fmt.Fprintf(os.Stderr, "  Training pairs: %d\n", len(conversion.Records))

	return nil
}

// writeConversion writes the bundle JSON at bundlePath and the records JSONL
// (plus optionally a snapshot) alongside it.
func writeConversion(bundlePath string, conversion *trainingdata.Conversion, snapshot bool) error {
	bundle, err := export.NewBundle(conversion.Corpus, conversion.Records)
	if err != nil {
		return err
	}

	if err := export.WriteBundle(bundlePath, bundle); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	base := strings.TrimSuffix(bundlePath, ".json")
	if err := storage.WriteRecords(base+".jsonl", conversion.Records); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}

	if snapshot {
		if err := storage.WriteSnapshot(base+storage.SnapshotExt, conversion.Records); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	return nil
}

func batchCommand(c *cli.Context) error {
	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("at least one masterlog path is required")
	}

	outputDir := c.String("output-dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	pipeline, err := trainingdata.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	snapshot := c.Bool("snapshot")
	convert := func(input string) error {
		conversion, err := pipeline.ConvertFile(input)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		return writeConversion(filepath.Join(outputDir, name+"_training.json"), conversion, snapshot)
	}

	opts := []export.BatchOption{export.WithProgress(os.Stderr)}
	if workers := c.Int("workers"); workers > 0 {
		opts = append(opts, export.WithPoolSize(workers))
	}

	converter, err := export.NewBatchConverter(convert, opts...)
	if err != nil {
		return err
	}
	defer converter.Release()

	// Interrupts stop new submissions; in-flight conversions finish.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	fmt.Fprintf(os.Stderr, "Output directory: %s\n", outputDir)

	if err := converter.Run(ctx, inputs); err != nil {
		return fmt.Errorf("batch conversion finished with failures: %w", err)
	}

	return nil
}

func exportCommand(c *cli.Context) error {
	records, err := storage.ReadKnowledgeBase(c.String("records"))
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	cfg := export.NewConfig(
		export.WithMaxSamples(c.Int("max-samples")),
		export.WithModel(c.String("model")),
		export.WithKnowledgeEntries(c.Int("knowledge-entries")),
	)

	format := strings.ToLower(c.String("format"))
	output := c.String("output")

	switch format {
	case "alpaca":
		if output == "" {
			output = "training_alpaca.json"
		}
		if err := export.WriteAlpaca(output, records, cfg); err != nil {
			return fmt.Errorf("alpaca export failed: %w", err)
		}
	case "ollama":
		if output == "" {
			output = "Modelfile.aura"
		}
		if err := export.WriteModelfile(output, records, cfg); err != nil {
			return fmt.Errorf("ollama export failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q: must be alpaca or ollama", format)
	}

	fmt.Fprintf(os.Stderr, "Exported %s training data to %s\n", format, output)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
