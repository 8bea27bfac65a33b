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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	trainingdata "github.com/ENKI-420/dnalang-training-data"
	"github.com/ENKI-420/dnalang-training-data/prompt"
)

func main() {
	app := &cli.App{
		Name:  "aura",
		Usage: "Query a converted DNA::}{::lang knowledge base",
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
				Name:      "search",
				Usage:     "Search the knowledge base",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "kb",
						Aliases:  []string{"k"},
						Usage:    "Path to the knowledge base (JSONL or .snap)",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum hits to return",
						Value:   5,
					},
				},
			},
			{
				Name:      "context",
				Usage:     "Print the packed knowledge context for a query",
				ArgsUsage: "QUERY...",
				Action:    contextCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "kb",
						Aliases:  []string{"k"},
						Usage:    "Path to the knowledge base (JSONL or .snap)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "budget",
						Usage: "Token budget for the packed context",
						Value: 2000,
					},
				},
			},
			{
				Name:      "prompt",
				Usage:     "Assemble the full chat prompt for a query",
				ArgsUsage: "QUERY...",
				Action:    promptCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "kb",
						Aliases:  []string{"k"},
						Usage:    "Path to the knowledge base (JSONL or .snap)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "budget",
						Usage: "Token budget for the retrieved knowledge",
						Value: 2000,
					},
					&cli.StringFlag{
						Name:  "system",
						Usage: "Override the system prompt",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func queryArg(c *cli.Context) (string, error) {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return "", fmt.Errorf("a query is required")
	}
	return query, nil
}

func searchCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	searcher, err := trainingdata.Open(c.String("kb"))
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}

	results, err := searcher.Search(query, c.Int("limit"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: '%s' (%d)[%d]\n", i, hit.Record.Instruction, hit.Record.Id, hit.Score)
	}

	return nil
}

func contextCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	searcher, err := trainingdata.Open(c.String("kb"))
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}

	packed, err := searcher.Context(query, c.Int("budget"))
	if err != nil {
		return err
	}

	fmt.Print(packed)
	return nil
}

func promptCommand(c *cli.Context) error {
	query, err := queryArg(c)
	if err != nil {
		return err
	}

	searcher, err := trainingdata.Open(c.String("kb"))
	if err != nil {
		return fmt.Errorf("failed to open knowledge base: %w", err)
	}

	opts := []prompt.ConfigOption{prompt.WithContextBudget(c.Int("budget"))}
	if system := c.String("system"); system != "" {
		opts = append(opts, prompt.WithSystemPrompt(system))
	}

	builder, err := prompt.NewBuilder(searcher, prompt.NewConfig(opts...))
	if err != nil {
		return err
	}

	assembled, err := builder.BuildPrompt(nil, query)
	if err != nil {
		return err
	}

	fmt.Println(assembled)
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
