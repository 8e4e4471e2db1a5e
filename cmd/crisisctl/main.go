// Crisismap - Disaster Response Coordination and Geographic Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crisismap

// Command crisisctl runs the aggregation pipeline from the command line.
//
// It uses the same configuration as the server (environment, .env and
// config.yaml) with an in-memory cache and no database, so stored-query
// operations are not available.
//
//	crisisctl geocode "Lower East Side, NYC"
//	crisisctl geocode --text "Flooding reported near Canal Street and Brooklyn Bridge"
//	crisisctl reverse --lat 40.7128 --lng -74.0060
//	crisisctl reverse -- 40.7128 -74.0060
//	crisisctl classify "URGENT: family trapped on roof, need rescue"
//	crisisctl verify https://example.com/flood.jpg --context "street flooding"
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/crisismap/internal/cache"
	"github.com/tomtom215/crisismap/internal/config"
	"github.com/tomtom215/crisismap/internal/logging"
	"github.com/tomtom215/crisismap/internal/pipeline"
)

var version = "dev"

var (
	logLevel string
	compact  bool

	cfg *config.Config
	svc *pipeline.Services
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crisisctl",
		Short:         "Disaster data aggregation from the command line",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.Init(logging.Config{Level: logLevel, Format: "console", Output: cmd.ErrOrStderr()})

			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			svc = pipeline.NewServices(cfg, pipeline.Stores{}, cache.NewMemory())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&compact, "compact", false, "Print JSON on a single line")

	root.AddCommand(
		newGeocodeCmd(),
		newReverseCmd(),
		newClassifyCmd(),
		newSocialCmd(),
		newUpdatesCmd(),
		newVerifyCmd(),
	)
	return root
}

// result is the JSON printed by every command.
type result struct {
	Data     any      `json:"data"`
	Degraded bool     `json:"degraded,omitempty"`
	Cached   bool     `json:"cached,omitempty"`
	Sources  []string `json:"sources,omitempty"`
}

func fromOutcome[T any](o pipeline.Outcome[T]) result {
	return result{Data: o.Value, Degraded: o.Degraded, Cached: o.CacheHit, Sources: o.Sources}
}

func printJSON(w io.Writer, v any) error {
	var (
		b   []byte
		err error
	)
	if compact {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
