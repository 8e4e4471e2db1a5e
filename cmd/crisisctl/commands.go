// Crisismap - Disaster Response Coordination and Geographic Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crisismap

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/crisismap/internal/classify"
	"github.com/tomtom215/crisismap/internal/pipeline"
)

func newGeocodeCmd() *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "geocode [location...]",
		Short: "Geocode place names, or extract and geocode locations from --text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case text != "":
				out, err := svc.Geocoder.ExtractAndGeocode(ctx, text)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), fromOutcome(out))
			case len(args) == 1:
				out, err := svc.Geocoder.Geocode(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), fromOutcome(out))
			case len(args) > 1:
				outs, err := svc.Geocoder.Batch(ctx, args)
				if err != nil {
					return err
				}
				results := make([]result, len(outs))
				for i, o := range outs {
					results[i] = fromOutcome(o)
				}
				return printJSON(cmd.OutOrStdout(), results)
			default:
				return errors.New("a location name or --text is required")
			}
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Free text to extract locations from")
	return cmd
}

func newReverseCmd() *cobra.Command {
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "reverse [lat lng]",
		Short: "Reverse geocode a coordinate",
		Long: "Reverse geocode a coordinate given as --lat/--lng or as two arguments.\n" +
			"Negative positional values need a separator: crisisctl reverse -- 40.71 -74.00",
		Args: cobra.MatchAll(cobra.MaximumNArgs(2), func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				return errors.New("both lat and lng are required")
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				var err error
				if lat, err = strconv.ParseFloat(args[0], 64); err != nil {
					return fmt.Errorf("invalid lat %q: %w", args[0], err)
				}
				if lng, err = strconv.ParseFloat(args[1], 64); err != nil {
					return fmt.Errorf("invalid lng %q: %w", args[1], err)
				}
			} else if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
				return errors.New("both lat and lng are required")
			}

			out, err := svc.Geocoder.Reverse(cmd.Context(), lat, lng)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fromOutcome(out))
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Score report text for priority, sentiment and category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), result{Data: classify.New().Classify(strings.Join(args, " "))})
		},
	}
}

func newSocialCmd() *cobra.Command {
	var (
		disasterID string
		keywords   []string
	)

	cmd := &cobra.Command{
		Use:   "social",
		Short: "Fetch and classify social media reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := svc.Social.FetchForDisaster(cmd.Context(), disasterID, keywords)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fromOutcome(out))
		},
	}
	cmd.Flags().StringVar(&disasterID, "disaster", "cli", "Disaster ID attached to the reports")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "Search keywords (comma separated)")
	_ = cmd.MarkFlagRequired("keywords")
	return cmd
}

func newUpdatesCmd() *cobra.Command {
	var (
		disasterID string
		keywords   []string
		limit      int
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Fetch official updates from configured feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return printJSON(cmd.OutOrStdout(), result{Data: svc.Updates.Sources()})
			}
			out, err := svc.Updates.FetchForDisaster(cmd.Context(), disasterID, keywords, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fromOutcome(out))
		},
	}
	cmd.Flags().StringVar(&disasterID, "disaster", "cli", "Disaster ID attached to the updates")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "Filter keywords (comma separated)")
	cmd.Flags().IntVar(&limit, "limit", pipeline.DefaultUpdatesLimit, "Maximum updates")
	cmd.Flags().BoolVar(&list, "sources", false, "List configured sources instead of fetching")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		disasterID string
		hint       string
	)

	cmd := &cobra.Command{
		Use:   "verify <image-url>",
		Short: "Assess whether an image is an authentic disaster photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := svc.Verifier.Verify(cmd.Context(), disasterID, args[0], hint)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fromOutcome(out))
		},
	}
	cmd.Flags().StringVar(&disasterID, "disaster", "cli", "Disaster ID recorded with the verification")
	cmd.Flags().StringVar(&hint, "context", "", "Description of what the image should show")
	return cmd
}
