// Crisismap - Disaster Response Coordination and Geographic Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crisismap

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// runCLI executes the root command offline: every live source is disabled
// so results come from the mock fallbacks.
func runCLI(t *testing.T, args ...string) (result, error) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "GOOGLE_MAPS_API_KEY", "MAPBOX_ACCESS_TOKEN", "TWITTER_BEARER_TOKEN"} {
		t.Setenv(key, "")
	}
	t.Setenv("NOMINATIM_ENABLED", "false")
	t.Setenv("BLUESKY_ENABLED", "false")
	t.Setenv("UPDATES_ENABLED", "false")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--compact"}, args...))

	if err := cmd.Execute(); err != nil {
		return result{}, err
	}
	var res result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("output %q is not JSON: %v", out.String(), err)
	}
	return res, nil
}

func dataField(t *testing.T, res result, key string) any {
	t.Helper()
	m, ok := res.Data.(map[string]any)
	if !ok {
		t.Fatalf("data = %#v, want object", res.Data)
	}
	return m[key]
}

func TestCLI_Commands(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
		want  any
	}{
		{"geocode", []string{"geocode", "Manhattan, NYC"}, "source", "mock"},
		{"reverse flags", []string{"reverse", "--lat", "40.7128", "--lng", "-74.0060"}, "source", "mock"},
		{"reverse args", []string{"reverse", "--", "40.7128", "-74.0060"}, "source", "mock"},
		{"classify", []string{"classify", "URGENT", "trapped", "need", "rescue"}, "category", "rescue"},
		{"verify", []string{"verify", "https://example.com/flood.jpg", "--context", "flood"}, "disaster_id", "cli"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := dataField(t, res, tt.field); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestCLI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"geocode without input", []string{"geocode"}, "location name or --text"},
		{"reverse out of range", []string{"reverse", "--lat", "91", "--lng", "0"}, "lat"},
		{"reverse missing flag", []string{"reverse", "--lat", "1"}, "lng"},
		{"reverse bad arg", []string{"reverse", "north", "0"}, "invalid lat"},
		{"verify bad url", []string{"verify", "not-a-url"}, "imageUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
