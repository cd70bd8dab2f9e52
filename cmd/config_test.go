package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name string
		file string // yaml content, no file when empty
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: Config{
				Catalog: CatalogConfig{Path: "$.assets"},
				Clock:   ClockConfig{Timezone: "Europe/Moscow", Label: "UTC+3", Interval: time.Second},
				Log:     LogConfig{Level: "warn", Format: "console"},
			},
		},
		{
			name: "file",
			file: "seed: 7\ncatalog:\n  file: coins.json\n  path: $.data\nclock:\n  timezone: UTC\n  label: UTC\n  interval: 5s\n",
			want: Config{
				Seed:    7,
				Catalog: CatalogConfig{File: "coins.json", Path: "$.data"},
				Clock:   ClockConfig{Timezone: "UTC", Label: "UTC", Interval: 5 * time.Second},
				Log:     LogConfig{Level: "warn", Format: "console"},
			},
		},
		{
			name: "environment wins over file",
			file: "seed: 7\nlog:\n  level: info\n",
			env: map[string]string{
				"CRYPTODASH_SEED":           "42",
				"CRYPTODASH_CLOCK_INTERVAL": "250ms",
				"CRYPTODASH_LOG_FORMAT":     "json",
			},
			want: Config{
				Seed:    42,
				Catalog: CatalogConfig{Path: "$.assets"},
				Clock:   ClockConfig{Timezone: "Europe/Moscow", Label: "UTC+3", Interval: 250 * time.Millisecond},
				Log:     LogConfig{Level: "info", Format: "json"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			file := ""
			if tc.file != "" {
				file = filepath.Join(t.TempDir(), "config.yaml")
				if err := os.WriteFile(file, []byte(tc.file), 0644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := LoadConfig(file)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, *got); diff != "" {
				t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("LoadConfig() succeeded, want an error")
		}
	})
	t.Run("non positive interval", func(t *testing.T) {
		t.Setenv("CRYPTODASH_CLOCK_INTERVAL", "0s")
		if _, err := LoadConfig(""); err == nil {
			t.Error("LoadConfig() succeeded, want an error")
		}
	})
	t.Run("unknown timezone", func(t *testing.T) {
		c := ClockConfig{Timezone: "Mars/Olympus_Mons"}
		if _, err := c.Location(); err == nil {
			t.Error("Location() succeeded, want an error")
		}
	})
}
