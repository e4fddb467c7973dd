// ABOUTME: Tests for config loading, merging, and defaults
// ABOUTME: Uses temp directories for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{BaseURL: "http://global:8000", LogLevel: "info"}
	project := &Settings{BaseURL: "http://project:8000"}

	result := merge(global, project)

	if result.BaseURL != "http://project:8000" {
		t.Errorf("BaseURL = %q, want %q", result.BaseURL, "http://project:8000")
	}
	if result.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", result.LogLevel, "info")
	}
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	if result == nil {
		t.Fatal("merge(nil, nil) should return non-nil")
	}
}

func TestMerge_IntentOverride(t *testing.T) {
	t.Parallel()

	global := &Settings{Intent: IntentSettings{Mode: IntentModeLocal, Threshold: 0.5}}
	project := &Settings{Intent: IntentSettings{Mode: IntentModeRemote}}

	result := merge(global, project)

	if result.Intent.Mode != IntentModeRemote {
		t.Errorf("Intent.Mode = %q, want %q", result.Intent.Mode, IntentModeRemote)
	}
	// Threshold not set in project keeps the global value
	if result.Intent.Threshold != 0.5 {
		t.Errorf("Intent.Threshold = %f, want 0.5", result.Intent.Threshold)
	}
}

func TestMerge_EnvMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Env: map[string]string{"A": "1", "B": "2"}}
	project := &Settings{Env: map[string]string{"B": "override", "C": "3"}}

	result := merge(global, project)

	if result.Env["A"] != "1" {
		t.Error("expected A=1 from global")
	}
	if result.Env["B"] != "override" {
		t.Error("expected B=override from project")
	}
	if result.Env["C"] != "3" {
		t.Error("expected C=3 from project")
	}
}

func TestLoadFile_NotExist(t *testing.T) {
	t.Parallel()

	s, err := loadFile("/nonexistent/path/config.json")
	if !os.IsNotExist(err) {
		t.Errorf("expected not exist error, got %v", err)
	}
	if s == nil {
		t.Error("expected non-nil default settings")
	}
}

func TestLoadFile_ValidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"base_url":"http://test:9000","intent":{"mode":"remote","threshold":0.8},"strict_urls":true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.BaseURL != "http://test:9000" {
		t.Errorf("BaseURL = %q, want %q", s.BaseURL, "http://test:9000")
	}
	if s.Intent.Mode != "remote" {
		t.Errorf("Intent.Mode = %q, want %q", s.Intent.Mode, "remote")
	}
	if s.Intent.Threshold != 0.8 {
		t.Errorf("Intent.Threshold = %f, want 0.8", s.Intent.Threshold)
	}
	if !s.StrictURLs {
		t.Error("expected StrictURLs true")
	}
}

func TestSettings_Defaults(t *testing.T) {
	t.Parallel()

	s := &Settings{}

	if got := s.EffectiveBaseURL(); got != DefaultBaseURL {
		t.Errorf("EffectiveBaseURL = %q, want %q", got, DefaultBaseURL)
	}
	if got := s.IntentMode(); got != IntentModeLocal {
		t.Errorf("IntentMode = %q, want %q", got, IntentModeLocal)
	}
	if got := s.IntentThreshold(); got != DefaultIntentThreshold {
		t.Errorf("IntentThreshold = %f, want %f", got, DefaultIntentThreshold)
	}
}

func TestSettings_ConfiguredValues(t *testing.T) {
	t.Parallel()

	s := &Settings{
		BaseURL: "https://axees.example.com",
		Intent:  IntentSettings{Mode: IntentModeRemote, Threshold: 0.75},
	}

	if got := s.EffectiveBaseURL(); got != "https://axees.example.com" {
		t.Errorf("EffectiveBaseURL = %q", got)
	}
	if got := s.IntentMode(); got != IntentModeRemote {
		t.Errorf("IntentMode = %q, want remote", got)
	}
	if got := s.IntentThreshold(); got != 0.75 {
		t.Errorf("IntentThreshold = %f, want 0.75", got)
	}
}

func TestSettings_UnknownIntentModeFallsBackToLocal(t *testing.T) {
	t.Parallel()

	s := &Settings{Intent: IntentSettings{Mode: "magic"}}
	if got := s.IntentMode(); got != IntentModeLocal {
		t.Errorf("IntentMode = %q, want local for unknown mode", got)
	}
}
