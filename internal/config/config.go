// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultBaseURL is the axees backend address when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// Intent resolution modes.
const (
	IntentModeLocal  = "local"
	IntentModeRemote = "remote"
)

// DefaultIntentThreshold is the minimum confidence accepted from the
// remote analyzer before falling back to local heuristics.
const DefaultIntentThreshold = 0.6

// IntentSettings controls how free-form utterances are resolved.
type IntentSettings struct {
	Mode      string  `json:"mode,omitempty"`      // "local" or "remote"
	Threshold float64 `json:"threshold,omitempty"` // remote confidence floor
}

// Settings holds the merged configuration.
type Settings struct {
	BaseURL    string            `json:"base_url,omitempty"`
	Intent     IntentSettings    `json:"intent,omitempty"`
	StrictURLs bool              `json:"strict_urls,omitempty"` // reject unschemed scan targets
	LogLevel   string            `json:"log_level,omitempty"`
	TopK       int               `json:"top_k,omitempty"` // docstore query results
	Env        map[string]string `json:"env,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	return merged, nil
}

// EffectiveBaseURL returns the configured base URL or the default.
func (s *Settings) EffectiveBaseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return DefaultBaseURL
}

// IntentMode returns the configured resolution mode, defaulting to local.
func (s *Settings) IntentMode() string {
	if s.Intent.Mode == IntentModeRemote {
		return IntentModeRemote
	}
	return IntentModeLocal
}

// IntentThreshold returns the remote confidence floor, defaulting when unset.
func (s *Settings) IntentThreshold() float64 {
	if s.Intent.Threshold > 0 {
		return s.Intent.Threshold
	}
	return DefaultIntentThreshold
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.BaseURL != "" {
		result.BaseURL = project.BaseURL
	}
	if project.Intent.Mode != "" {
		result.Intent.Mode = project.Intent.Mode
	}
	if project.Intent.Threshold != 0 {
		result.Intent.Threshold = project.Intent.Threshold
	}
	if project.StrictURLs {
		result.StrictURLs = true
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.TopK != 0 {
		result.TopK = project.TopK
	}

	// Merge env maps
	if len(project.Env) > 0 {
		if result.Env == nil {
			result.Env = make(map[string]string)
		}
		for k, v := range project.Env {
			result.Env[k] = v
		}
	}

	return &result
}
