// ABOUTME: API key storage for the axees backend
// ABOUTME: Reads/writes ~/.axees/auth.json with 0600 permissions

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// DefaultService is the key name for the axees backend itself.
const DefaultService = "axees"

// AuthStore holds API keys by service name.
type AuthStore struct {
	Keys map[string]string `json:"keys"` // service -> api key

	mu         sync.Mutex
	runtimeKey string // per-invocation override, never persisted
}

// LoadAuth reads the auth file, or returns an empty store if it doesn't exist.
func LoadAuth() (*AuthStore, error) {
	store := &AuthStore{Keys: make(map[string]string)}
	data, err := os.ReadFile(AuthFile())
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading auth file: %w", err)
	}
	if err := json.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("parsing auth file: %w", err)
	}
	return store, nil
}

// Save writes the auth store to disk with restricted permissions.
func (a *AuthStore) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := EnsureDir(GlobalDir()); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling auth: %w", err)
	}

	if err := os.WriteFile(AuthFile(), data, 0o600); err != nil {
		return fmt.Errorf("writing auth file: %w", err)
	}
	return nil
}

// SetRuntimeKey installs a per-invocation key override. It beats stored
// and environment keys and is never written to disk.
func (a *AuthStore) SetRuntimeKey(key string) {
	a.mu.Lock()
	a.runtimeKey = key
	a.mu.Unlock()
}

// GetKey returns the API key for a service. Priority: runtime override,
// stored key, then environment variables AXEES_API_KEY_<SERVICE> and
// <SERVICE>_API_KEY. For the default service the latter is the plain
// AXEES_API_KEY variable.
func (a *AuthStore) GetKey(service string) string {
	a.mu.Lock()
	runtime := a.runtimeKey
	key := a.Keys[service]
	a.mu.Unlock()

	if runtime != "" {
		return runtime
	}
	if key != "" {
		return key
	}

	upper := strings.ToUpper(service)
	envVars := []string{
		"AXEES_API_KEY_" + upper,
		upper + "_API_KEY",
	}
	for _, env := range envVars {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// SetKey stores an API key for a service.
func (a *AuthStore) SetKey(service, key string) {
	a.mu.Lock()
	a.Keys[service] = key
	a.mu.Unlock()
}
