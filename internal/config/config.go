// Package config loads and persists the hubscan endpoints configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/hubscan/hubscan/pkg/endpoints"
	"github.com/hubscan/hubscan/pkg/errors"
	"github.com/hubscan/hubscan/pkg/logging"
)

const (
	// EnvConfigFile overrides the endpoints file location.
	EnvConfigFile = "HUBSCAN_CONFIG"

	defaultFileName = "endpoints.yaml"
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// File is the on-disk shape of the endpoints configuration.
type File struct {
	Endpoints []endpoints.Endpoint `yaml:"endpoints" json:"endpoints"`
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Path resolves the endpoints file location: the --config flag (via Viper),
// then HUBSCAN_CONFIG, then the per-user default.
func Path() string {
	if p := viper.GetString("config"); p != "" {
		return p
	}
	if p := GetString(EnvConfigFile); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return defaultFileName
	}
	return filepath.Join(home, ".config", "hubscan", defaultFileName)
}

// Load reads the endpoints file at path and runs the self-healing
// normalization pass over its contents. A missing file is not an error: it
// yields an empty set, since no endpoints have been configured yet.
func Load(path string) (*endpoints.Endpoints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return endpoints.NewEndpoints(), nil
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewConfigError("endpoints", "invalid endpoints file", err)
	}

	set := endpoints.NewEndpoints(endpoints.WithEndpoints(f.Endpoints...))
	if migrated := set.Resolve(); migrated > 0 {
		logging.Info().
			Int("migrated", migrated).
			Str("path", path).
			Msg("Re-normalized persisted endpoints from an older format")
	}
	return set, nil
}

// Save writes the endpoint set to path in canonical, sorted form, creating
// parent directories as needed.
func Save(path string, set *endpoints.Endpoints) error {
	f := File{Endpoints: set.List()}

	data, err := yaml.Marshal(f)
	if err != nil {
		return errors.NewConfigError("endpoints", "failed to encode endpoints file", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
