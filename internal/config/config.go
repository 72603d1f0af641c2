// Package config loads the importer's runtime configuration from a YAML
// file. A missing path yields the defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// AllowLoadingWithIncorrectChecksum skips the scenario checksum check.
	// Some known-good files circulate with a stale trailer.
	AllowLoadingWithIncorrectChecksum bool `yaml:"allow_loading_with_incorrect_checksum"`

	// ObjectIndexPath is the sqlite database indexing known objects and the
	// packed blobs extracted from imported files.
	ObjectIndexPath string `yaml:"object_index_path"`

	// SnapshotDir receives compressed snapshots of imported worlds. Empty
	// disables snapshotting.
	SnapshotDir string `yaml:"snapshot_dir"`
}

func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		ObjectIndexPath: "objects.db",
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ObjectIndexPath) == "" {
		return fmt.Errorf("object_index_path must not be empty")
	}
	return nil
}
