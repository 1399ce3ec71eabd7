// Package config provides the repository configuration loader for hackidx.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/hackidx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.RepoResolver = (*Config)(nil)

// Config is the loaded repository configuration. It resolves repository
// names to index archive paths.
type Config struct {
	repositories map[string]string
}

// Loader reads the YAML configuration file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path, or the platform default location
// when path is empty. A missing file yields an empty configuration: every
// repository lookup then misses, which callers surface as "no repository
// configured" rather than a config error.
func (l *Loader) Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := domain.DefaultConfigPath()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is the user's own config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.Logger.Debug("no configuration file", "path", path)
			return &Config{repositories: map[string]string{}}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	repos := make(map[string]string, len(file.Repositories))
	for name, repo := range file.Repositories {
		if repo.Index == "" {
			l.Logger.Warn("repository has no index path", "repository", name)
			continue
		}
		repos[name] = repo.Index
	}
	return &Config{repositories: repos}, nil
}

// IndexPath returns the index archive path configured for repo.
func (c *Config) IndexPath(repo string) (string, bool) {
	path, ok := c.repositories[repo]
	return path, ok
}
