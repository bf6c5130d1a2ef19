// Package config reads the optional peerpin.yaml override file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peerpin/peerpin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the override file probed in the consumer root.
const FileName = "peerpin.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads peerpin.yaml from dir.
// A missing file yields the zero config; flags passed on the command line
// take precedence over anything loaded here.
func (l *Loader) Load(dir string) (*domain.Config, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.Config{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file struct {
		Manager  string `yaml:"manager"`
		Manifest string `yaml:"manifest"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &domain.Config{
		Manager:  file.Manager,
		Manifest: file.Manifest,
	}, nil
}
