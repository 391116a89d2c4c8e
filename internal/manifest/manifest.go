package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
)

// one speaker/file pair
type Entry struct {
	Speaker string `toml:"speaker" yaml:"speaker"`
	File    string `toml:"file" yaml:"file"`
}

// ordered list of input tracks for a merge
type Manifest struct {
	Tracks []Entry `toml:"tracks" yaml:"tracks"`
}

// reads a track manifest in TOML or YAML form, chosen by file
// extension. relative file entries are resolved against the manifest's
// directory
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf(
			"unsupported manifest format %q: use .toml, .yaml, or .yml",
			ext,
		)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i, entry := range m.Tracks {
		if !filepath.IsAbs(entry.File) {
			m.Tracks[i].File = filepath.Join(dir, entry.File)
		}
	}

	return &m, nil
}

// checks every entry and reports all problems at once
func (m *Manifest) Validate() error {
	var errs *multierror.Error

	if len(m.Tracks) == 0 {
		errs = multierror.Append(errs, errors.New("manifest defines no tracks"))
	}
	for i, entry := range m.Tracks {
		if entry.Speaker == "" {
			errs = multierror.Append(errs, fmt.Errorf("track %d: missing speaker", i))
		}
		if entry.File == "" {
			errs = multierror.Append(errs, fmt.Errorf("track %d: missing file", i))
		}
	}

	return errs.ErrorOrNil()
}
