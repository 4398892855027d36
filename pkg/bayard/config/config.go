package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bayard/pkg/bayard/internalerr"
)

// Settings holds the tunables shared by the CLIs.
type Settings struct {
	// Alpha is the additive smoothing constant used at prediction time.
	Alpha float64 `yaml:"alpha"`
	// CorpusPath points at a YAML corpus file.
	CorpusPath string `yaml:"corpus"`
	// DBPath points at a SQLite corpus database.
	DBPath string `yaml:"db"`
}

// Default returns the settings used when no config file is given.
func Default() Settings {
	return Settings{Alpha: 1.0}
}

// Load reads settings from a YAML file. Fields left unset in the file keep
// their defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}

	if s.Alpha <= 0 {
		return s, fmt.Errorf("%w: alpha %v must be > 0",
			internalerr.ErrInvalidParameter, s.Alpha)
	}
	return s, nil
}
