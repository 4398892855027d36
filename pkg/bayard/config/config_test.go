package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/bayard/pkg/bayard/internalerr"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()
	if s.Alpha != 1.0 {
		t.Errorf("default alpha = %v, want 1.0", s.Alpha)
	}
}

func TestLoad(t *testing.T) {
	path := writeSettings(t, "alpha: 0.5\ncorpus: /data/corpus.yaml\ndb: /data/corpus.db\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Alpha != 0.5 {
		t.Errorf("alpha = %v, want 0.5", s.Alpha)
	}
	if s.CorpusPath != "/data/corpus.yaml" {
		t.Errorf("corpus path = %q", s.CorpusPath)
	}
	if s.DBPath != "/data/corpus.db" {
		t.Errorf("db path = %q", s.DBPath)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "corpus: /data/corpus.yaml\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Alpha != 1.0 {
		t.Errorf("alpha = %v, want default 1.0", s.Alpha)
	}
}

func TestLoadRejectsNonPositiveAlpha(t *testing.T) {
	path := writeSettings(t, "alpha: -2\n")

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
