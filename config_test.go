package lapdelta

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yml"))

	if err != nil {
		t.Fatal(err)
	}

	if config.TrackMapWidth != DefaultConfig().TrackMapWidth {
		t.Errorf("expected default track map width, got %d", config.TrackMapWidth)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	contents := []byte("api_base_url: http://localhost:9111/v1\ntrack_map_width: 1200\n")

	if err := ioutil.WriteFile(path, contents, 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)

	if err != nil {
		t.Fatal(err)
	}

	if config.APIBaseURL != "http://localhost:9111/v1" {
		t.Errorf("unexpected api base url %q", config.APIBaseURL)
	}

	if config.TrackMapWidth != 1200 {
		t.Errorf("expected track map width 1200, got %d", config.TrackMapWidth)
	}

	// untouched keys keep their defaults
	if config.OutputDir != DefaultConfig().OutputDir {
		t.Errorf("unexpected output dir %q", config.OutputDir)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	if err := ioutil.WriteFile(path, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for invalid yaml")
	}
}
