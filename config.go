package lapdelta

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/adriadam10/lapdelta/internal/f1"
)

type Config struct {
	APIBaseURL string `yaml:"api_base_url"`
	CachePath  string `yaml:"cache_path"`
	OutputDir  string `yaml:"output_dir"`

	TrackMapWidth    int  `yaml:"track_map_width"`
	ThumbnailWidth   uint `yaml:"thumbnail_width"`
	TraceWidth       int  `yaml:"trace_width"`
	TracePanelHeight int  `yaml:"trace_panel_height"`
}

func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:       f1.DefaultBaseURL,
		CachePath:        "./lapdelta.cache",
		OutputDir:        "./output",
		TrackMapWidth:    800,
		ThumbnailWidth:   200,
		TraceWidth:       1500,
		TracePanelHeight: 250,
	}
}

// LoadConfig reads a yaml config file over the defaults. A missing file is
// not an error; you get the defaults back.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := ioutil.ReadFile(path)

	if os.IsNotExist(err) {
		return config, nil
	}

	if err != nil {
		return nil, errors.Wrapf(err, "could not read config at %s", path)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "could not parse config at %s", path)
	}

	return config, nil
}
