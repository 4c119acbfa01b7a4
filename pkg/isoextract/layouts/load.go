package layouts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for layout files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("layouts: unsupported file format")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid layout config: %w", err)
	}
	return nil
}

// Load reads a layout file over the defaults. Values present in the file
// replace the defaults; lists are replaced as a whole.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}

	var file Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, err)
	}

	cfg := Default()
	cfg.merge(file)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge copies every value set in o over c.
func (c *Config) merge(o Config) {
	if len(o.Columns) > 0 {
		c.Columns = o.Columns
	}
	if o.Keywords.Table != "" {
		c.Keywords.Table = o.Keywords.Table
	}
	if o.Keywords.Markers != nil {
		c.Keywords.Markers = o.Keywords.Markers
	}
	if o.Keywords.ISONo != "" {
		c.Keywords.ISONo = o.Keywords.ISONo
	}
	if o.Keywords.RevNo != "" {
		c.Keywords.RevNo = o.Keywords.RevNo
	}
	if len(o.Profiles) > 0 {
		c.Profiles = o.Profiles
	}
}
