package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for defaults files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Defaults holds pre-filled calculator inputs loaded from a file.
// Zero values mean "not set".
type Defaults struct {
	WeightKg      float64 `json:"weight_kg" yaml:"weight_kg" toml:"weight_kg"`
	DistanceKm    float64 `json:"distance_km" yaml:"distance_km" toml:"distance_km"`
	ContainerSize string  `json:"container_size" yaml:"container_size" toml:"container_size"`
	GoodsType     string  `json:"goods_type" yaml:"goods_type" toml:"goods_type"`
}

// LoadDefaultsFile reads a TOML, YAML or JSON file selected by extension.
func LoadDefaultsFile(filePath string) (*Defaults, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var d Defaults
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &d, nil
}
