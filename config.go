package tablemetrics

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the comparison options.
//
//	structure_only: false
//	ignored_nodes: [sup, sub]
//	aggregation: mean
type Config struct {
	StructureOnly bool     `yaml:"structure_only"`
	IgnoredNodes  []string `yaml:"ignored_nodes"`
	Aggregation   string   `yaml:"aggregation"`
}

// LoadConfig decodes a YAML Config. Unknown fields are rejected and an
// empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: decoding config: %v", ErrInvalidArgument, err)
	}
	if _, err := cfg.aggregation(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML Config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

func (c Config) aggregation() (Aggregation, error) {
	return ParseAggregation(c.Aggregation)
}
