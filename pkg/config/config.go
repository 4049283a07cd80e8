// Package config defines the configuration surface shared by the
// tabular CLI and embedding applications. Settings are yaml-tagged for
// file loading and json-tagged for introspection output.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabkit/tabular/pkg/schema"
	stringutil "github.com/tabkit/tabular/pkg/strings"
	"github.com/tabkit/tabular/pkg/tabular"
	"github.com/tabkit/tabular/pkg/tabularerrors"
)

// Default and floor values for streaming reads, shared with the core
// models so the two cannot drift.
const (
	DefaultChunkSize = tabular.DefaultChunkSize
	MinChunkSize     = tabular.MinChunkSize
)

// ModelConfig configures how raw rows are turned into a tabular model.
type ModelConfig struct {
	// HeaderRows is the number of leading rows merged into column names.
	HeaderRows int `yaml:"header_rows" json:"header_rows"`
	// SkipEmptyRows drops rows whose cells are all blank.
	SkipEmptyRows bool `yaml:"skip_empty_rows" json:"skip_empty_rows"`
	// ChunkSize is the row count per chunk for streaming reads.
	ChunkSize int `yaml:"chunk_size" json:"chunk_size"`
	// Delimiter is the field separator used by the CLI file adapter.
	Delimiter string `yaml:"delimiter" json:"delimiter"`
	// TypeDefaults overrides typed-view conversion defaults, keyed by
	// data type name. Boolean and mixed override their none default,
	// every other type its empty default.
	TypeDefaults map[string]string `yaml:"type_defaults" json:"type_defaults"`

	// Logging configures the process logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// LoggingConfig configures the zap logger bootstrap.
type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
	Encoding    string `yaml:"encoding" json:"encoding"`
}

// Default returns a ModelConfig with the library defaults.
func Default() *ModelConfig {
	return &ModelConfig{
		HeaderRows:    1,
		SkipEmptyRows: true,
		ChunkSize:     DefaultChunkSize,
		Delimiter:     ",",
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads a yaml config file and merges it over the defaults.
func Load(path string) (*ModelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tabularerrors.Wrap(err, tabularerrors.KindFile, "cannot read config file").
			WithDetail("path", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, tabularerrors.Wrap(err, tabularerrors.KindConfig, "cannot parse config file").
			WithDetail("path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c *ModelConfig) Validate() error {
	if c.HeaderRows < 0 {
		return tabularerrors.Newf(tabularerrors.KindValue, "header_rows must be >= 0, got %d", c.HeaderRows).
			WithDetail("param", "header_rows").
			WithDetail("value", c.HeaderRows)
	}
	if c.ChunkSize < MinChunkSize {
		return tabularerrors.Newf(tabularerrors.KindValue, "chunk_size must be at least %d, got %d", MinChunkSize, c.ChunkSize).
			WithDetail("param", "chunk_size").
			WithDetail("value", c.ChunkSize)
	}
	if len(c.Delimiter) != 1 {
		return tabularerrors.Newf(tabularerrors.KindValue, "delimiter must be a single character, got %q", c.Delimiter).
			WithDetail("param", "delimiter").
			WithDetail("value", c.Delimiter)
	}
	for name := range c.TypeDefaults {
		if _, err := schema.ParseDataType(name); err != nil {
			return err
		}
	}
	return nil
}

// TypeDefaultOverrides translates the configured literals into typed
// override values for a typed view. Numeric and boolean literals are
// parsed according to their target type; date, datetime, and time
// literals according to the recognized layouts; string and mixed
// literals pass through unchanged.
func (c *ModelConfig) TypeDefaultOverrides() (map[schema.DataType]interface{}, error) {
	if len(c.TypeDefaults) == 0 {
		return nil, nil
	}

	overrides := make(map[schema.DataType]interface{}, len(c.TypeDefaults))
	for name, literal := range c.TypeDefaults {
		dt, err := schema.ParseDataType(name)
		if err != nil {
			return nil, err
		}

		var value interface{}
		switch dt {
		case schema.TypeInteger:
			v, err := stringutil.ParseInt(literal)
			if err != nil {
				return nil, wrapOverride(err, name, literal)
			}
			value = v
		case schema.TypeFloat:
			v, err := stringutil.ParseFloat(literal)
			if err != nil {
				return nil, wrapOverride(err, name, literal)
			}
			value = v
		case schema.TypeBoolean:
			v, err := stringutil.ParseBool(literal)
			if err != nil {
				return nil, wrapOverride(err, name, literal)
			}
			value = v
		case schema.TypeDate:
			v, err := stringutil.ParseDate(literal)
			if err != nil {
				return nil, wrapOverride(err, name, literal)
			}
			value = v
		case schema.TypeDateTime:
			v, err := stringutil.ParseDateTime(literal)
			if err != nil {
				return nil, wrapOverride(err, name, literal)
			}
			value = v
		case schema.TypeTime:
			v, err := stringutil.ParseTime(literal)
			if err != nil {
				return nil, wrapOverride(err, name, literal)
			}
			value = v
		default:
			value = literal
		}
		overrides[dt] = value
	}

	return overrides, nil
}

func wrapOverride(err error, name, literal string) error {
	return tabularerrors.Wrap(err, tabularerrors.KindConfig, "invalid type default override").
		WithDetail("type", name).
		WithDetail("value", literal)
}
