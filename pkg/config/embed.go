package config

import (
	_ "embed"

	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// DefaultContent returns the embedded defaults file.
func DefaultContent() string {
	return string(defaultConfig)
}

// defaultValues parses the embedded defaults into a nested map.
func defaultValues() (map[string]interface{}, error) {
	values, err := toml.Parser().Unmarshal(defaultConfig)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse defaults")
	}
	return values, nil
}
