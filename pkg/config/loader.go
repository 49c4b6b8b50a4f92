package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// EnvPrefix prefixes the environment variables that override settings.
// DDBG_PRINT_ADDRESS sets print.address.
const EnvPrefix = "DDBG_"

// userConfigNames are tried in order under $XDG_CONFIG_HOME/ddbg.
var userConfigNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions selects the sources Load reads besides the defaults.
type LoadOptions struct {
	// Path is an explicit config file. When empty the user config file
	// is looked up under the XDG config directories.
	Path string
	// SkipUserConfig ignores the user config file.
	SkipUserConfig bool
	// SkipEnv ignores DDBG_ environment variables.
	SkipEnv bool
	// Overrides are applied last, keyed by dotted path ("ui.format").
	Overrides map[string]interface{}
	// Fs holds the config files. Nil means the OS file system.
	Fs afero.Fs
}

// Load builds the configuration from the embedded defaults and the
// sources named in opts.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	defaults, err := defaultValues()
	if err != nil {
		return nil, err
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User or explicit config file
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	path := opts.Path
	if path == "" && !opts.SkipUserConfig {
		path = findUserConfig(fsys)
	}
	if path != "" {
		if err := loadFile(k, fsys, path); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(";"),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	return Load(LoadOptions{SkipUserConfig: true, SkipEnv: true})
}

// UserConfigPath is where genconfig writes by default.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "ddbg", userConfigNames[0])
}

// loadFile merges the config file at path into k. Files on the OS file
// system go through koanf's file provider; other file systems are read
// with afero and merged as a map.
func loadFile(k *koanf.Koanf, fsys afero.Fs, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	if _, ok := fsys.(*afero.OsFs); ok {
		if _, err := os.Stat(path); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		return nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}
	values, err := parser.Unmarshal(data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	if err := k.Load(confmap.Provider(values, ""), nil); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}
	return nil
}

// findUserConfig returns the first user config file found under the XDG
// config directories.
func findUserConfig(fsys afero.Fs) string {
	if _, ok := fsys.(*afero.OsFs); ok {
		for _, name := range userConfigNames {
			if path, err := xdg.SearchConfigFile(filepath.Join("ddbg", name)); err == nil {
				return path
			}
		}
		return ""
	}

	dirs := append([]string{xdg.ConfigHome}, xdg.ConfigDirs...)
	for _, dir := range dirs {
		for _, name := range userConfigNames {
			path := filepath.Join(dir, "ddbg", name)
			if ok, _ := afero.Exists(fsys, path); ok {
				return path
			}
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config file type: %s", path)
	}
}
