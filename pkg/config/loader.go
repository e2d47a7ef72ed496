package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment variable read as configuration
	EnvPrefix = "FSIMAGE_"
	// EnvConfigFile points at the config file when no flag is given
	EnvConfigFile = "FSIMAGE_CONFIG"
)

// LoadOptions controls where configuration comes from
type LoadOptions struct {
	// File is an explicit config file. It must exist.
	File string
	// Overrides are flat dotted keys applied after every other source,
	// e.g. "evaluate.allow_duplicate_addition"
	Overrides map[string]interface{}
	// Kinds lists the known module kinds; module kinds are not checked when empty
	Kinds []string
}

// Load merges defaults, config file, environment and overrides into a
// validated Config
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	path, explicit := configFilePath(opts.File)
	source := ""
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("file", path)
		}
		source = path
		logger.Debug().Str("file", path).Msg("loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s cannot be read", path).
			WithDetail("file", path)
	} else {
		logger.Trace().Str("file", path).Msg("no config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(opts.Kinds); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration made of the embedded defaults only
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults are invalid: " + err.Error())
	}
	return cfg
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// DefaultFilePath is the config file read when no --config flag is given
func DefaultFilePath() string {
	path, _ := configFilePath("")
	return path
}

// configFilePath resolves the config file: the explicit path, then
// $FSIMAGE_CONFIG, then the XDG config dir. explicit is true when the file
// was asked for and so must exist.
func configFilePath(flag string) (path string, explicit bool) {
	if flag != "" {
		return flag, true
	}
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, true
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "fsimage", "config.toml"), false
}

// envKey maps FSIMAGE_ROOT, FSIMAGE_EVALUATE_* and FSIMAGE_OUTPUT_* to
// config keys. Anything else, FSIMAGE_CONFIG included, is ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch {
	case key == "root":
		return key
	case strings.HasPrefix(key, "evaluate_"):
		return "evaluate." + strings.TrimPrefix(key, "evaluate_")
	case strings.HasPrefix(key, "output_"):
		return "output." + strings.TrimPrefix(key, "output_")
	default:
		return ""
	}
}
