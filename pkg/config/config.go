package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wildfunctions/recursive_art/pkg/engine"
	"github.com/wildfunctions/recursive_art/pkg/logging"
)

// EnvPrefix prefixes environment variables, e.g. ART_MIN_DEPTH.
const EnvPrefix = "ART"

// Config is the full application configuration.
type Config struct {
	engine.Config `mapstructure:",squash"`

	Log logging.Config `mapstructure:"log" json:"log" toml:"log"`
}

// Default returns the default application configuration.
func Default() Config {
	return Config{
		Config: engine.DefaultConfig(),
		Log:    logging.Config{Level: "info"},
	}
}

// flagKeys maps config keys to command line flag names.
var flagKeys = map[string]string{
	"width":     "width",
	"height":    "height",
	"min_depth": "min-depth",
	"max_depth": "max-depth",
	"pool":      "pool",
	"seed":      "seed",
	"count":     "count",
	"workers":   "workers",
	"outdir":    "outdir",
	"filename":  "filename",
	"save_expr": "save-expr",
	"format":    "format",
	"log.level": "log-level",
	"log.file":  "log-file",
}

// Load merges defaults, the optional config file, ART_* environment variables
// and flags explicitly set on cmd, in increasing order of precedence.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, flag := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	conf := Config{}
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return conf, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("width", c.Width)
	v.SetDefault("height", c.Height)
	v.SetDefault("min_depth", c.MinDepth)
	v.SetDefault("max_depth", c.MaxDepth)
	v.SetDefault("pool", c.Pool)
	v.SetDefault("seed", c.Seed)
	v.SetDefault("count", c.Count)
	v.SetDefault("workers", c.Workers)
	v.SetDefault("outdir", c.OutDir)
	v.SetDefault("filename", c.Filename)
	v.SetDefault("save_expr", c.SaveExpr)
	v.SetDefault("format", c.Format)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.file", c.Log.File)
}

// DefaultTOML renders the default configuration as a TOML document.
func DefaultTOML() ([]byte, error) {
	return toml.Marshal(Default())
}
