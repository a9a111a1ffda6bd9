// Package config loads the handexplorer tool's configuration: a single
// hand description plus which shapes to evaluate, read from a config
// file and/or environment variables via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LogConf holds the logging section of the config file.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// HandConfig is handexplorer's entire configuration surface: the hand
// under analysis, the tile just drawn (if any), which of the five
// shapes to evaluate, and logging.
type HandConfig struct {
	Hand    string   `mapstructure:"hand"`
	Drawn   string   `mapstructure:"drawn"`
	Shapes  []string `mapstructure:"shapes"`
	Discard bool     `mapstructure:"discard"`
	Log     LogConf  `mapstructure:"log"`
}

// Conf is the process-wide loaded configuration, populated by Load.
var Conf HandConfig

// Load reads configFile (if non-empty) through viper, overlays
// HAND_*-prefixed environment variables, and unmarshals the result into
// Conf. A missing configFile is not an error: handexplorer's flags alone
// are a legal configuration.
func Load(configFile string) error {
	v := viper.New()
	v.SetEnvPrefix("HAND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("log.level", "info")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	var cfg HandConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	Conf = cfg
	return nil
}
