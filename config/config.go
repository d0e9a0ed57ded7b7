// Package config loads session settings from an optional config.yaml and
// the ELDRITCH_ environment, with playable defaults baked in.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Game struct {
		StartingBalance int   `mapstructure:"starting_balance"`
		MaxBet          int   `mapstructure:"max_bet"`
		ScriptedSeats   int   `mapstructure:"scripted_seats"`
		Seed            int64 `mapstructure:"seed"` // 0 means seed from the clock
	} `mapstructure:"game"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Load reads config.yaml from the working directory when present and
// overlays ELDRITCH_ environment variables. A missing file is not an
// error; the defaults already describe a full table.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("game.starting_balance", 1000)
	v.SetDefault("game.max_bet", 100)
	v.SetDefault("game.scripted_seats", 4)
	v.SetDefault("game.seed", 0)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("ELDRITCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if c.Game.ScriptedSeats < 1 {
		return nil, errors.Errorf("game.scripted_seats must be at least 1, got %d", c.Game.ScriptedSeats)
	}
	if c.Game.MaxBet < 1 {
		return nil, errors.Errorf("game.max_bet must be positive, got %d", c.Game.MaxBet)
	}
	return &c, nil
}
