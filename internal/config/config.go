// Package config defines the data structures related to configuration and
// includes functions for loading and validating the games file.
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/iwvelando/bimatrix-solver/pkg/configprocessor"
	"github.com/iwvelando/bimatrix-solver/pkg/equilibrium"
	"github.com/iwvelando/bimatrix-solver/pkg/validation"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for bimatrix-solver.
type Configuration struct {
	Games   []Game        `yaml:"games"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" env:"LOG_LEVEL"`   // debug, info, warn, error
	Format     string `yaml:"format,omitempty" env:"LOG_FORMAT"` // json, console
	OutputFile string `yaml:"outputFile,omitempty" env:"LOG_FILE"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Game is one named 2x2 bimatrix game.
type Game struct {
	Name    string      `yaml:"name"`
	Active  bool        `yaml:"active"`
	PlayerA [][]float64 `yaml:"playerA"`
	PlayerB [][]float64 `yaml:"playerB"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config data")
	}

	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "error reading config data")
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, errors.Wrap(err, "unable to decode into struct")
	}
	return &configuration, nil
}

// ActiveGames returns the games flagged active, in file order.
func (c *Configuration) ActiveGames() []Game {
	var active []Game
	for _, game := range c.Games {
		if game.Active {
			active = append(active, game)
		}
	}
	return active
}

// Validate checks the shape and the values of both payoff matrices.
func (g Game) Validate() error {
	if err := equilibrium.Validate(g.PlayerA, g.PlayerB); err != nil {
		return errors.Wrapf(err, "game '%s'", g.Name)
	}
	if err := validation.ValidatePayoffs("playerA", g.PlayerA); err != nil {
		return errors.Wrapf(err, "game '%s'", g.Name)
	}
	if err := validation.ValidatePayoffs("playerB", g.PlayerB); err != nil {
		return errors.Wrapf(err, "game '%s'", g.Name)
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	games := make([]configprocessor.GameInfo, 0, len(c.Games))
	for _, game := range c.Games {
		games = append(games, configprocessor.GameInfo{
			Name:   strings.TrimSpace(game.Name),
			Active: game.Active,
		})
	}

	processor := configprocessor.NewProcessor()
	return processor.ValidateConfiguration(games)
}
