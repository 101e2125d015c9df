// Package config provides Viper-based configuration loading for the rules engine.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/wrm/internal/game/ruleset"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RulesConfig holds the numeric rules table.
type RulesConfig struct {
	DieSides             int     `mapstructure:"die_sides"`
	SkillBonus           int     `mapstructure:"skill_bonus"`
	WoundedPenalty       int     `mapstructure:"wounded_penalty"`
	SustainPenalty       int     `mapstructure:"sustain_penalty"`
	StartingXPThreshold  int     `mapstructure:"starting_xp_threshold"`
	XPGrowth             float64 `mapstructure:"xp_growth"`
	CreationPoints       int     `mapstructure:"creation_points"`
	CreationSkills       int     `mapstructure:"creation_skills"`
	MaxCreationAttribute int     `mapstructure:"max_creation_attribute"`
}

// Rules converts the section into the table consumed by the resolvers.
//
// Postcondition: the result has the same values field for field.
func (r RulesConfig) Rules() ruleset.Rules {
	return ruleset.Rules{
		DieSides:             r.DieSides,
		SkillBonus:           r.SkillBonus,
		WoundedPenalty:       r.WoundedPenalty,
		SustainPenalty:       r.SustainPenalty,
		StartingXPThreshold:  r.StartingXPThreshold,
		XPGrowth:             r.XPGrowth,
		CreationPoints:       r.CreationPoints,
		CreationSkills:       r.CreationSkills,
		MaxCreationAttribute: r.MaxCreationAttribute,
	}
}

// DiceConfig selects the randomness source.
type DiceConfig struct {
	// Source is "crypto" or "seeded".
	Source string `mapstructure:"source"`
	// Seed is used only when Source is "seeded".
	Seed int64 `mapstructure:"seed"`
}

// ContentConfig locates game content.
type ContentConfig struct {
	// Dir overrides the embedded content tree when non-empty.
	Dir string `mapstructure:"dir"`
}

// SessionConfig holds session orchestration settings.
type SessionConfig struct {
	// MaxRounds bounds a simulated duel.
	MaxRounds int `mapstructure:"max_rounds"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Content ContentConfig `mapstructure:"content"`
	Session SessionConfig `mapstructure:"session"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := c.Rules.Rules().Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateDice(c.Dice); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Session.MaxRounds < 1 {
		errs = append(errs, fmt.Sprintf("session.max_rounds must be >= 1, got %d", c.Session.MaxRounds))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateDice(d DiceConfig) error {
	switch d.Source {
	case "crypto", "seeded":
		return nil
	case "":
		return errors.New("dice.source must not be empty")
	default:
		return fmt.Errorf("dice.source must be one of [crypto, seeded], got %q", d.Source)
	}
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// Default returns the defaults with environment overrides applied.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Default() (Config, error) {
	return LoadFromViper(newViper())
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with WRM_ prefix
	v.SetEnvPrefix("WRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	r := ruleset.DefaultRules()
	v.SetDefault("rules.die_sides", r.DieSides)
	v.SetDefault("rules.skill_bonus", r.SkillBonus)
	v.SetDefault("rules.wounded_penalty", r.WoundedPenalty)
	v.SetDefault("rules.sustain_penalty", r.SustainPenalty)
	v.SetDefault("rules.starting_xp_threshold", r.StartingXPThreshold)
	v.SetDefault("rules.xp_growth", r.XPGrowth)
	v.SetDefault("rules.creation_points", r.CreationPoints)
	v.SetDefault("rules.creation_skills", r.CreationSkills)
	v.SetDefault("rules.max_creation_attribute", r.MaxCreationAttribute)

	v.SetDefault("dice.source", "crypto")
	v.SetDefault("dice.seed", 0)

	v.SetDefault("content.dir", "")

	v.SetDefault("session.max_rounds", 50)
}
