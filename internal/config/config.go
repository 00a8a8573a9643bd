package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. LIAR_HTTP_ADDR.
const EnvPrefix = "LIAR"

// Scoring holds the round scoring coefficients. See game.Policy.
type Scoring struct {
	CorrectAccusation int `mapstructure:"correct-accusation" json:"correctAccusation"`
	PerfectDeception  int `mapstructure:"perfect-deception" json:"perfectDeception"`
	PerEvadedVoter    int `mapstructure:"per-evaded-voter" json:"perEvadedVoter"`
}

type Config struct {
	HTTPAddr string `mapstructure:"http-addr"`
	Verbose  bool   `mapstructure:"verbose"`

	// Phase windows. Lobby and reveal are untimed.
	AnswerWindow time.Duration `mapstructure:"answer-window"`
	ClueWindow   time.Duration `mapstructure:"clue-window"`
	DebateWindow time.Duration `mapstructure:"debate-window"`

	// TickInterval is how often room deadlines are checked.
	TickInterval time.Duration `mapstructure:"tick-interval"`

	Scoring Scoring `mapstructure:"scoring"`
}

// SetDefaults registers every known key with its default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("http-addr", ":8080")
	v.SetDefault("verbose", false)
	v.SetDefault("answer-window", time.Minute)
	v.SetDefault("clue-window", 4*time.Minute)
	v.SetDefault("debate-window", 3*time.Minute)
	v.SetDefault("tick-interval", time.Second)
	v.SetDefault("scoring.correct-accusation", 1)
	v.SetDefault("scoring.perfect-deception", 2)
	v.SetDefault("scoring.per-evaded-voter", 1)
}

// Load reads the config out of v. Callers are expected to have bound flags
// and the environment first; SetDefaults fills the rest.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.AnswerWindow <= 0 || c.ClueWindow <= 0 || c.DebateWindow <= 0 {
		return errors.New("phase windows must be positive")
	}
	if c.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	return nil
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	v := viper.New()
	cfg, err := Load(v)
	if err != nil {
		// Defaults are statically valid; reaching this is a programming error.
		panic(err)
	}
	return cfg
}
