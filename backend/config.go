package main

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string       `yaml:"log_level" json:"log_level"`
	LogPretty bool         `yaml:"log_pretty" json:"log_pretty"`
	Engine    EngineConfig `yaml:"engine" json:"engine"`
	Server    ServerConfig `yaml:"server" json:"server"`
}

type EngineConfig struct {
	SearchDepth        int           `yaml:"search_depth" json:"search_depth"`
	TimeBudget         time.Duration `yaml:"time_budget" json:"time_budget"`
	TopCandidates      int           `yaml:"top_candidates" json:"top_candidates"`
	CandidateRadius    int           `yaml:"candidate_radius" json:"candidate_radius"`
	OpeningRandomReply bool          `yaml:"opening_random_reply" json:"opening_random_reply"`
	// Seed fixes the engine's random choices; zero seeds from the clock.
	Seed int64 `yaml:"seed" json:"seed"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" json:"addr"`
	TickInterval    time.Duration `yaml:"tick_interval" json:"tick_interval"`
	AIMoveDelay     time.Duration `yaml:"ai_move_delay" json:"ai_move_delay"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	settings := DefaultSearchSettings()
	return Config{
		LogLevel:  "info",
		LogPretty: true,
		Engine: EngineConfig{
			SearchDepth:        settings.Depth,
			TimeBudget:         settings.TimeBudget,
			TopCandidates:      settings.TopK,
			CandidateRadius:    settings.Radius,
			OpeningRandomReply: settings.OpeningRandomReply,
		},
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			TickInterval:    50 * time.Millisecond,
			AIMoveDelay:     500 * time.Millisecond,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file at
// path (skipped when empty), then RENJU_* environment variables.
func LoadConfig(path string) (Config, error) {
	return loadConfig(path, os.LookupEnv)
}

func loadConfig(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := applyEnvOverrides(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
		return nil
	}
	duration := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = d
		return nil
	}

	str("RENJU_LOG_LEVEL", &cfg.LogLevel)
	str("RENJU_ADDR", &cfg.Server.Addr)
	if v, ok := lookup("RENJU_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RENJU_SEED: %w", err)
		}
		cfg.Engine.Seed = seed
	}
	for _, err := range []error{
		boolean("RENJU_LOG_PRETTY", &cfg.LogPretty),
		integer("RENJU_SEARCH_DEPTH", &cfg.Engine.SearchDepth),
		duration("RENJU_TIME_BUDGET", &cfg.Engine.TimeBudget),
		integer("RENJU_TOP_CANDIDATES", &cfg.Engine.TopCandidates),
		integer("RENJU_CANDIDATE_RADIUS", &cfg.Engine.CandidateRadius),
		boolean("RENJU_OPENING_RANDOM_REPLY", &cfg.Engine.OpeningRandomReply),
		duration("RENJU_AI_MOVE_DELAY", &cfg.Server.AIMoveDelay),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

func (c EngineConfig) Validate() error {
	switch {
	case c.SearchDepth < 1 || c.SearchDepth > 10:
		return fmt.Errorf("engine.search_depth must be within [1,10], got %d", c.SearchDepth)
	case c.TimeBudget <= 0:
		return fmt.Errorf("engine.time_budget must be positive, got %s", c.TimeBudget)
	case c.TopCandidates < 1:
		return fmt.Errorf("engine.top_candidates must be positive, got %d", c.TopCandidates)
	case c.CandidateRadius < 1 || c.CandidateRadius >= BoardSize:
		return fmt.Errorf("engine.candidate_radius must be within [1,%d], got %d", BoardSize-1, c.CandidateRadius)
	}
	return nil
}

func (c ServerConfig) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("server.addr must not be empty")
	case c.TickInterval <= 0:
		return fmt.Errorf("server.tick_interval must be positive, got %s", c.TickInterval)
	case c.AIMoveDelay < 0:
		return fmt.Errorf("server.ai_move_delay must not be negative, got %s", c.AIMoveDelay)
	case c.ShutdownTimeout <= 0:
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func (c EngineConfig) SearchSettings() SearchSettings {
	return SearchSettings{
		Depth:              c.SearchDepth,
		TimeBudget:         c.TimeBudget,
		TopK:               c.TopCandidates,
		Radius:             c.CandidateRadius,
		OpeningRandomReply: c.OpeningRandomReply,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
