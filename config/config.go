package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Sim       SimConfig       `mapstructure:"sim"`
	Collector CollectorConfig `mapstructure:"collector"`
	Pursuit   PursuitConfig   `mapstructure:"pursuit"`
}

type SimConfig struct {
	Debug    bool   `mapstructure:"debug"`
	GridFile string `mapstructure:"grid_file"`
	TickMs   int    `mapstructure:"tick_ms"`
	MaxTicks int    `mapstructure:"max_ticks"` // 0 = run until terminal
	StatusS  int    `mapstructure:"status_s"`  // status log period, seconds
	Seed     int64  `mapstructure:"seed"`      // 0 = time-seeded
}

type CollectorConfig struct {
	StartRow     int    `mapstructure:"start_row"`
	StartCol     int    `mapstructure:"start_col"`
	Cadence      int    `mapstructure:"cadence"`
	Algorithm    string `mapstructure:"algorithm"`
	Strategy     string `mapstructure:"strategy"`
	DangerRadius int    `mapstructure:"danger_radius"`
	RecalcEvery  int    `mapstructure:"recalc_every"`
}

type PursuitConfig struct {
	Difficulty string        `mapstructure:"difficulty"`
	Spawns     []SpawnConfig `mapstructure:"spawns"`
}

// SpawnConfig places one pursuer. Negative coordinates count back from the
// far edge of the grid, so defaults work on any map size.
type SpawnConfig struct {
	Row     int `mapstructure:"row"`
	Col     int `mapstructure:"col"`
	Cadence int `mapstructure:"cadence"`
}

// Load reads config from the given YAML file path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("sim.debug", false)
	v.SetDefault("sim.grid_file", "maps/classic.txt")
	v.SetDefault("sim.tick_ms", 16)
	v.SetDefault("sim.max_ticks", 0)
	v.SetDefault("sim.status_s", 5)
	v.SetDefault("collector.start_row", 1)
	v.SetDefault("collector.start_col", 1)
	v.SetDefault("collector.cadence", 15)
	v.SetDefault("collector.algorithm", "astar")
	v.SetDefault("collector.strategy", "nearest_safe")
	v.SetDefault("collector.danger_radius", 3)
	v.SetDefault("collector.recalc_every", 30)
	v.SetDefault("pursuit.difficulty", "hard")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if len(cfg.Pursuit.Spawns) == 0 {
		// Mirror the classic layout: one pursuer near each corner.
		cfg.Pursuit.Spawns = []SpawnConfig{
			{Row: 3, Col: 3, Cadence: 20},
			{Row: -4, Col: -4, Cadence: 22},
		}
	}
	if cfg.Sim.TickMs < 1 {
		return nil, fmt.Errorf("config: sim.tick_ms must be positive")
	}
	return cfg, nil
}
