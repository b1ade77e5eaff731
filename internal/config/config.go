package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/trim21/errgo"
)

type Application struct {
	Address         string `toml:"address"`
	Token           string `toml:"token"`
	MaxSessions     int    `toml:"max_sessions"`
	MaxListSize     int    `toml:"max_list_size"`
	MaxAnimating    int    `toml:"max_animating"`
	SessionTTLHours int    `toml:"session_ttl_hours"`
}

// Random holds the defaults of the "random list" input mode.
type Random struct {
	Size int   `toml:"size"`
	Min  int64 `toml:"min"`
	Max  int64 `toml:"max"`
}

type Config struct {
	App    Application `toml:"application"`
	Random Random      `toml:"random"`
}

func Default() Config {
	return Config{
		App: Application{
			Address:         "127.0.0.1:8003",
			MaxSessions:     100,
			MaxListSize:     1000,
			MaxAnimating:    20,
			SessionTTLHours: 24,
		},
		Random: Random{Size: 12, Min: 1, Max: 100},
	}
}

// LoadFromFile reads a toml config, filling unset fields with defaults.
// A missing file is not an error, the defaults simply apply.
func LoadFromFile(path string) (Config, error) {
	var cfg = Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, errgo.Wrap(err, "failed to parse config file")
	}

	if cfg.Random.Size <= 0 {
		cfg.Random.Size = 12
	}
	if cfg.App.MaxAnimating <= 0 {
		cfg.App.MaxAnimating = 1
	}

	return cfg, nil
}
