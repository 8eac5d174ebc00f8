package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Database path for the sqlite-backed session/catalogue store.
	DBPath string `json:"db_path"`
	// Default level new battles are set up at when the client omits one.
	DefaultLevel int `json:"default_level"`
	// How long a battle session may sit with no submitted turn before the
	// background sweep force-finishes it.
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
	// RNG seed applied to newly-initialized battles when zero is not
	// explicitly requested by the caller. Zero means "use platform entropy".
	DefaultSeed uint32 `json:"default_seed"`
}

// LoadedConfig holds the runtime configuration for the battle-factory
// service shell. It never carries Gen-III game data (species, moves, the
// type chart) — those are fixed and live as Go source under internal/data.
type LoadedConfig struct {
	ServerAddress  string
	DBPath         string
	DefaultLevel   uint8
	ActionTimeout  time.Duration
	DefaultSeed    uint32
}

// LoadConfig reads the JSON configuration file at path. Every field has a
// sensible default, so an empty object `{}` is a valid configuration.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	addr := ":8080"
	if rc.Server != nil && strings.TrimSpace(rc.Server.Address) != "" {
		addr = rc.Server.Address
	}

	dbPath := strings.TrimSpace(rc.DBPath)
	if dbPath == "" {
		dbPath = "./data/battlefactory.db"
	}

	level := rc.DefaultLevel
	if level <= 0 {
		level = 50
	}
	if level > 100 {
		return nil, fmt.Errorf("config file %s: default_level must be <= 100", path)
	}

	timeout := time.Duration(rc.ActionTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &LoadedConfig{
		ServerAddress: addr,
		DBPath:        dbPath,
		DefaultLevel:  uint8(level),
		ActionTimeout: timeout,
		DefaultSeed:   rc.DefaultSeed,
	}, nil
}
