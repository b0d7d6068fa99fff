package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"knucklebones/engine"
)

var (
	cfgFile = "knucklebones/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// GameConfig holds the default board dimensions.
type GameConfig struct {
	Columns     int `json:"columns"`
	Rows        int `json:"rows"`
	MaxDieValue int `json:"max_die_value"`
}

// Engine converts the dimensions for engine.NewGame.
func (g GameConfig) Engine() engine.GameConfig {
	return engine.GameConfig{
		Columns:     g.Columns,
		Rows:        g.Rows,
		MaxDieValue: g.MaxDieValue,
	}
}

// DriverConfig holds settings for the self-play driver.
type DriverConfig struct {
	Games int    `json:"games"`
	Seed  uint64 `json:"seed"` // 0 = seed from the clock
}

type LogConfig struct {
	Development bool `json:"development"`
}

type Config struct {
	Game   GameConfig   `json:"game"`
	Driver DriverConfig `json:"driver"`
	Log    LogConfig    `json:"log"`
}

// InitConfig returns the defaults overlaid with the user's config file, if any.
// The result is not validated so that command-line overrides can still be
// applied; call Validate once they are.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Game.Engine().Validate(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	if c.Driver.Games < 0 {
		return &InvalidConfig{"games cannot be negative"}
	}
	return nil
}

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
