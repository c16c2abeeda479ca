// Package config loads and saves the viewer's preferences from the XDG
// config directory.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "goatee/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BlackColor        int `json:"black"`
	WhiteColor        int `json:"white"`
	LineColor         int `json:"line"`
	MarkColor         int `json:"mark"`
	LabelColor        int `json:"label"`
	DimColor          int `json:"dim"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	StarPoint   rune `json:"star"`
}

type Theme struct {
	UseGridLines     bool          `json:"use_grid_lines"`
	FullWidthLetters bool          `json:"fullwidth_letters"`
	Colors           ConfigColors  `json:"colors"`
	Symbols          ConfigSymbols `json:"symbols"`
}

// ViewerConfig holds record-browsing preferences.
type ViewerConfig struct {
	ShowCoordinates bool `json:"show_coordinates"`
	StartAtEnd      bool `json:"start_at_end"`
}

type Config struct {
	Theme  Theme        `json:"theme"`
	Viewer ViewerConfig `json:"viewer"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.StarPoint} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
