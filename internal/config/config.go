package config

import (
	"encoding/json"
	"errors"
	"os"
)

type Config struct {
	InputFasta       string `json:"input_fasta"`
	LogFile          string `json:"log_file"`
	LogLevel         string `json:"log_level"`
	TranslationTable string `json:"translation_table"`
}

// LoadConfig loads a JSON config from the given path. If path is empty, looks for ./config.json.
// A missing file is not an error: defaults are returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
