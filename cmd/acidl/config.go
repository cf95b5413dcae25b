package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// newConfig is the shape accepted by `acidl new --config`: a HuJSON file
// (comments and trailing commas allowed) spelling out the shape of the
// file to create, so scripted setups don't need a long flag line.
type newConfig struct {
	Heads uint32 `json:"heads"`
	Nodes uint32 `json:"nodes"`
}

func loadNewConfig(path string) (newConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return newConfig{}, err
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return newConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	var cfg newConfig
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return newConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}
