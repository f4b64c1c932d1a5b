package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ConfigFileName is the default config file name, looked up in the working directory.
const ConfigFileName = ".srixctl.json"

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigInvalid      = errors.New("invalid config")
	errNoImage            = errors.New("no tag image: pass --image or set \"image\" in the config")
)

// Config holds all configuration options.
type Config struct {
	Image    string `json:"image,omitempty"`
	LogLevel string `json:"log_level,omitempty"` //nolint:tagliatelle // snake_case for config file
	LogFile  string `json:"log_file,omitempty"`  //nolint:tagliatelle // snake_case for config file
}

// LoadConfig loads the explicit config file at configPath, or the optional
// ConfigFileName in workDir when configPath is empty. Relative paths inside the
// file are resolved against the file's directory. It returns the config and
// the path it was read from, empty if none.
func LoadConfig(workDir, configPath string) (Config, string, error) {
	path := configPath
	mustExist := path != ""
	if path == "" {
		path = filepath.Join(workDir, ConfigFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, "", nil
		}
		if os.IsNotExist(err) {
			return Config{}, "", fmt.Errorf("%w: %s", errConfigFileNotFound, configPath)
		}
		return Config{}, "", err
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, "", fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}
	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.Image, &cfg.LogFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return cfg, path, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return cfg, nil
}
