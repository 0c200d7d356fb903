package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const envBrandelfConfig = "BRANDELF_CONFIG"

// Config represents the brandelf configuration file
// (~/.config/brandelf/config.yaml). Flags given on the command line win.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	Output    string `yaml:"output"`
}

func configPath() string {
	if p := os.Getenv(envBrandelfConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "brandelf", "config.yaml")
}

// LoadConfig reads the config file at path. Returns a zero Config if the file
// doesn't exist or can't be parsed.
func LoadConfig(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

func applyConfig(c *cli.Command, cfg Config, o *options) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		o.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		o.logFormat = cfg.LogFormat
	}
	if cfg.Output == "json" && !c.IsSet("json") {
		o.jsonOut = true
	}
}
