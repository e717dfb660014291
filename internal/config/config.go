// Package config loads the chipbook client configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete client configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	UI     UISettings     `hcl:"ui,block"`
}

// ServerSettings contains backend connection settings
type ServerSettings struct {
	AnalysisURL    string `hcl:"analysis_url"`
	RequestTimeout int    `hcl:"request_timeout,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel      string `hcl:"log_level,optional"`
	RevealSeconds int    `hcl:"reveal_seconds,optional"`
	Celebrations  bool   `hcl:"celebrations,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: ServerSettings{
			AnalysisURL:    "http://localhost:8080/api/poker/analyze",
			RequestTimeout: 30,
		},
		UI: UISettings{
			LogLevel:      "warn",
			RevealSeconds: 30,
			Celebrations:  true,
		},
	}
}

// Load loads configuration from an HCL file, falling back to defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if cfg.Server.AnalysisURL == "" {
		cfg.Server.AnalysisURL = defaults.Server.AnalysisURL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaults.Server.RequestTimeout
	}
	if cfg.UI.LogLevel == "" {
		cfg.UI.LogLevel = defaults.UI.LogLevel
	}
	if cfg.UI.RevealSeconds == 0 {
		cfg.UI.RevealSeconds = defaults.UI.RevealSeconds
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.AnalysisURL == "" {
		return fmt.Errorf("analysis URL is required")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.UI.RevealSeconds <= 0 {
		return fmt.Errorf("reveal seconds must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}
