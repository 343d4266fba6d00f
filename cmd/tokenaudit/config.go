package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const defaultConfigFile = ".tokenaudit.yaml"

var k = koanf.New(".")

// analyzeOptions is the resolved configuration of one analyze run
type analyzeOptions struct {
	Output  string // report file path, empty for stdout
	Format  string // markdown | md | json | summary
	Quiet   bool
	Verbose bool
	Color   bool
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Unchanged flags only fill keys
	// no other provider has set.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TOKENAUDIT_* prefix)
	if err := k.Load(env.Provider("TOKENAUDIT_", ".", func(s string) string {
		// TOKENAUDIT_FORMAT -> format
		// TOKENAUDIT_QUIET -> quiet
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TOKENAUDIT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildAnalyzeOptions constructs the analyze options from koanf state.
// Files, env and flags all write the same top-level keys.
func buildAnalyzeOptions() analyzeOptions {
	return analyzeOptions{
		Output:  getString("output", ""),
		Format:  getString("format", "markdown"),
		Quiet:   getBool("quiet", false),
		Verbose: getBool("verbose", false),
		Color:   getBool("color", false),
	}
}

// getString returns the key's value, or defaultVal when it is unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the key's value, or defaultVal when it is unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
