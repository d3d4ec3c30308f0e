package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the full TOML-driven generation configuration.
type Config struct {
	Schema       string        `toml:"schema"`
	OutputDir    string        `toml:"output_dir"`
	Languages    []string      `toml:"languages"`      // "python", "matlab"
	Workers      int           `toml:"workers"`        // parallel artifact writers
	OnParseError string        `toml:"on_parse_error"` // fail|skip
	Banner       string        `toml:"banner"`
	BannerFile   string        `toml:"banner_file"`
	Tables       []TableConfig `toml:"table"`

	// configDir is the directory containing the TOML file, used to resolve
	// relative definition and banner paths.
	configDir string
}

// TableConfig declares one table to generate.
type TableConfig struct {
	Name           string `toml:"name"`
	Tier           string `toml:"tier"`
	Definition     string `toml:"definition"`
	DefinitionFile string `toml:"definition_file"`
}

// loadConfig reads a TOML config file and returns a Config with defaults
// applied and every cross-field rule validated.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		OutputDir:    ".",
		OnParseError: "fail",
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if unknown := md.Undecoded(); len(unknown) > 0 {
		keys := make([]string, len(unknown))
		for i, k := range unknown {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg.configDir = filepath.Dir(absPath)

	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers()
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"python"}
	}

	cfg.Schema = strings.TrimSpace(cfg.Schema)
	if cfg.Schema == "" {
		return nil, fmt.Errorf("schema is required")
	}

	switch cfg.OnParseError {
	case "fail", "skip":
	default:
		return nil, fmt.Errorf("on_parse_error must be one of: fail, skip")
	}

	seenLang := map[string]bool{}
	for _, lang := range cfg.Languages {
		if _, err := newRenderer(lang); err != nil {
			return nil, err
		}
		if seenLang[lang] {
			return nil, fmt.Errorf("duplicate language %q", lang)
		}
		seenLang[lang] = true
		if err := checkIdent(cfg.Schema, lang); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
	}

	if cfg.Banner != "" && cfg.BannerFile != "" {
		return nil, fmt.Errorf("banner and banner_file are mutually exclusive")
	}

	if len(cfg.Tables) == 0 {
		return nil, fmt.Errorf("at least one [[table]] is required")
	}
	seenTable := map[string]bool{}
	for i := range cfg.Tables {
		tc := &cfg.Tables[i]
		tc.Name = strings.TrimSpace(tc.Name)
		if tc.Name == "" {
			return nil, fmt.Errorf("table[%d]: name is required", i)
		}
		if seenTable[tc.Name] {
			return nil, fmt.Errorf("duplicate table name %q", tc.Name)
		}
		seenTable[tc.Name] = true
		if tc.Tier == "" {
			tc.Tier = "Manual"
		}
		if _, err := parseTier(tc.Tier); err != nil {
			return nil, fmt.Errorf("table %s: %w", tc.Name, err)
		}
		if (tc.Definition == "") == (tc.DefinitionFile == "") {
			return nil, fmt.Errorf("table %s: exactly one of definition and definition_file is required", tc.Name)
		}
		for _, lang := range cfg.Languages {
			if err := checkIdent(tc.Name, lang); err != nil {
				return nil, fmt.Errorf("table %s: %w", tc.Name, err)
			}
		}
	}

	return &cfg, nil
}

// resolvePath resolves a path relative to the config file directory.
func (c *Config) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.configDir, p)
}

// definitionText returns the definition block for a configured table,
// reading definition_file when the definition is not inline.
func (c *Config) definitionText(tc TableConfig) (string, error) {
	if tc.Definition != "" {
		return tc.Definition, nil
	}
	data, err := os.ReadFile(c.resolvePath(tc.DefinitionFile))
	if err != nil {
		return "", fmt.Errorf("read definition for table %s: %w", tc.Name, err)
	}
	return string(data), nil
}

// bannerText returns the raw banner template, reading banner_file when set.
func (c *Config) bannerText() (string, error) {
	if c.BannerFile == "" {
		return c.Banner, nil
	}
	data, err := os.ReadFile(c.resolvePath(c.BannerFile))
	if err != nil {
		return "", fmt.Errorf("read banner: %w", err)
	}
	return string(data), nil
}

// watchedFiles returns the resolved paths watch mode must track: every
// definition_file plus the banner file when set.
func (c *Config) watchedFiles() []string {
	var paths []string
	for _, tc := range c.Tables {
		if tc.DefinitionFile != "" {
			paths = append(paths, c.resolvePath(tc.DefinitionFile))
		}
	}
	if c.BannerFile != "" {
		paths = append(paths, c.resolvePath(c.BannerFile))
	}
	return paths
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
