package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// parseConfigTables parses every configured definition into a Table, in
// config order. on_parse_error selects whether a bad definition fails the
// run or is skipped with a warning.
func parseConfigTables(cfg *Config) ([]*Table, error) {
	tables := make([]*Table, 0, len(cfg.Tables))
	for _, tc := range cfg.Tables {
		text, err := cfg.definitionText(tc)
		if err != nil {
			return nil, err
		}
		tier, err := parseTier(tc.Tier)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", tc.Name, err)
		}
		t, err := parseDefinition(tc.Name, tier, text)
		if err != nil {
			if cfg.OnParseError == "skip" {
				log.Warn().Err(err).Str("table", tc.Name).Msg("skipping table")
				continue
			}
			return nil, fmt.Errorf("parse table %s: %w", tc.Name, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// runGenerate executes the full pipeline for a loaded config: parse every
// definition, report lint warnings, render each configured language, write
// the artifacts under the output directory.
func runGenerate(cfg *Config) error {
	start := time.Now()

	tables, err := parseConfigTables(cfg)
	if err != nil {
		return err
	}
	log.Info().Int("tables", len(tables)).Strs("languages", cfg.Languages).Msg("parsed definitions")

	for _, t := range tables {
		log.Debug().Stringer("tier", t.Tier).Int("keys", len(t.Keys)).Int("attributes", len(t.Attributes)).Msg(t.Name)
		for _, w := range collectDefinitionWarnings(t) {
			log.Warn().Msg(w)
		}
	}

	banner, err := cfg.bannerText()
	if err != nil {
		return err
	}

	var artifacts []artifact
	for _, lang := range cfg.Languages {
		r, err := newRenderer(lang)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, r.Artifacts(cfg.Schema, tables, expandBanner(banner, cfg.Schema, r.CommentLeader()))...)
	}

	outDir := cfg.resolvePath(cfg.OutputDir)
	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)
	for _, a := range artifacts {
		a := a // per-iteration copy: go directive predates Go 1.22 loop semantics
		g.Go(func() error {
			return writeArtifact(outDir, a)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().
		Int("artifacts", len(artifacts)).
		Str("output_dir", outDir).
		Str("elapsed", time.Since(start).Round(time.Millisecond).String()).
		Msg("generation complete")
	return nil
}

func writeArtifact(outDir string, a artifact) error {
	path := filepath.Join(outDir, filepath.FromSlash(a.path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(a.data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", a.path, err)
	}
	log.Debug().Str("path", path).Msg("wrote artifact")
	return nil
}

// runCheck parses every configured definition and reports all failures and
// warnings without writing anything.
func runCheck(cfg *Config) error {
	var failures []string
	warnings := 0
	for _, tc := range cfg.Tables {
		text, err := cfg.definitionText(tc)
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}
		tier, err := parseTier(tc.Tier)
		if err != nil {
			failures = append(failures, fmt.Sprintf("table %s: %v", tc.Name, err))
			continue
		}
		t, err := parseDefinition(tc.Name, tier, text)
		if err != nil {
			failures = append(failures, fmt.Sprintf("table %s: %v", tc.Name, err))
			continue
		}
		for _, w := range collectDefinitionWarnings(t) {
			log.Warn().Msg(w)
			warnings++
		}
	}

	if len(failures) > 0 {
		for _, f := range failures {
			log.Error().Msg(f)
		}
		return fmt.Errorf("%d of %d table definitions failed to parse", len(failures), len(cfg.Tables))
	}
	log.Info().Int("tables", len(cfg.Tables)).Int("warnings", warnings).Msg("all definitions parse")
	return nil
}
