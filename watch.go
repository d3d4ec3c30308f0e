package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// runWatch generates once, then regenerates whenever the config, a
// definition file or the banner file changes. SIGHUP forces a
// regeneration; SIGINT/SIGTERM stop watching.
//
// Parent directories are watched rather than the files themselves because
// editors typically replace files on save, which drops a direct watch.
func runWatch(cfgPath string) error {
	absCfg, err := filepath.Abs(cfgPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	regenerate := func() (map[string]bool, error) {
		cfg, err := loadConfig(absCfg)
		if err != nil {
			return nil, err
		}
		if err := runGenerate(cfg); err != nil {
			return nil, err
		}
		files := map[string]bool{absCfg: true}
		for _, p := range cfg.watchedFiles() {
			files[p] = true
		}
		return files, nil
	}

	watched, err := regenerate()
	if err != nil {
		return err
	}
	if err := watchDirs(watcher, watched); err != nil {
		return err
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(hup)
	defer signal.Stop(stop)

	log.Info().Str("config", absCfg).Int("files", len(watched)).Msg("watching for changes")

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			log.Info().Str("file", abs).Msg("change detected")
			// A failed regeneration keeps the previous watch set.
			next, err := regenerate()
			if err != nil {
				log.Error().Err(err).Msg("regeneration failed")
				continue
			}
			watched = next
			if err := watchDirs(watcher, watched); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watch error")

		case <-hup:
			log.Info().Msg("SIGHUP received, regenerating")
			next, err := regenerate()
			if err != nil {
				log.Error().Err(err).Msg("regeneration failed")
				continue
			}
			watched = next
			if err := watchDirs(watcher, watched); err != nil {
				return err
			}

		case <-stop:
			log.Info().Msg("stopping watch")
			return nil
		}
	}
}

// watchDirs ensures the parent directory of every watched file is on the
// watcher. Re-adding a directory is a no-op.
func watchDirs(watcher *fsnotify.Watcher, files map[string]bool) error {
	dirs := map[string]bool{}
	for f := range files {
		dirs[filepath.Dir(f)] = true
	}
	for d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}
	return nil
}
