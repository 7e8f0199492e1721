package cliapp

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/relateby/patterncore/internal/cliconfig"
)

const watchDebounce = 300 * time.Millisecond

// watchAndRun re-executes the selected algorithm every time cfg.InputPath
// changes on disk, debounced the way internal/watcher/watcher.go coalesces
// bursts of filesystem events into a single rebuild.
func watchAndRun(cfg *cliconfig.Config) error {
	if cfg.InputPath == "" {
		return fmt.Errorf("watch mode requires --input")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(cfg.InputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if err := executeOnce(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var timer *time.Timer
	rebuild := func() {
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "change detected, re-running %s\n", cfg.Algorithm)
		}
		if err := executeOnce(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfg.InputPath) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, rebuild)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watcher error: %v\n", err)
		case <-sigCh:
			return nil
		}
	}
}
