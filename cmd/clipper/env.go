package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/platform/tui"
	"github.com/vovakirdan/clipper-arcade/internal/sprite"
	"github.com/vovakirdan/clipper-arcade/internal/storage"
)

func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger returns a logger for full-screen terminal modes, where stderr
// output would corrupt the display. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, appName), func() {}
	}

	path, err := storage.ExpandPath(flagLogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return newLogger(io.Discard, appName), func() {}
	}
	return newLogger(f, appName), func() { f.Close() }
}

// openBest opens the best-score store, falling back to memory.
func openBest(logger *log.Logger) *storage.KVStore {
	kv, err := storage.OpenKV(appName)
	if err != nil {
		logger.Warn("high scores will not persist", "error", err)
		return storage.NewMemoryKV()
	}
	return kv
}

// openHistory opens the run database. A nil store means no history.
func openHistory(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeHistory(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// recorderOf keeps a nil store from becoming a non-nil interface.
func recorderOf(store *storage.Store) storage.RunRecorder {
	if store == nil {
		return nil
	}
	return store
}

func scoreSourceOf(store *storage.Store) tui.ScoreSource {
	if store == nil {
		return nil
	}
	return store
}

// configureGames applies the global flags to every game created afterwards.
func configureGames(best clipper.HighScoreStore) {
	clipper.SetHighScoreStore(best)
	clipper.SetConfigPath(flagConfig)
	clipper.SetDifficultyPreset(flagDifficulty)
}

// resolveGame accepts a variant name or a game ID.
func resolveGame(arg string) (gameID, variant string, err error) {
	switch strings.ToLower(arg) {
	case config.VariantRunner, clipper.IDRunner:
		return clipper.IDRunner, config.VariantRunner, nil
	case config.VariantPlatformer, clipper.IDPlatformer:
		return clipper.IDPlatformer, config.VariantPlatformer, nil
	}
	return "", "", fmt.Errorf("unknown variant %q", arg)
}

// spriteConfig returns the sprite settings for a variant, ignoring a custom
// config that belongs to the other variant.
func spriteConfig(variant string, logger *log.Logger) config.SpriteConfig {
	cfg, err := config.Load(variant, flagConfig)
	if err != nil {
		logger.Debug("using default sprite settings", "variant", variant, "error", err)
		cfg = config.LoadDefault(variant)
	}
	return cfg.Sprites
}

func loadTimeout(sc config.SpriteConfig) time.Duration {
	return time.Duration(sc.LoadTimeoutMS) * time.Millisecond
}

// loadTextSprites starts loading text art for the terminal renderer.
func loadTextSprites(ctx context.Context, variant string, logger *log.Logger) {
	sc := spriteConfig(variant, logger)
	set := sprite.Load(ctx, sprite.TextLoaders(sc.Dir, sc.Player, sc.Enemy), loadTimeout(sc), logger)
	clipper.SetSpriteSource(set)
}

// terminalConfig sizes the runtime to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
