package sprite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptySprite is returned for sprite files without any visible content.
var ErrEmptySprite = errors.New("sprite: empty sprite")

// TextFile loads ASCII art from a file. Trailing blank lines are dropped.
func TextFile(path string) Loader[[]string] {
	return func(ctx context.Context) ([]string, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sprite: failed to read %s: %w", path, err)
		}
		lines := ParseText(string(data))
		if len(lines) == 0 {
			return nil, fmt.Errorf("sprite: %s: %w", path, ErrEmptySprite)
		}
		return lines, nil
	}
}

// ParseText splits art into lines, dropping CR and trailing blank lines.
func ParseText(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// TextLoaders returns loaders for <dir>/<player>.txt and <dir>/<enemy>.txt.
func TextLoaders(dir, player, enemy string) map[Kind]Loader[[]string] {
	return map[Kind]Loader[[]string]{
		KindPlayer: TextFile(filepath.Join(dir, player+".txt")),
		KindEnemy:  TextFile(filepath.Join(dir, enemy+".txt")),
	}
}
