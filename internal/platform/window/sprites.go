package window

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/clipper-arcade/internal/sprite"
)

// PNGFile loads an image file as an ebiten image.
func PNGFile(path string) sprite.Loader[*ebiten.Image] {
	return func(ctx context.Context) (*ebiten.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("window: failed to load %s: %w", path, err)
		}
		if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
			return nil, fmt.Errorf("window: %s: %w", path, sprite.ErrEmptySprite)
		}
		return img, nil
	}
}

// PNGLoaders returns loaders for <dir>/<player>.png and <dir>/<enemy>.png.
func PNGLoaders(dir, player, enemy string) map[sprite.Kind]sprite.Loader[*ebiten.Image] {
	return map[sprite.Kind]sprite.Loader[*ebiten.Image]{
		sprite.KindPlayer: PNGFile(filepath.Join(dir, player+".png")),
		sprite.KindEnemy:  PNGFile(filepath.Join(dir, enemy+".png")),
	}
}
