package clipper

import (
	"math"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

const coinSize = 30

// Collectible is a coin. Bob and Spin are cosmetic; the hit box stays put.
type Collectible struct {
	X, Y, W, H float64
	Phase      float64
	Bob        float64
	Spin       float64 // Horizontal scale, 0..1
}

// Box returns the pickup bounds.
func (c *Collectible) Box() core.Box {
	return core.NewBox(c.X, c.Y, c.W, c.H)
}

func buildCollectibles(defs []config.PointDef) []Collectible {
	coins := make([]Collectible, 0, len(defs))
	for i, d := range defs {
		coins = append(coins, Collectible{
			X:     d.X - coinSize/2,
			Y:     d.Y - coinSize/2,
			W:     coinSize,
			H:     coinSize,
			Phase: float64(i) * 0.7,
			Spin:  1,
		})
	}
	return coins
}

func (c *Collectible) update() {
	c.Phase += 0.1
	c.Bob = math.Sin(c.Phase*3) * 5
	c.Spin = math.Abs(math.Cos(c.Phase * 2))
}
