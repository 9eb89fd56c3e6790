package clipper

import (
	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

// contact classifies a player/enemy touch.
type contact int

const (
	contactNone contact = iota
	contactStomp
	contactSide
)

// classifyContact tests the shrunken boxes and decides between a stomp
// (falling onto the enemy from above its top band) and a side hit.
func classifyContact(p *Player, e *Enemy, cfg config.CollisionConfig) contact {
	if !core.Overlaps(p.Box(), e.Box(), cfg.Shrink) {
		return contactNone
	}
	if p.VY > 0 && p.PrevBottom() <= e.Y+e.H*cfg.StompBand {
		return contactStomp
	}
	return contactSide
}

// touches reports a player/collectible pickup.
func touches(p *Player, c *Collectible, cfg config.CollisionConfig) bool {
	return core.Overlaps(p.Box(), c.Box(), cfg.Shrink)
}
