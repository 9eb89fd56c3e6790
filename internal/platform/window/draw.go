package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/games/clipper"
	"github.com/vovakirdan/clipper-arcade/internal/sprite"
)

// Debug font cell size used for text layout.
const (
	glyphW = 6
	glyphH = 16
)

const cloudSpan = 100

var (
	skyTop      = color.RGBA{0x5e, 0xa8, 0xe0, 0xff}
	skyBottom   = color.RGBA{0xc8, 0xe8, 0xf8, 0xff}
	grassColor  = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	dirtColor   = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	edgeColor   = color.RGBA{0x5d, 0x3a, 0x1a, 0xff}
	shirtColor  = color.RGBA{0x34, 0x5c, 0xc8, 0xff}
	skinColor   = color.RGBA{0xf1, 0xc2, 0x7d, 0xff}
	limbColor   = color.RGBA{0x22, 0x22, 0x33, 0xff}
	shadowLimb  = color.RGBA{0x55, 0x55, 0x66, 0xff}
	lighterBody = color.RGBA{0x9a, 0x9a, 0xa6, 0xff}
	overlayBG   = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

var hillTints = []color.RGBA{
	{0x8f, 0xb8, 0x9a, 0xff},
	{0x5f, 0xa0, 0x66, 0xff},
	{0x3d, 0x85, 0x45, 0xff},
}

// view maps world coordinates to canvas pixels.
type view struct {
	camX, dx, dy float64
}

func newView(s clipper.Scene) view {
	return view{camX: s.CameraX, dx: s.ShakeX, dy: s.ShakeY}
}

func (v view) box(b core.Box) core.Box {
	return core.NewBox(b.X-v.camX+v.dx, b.Y+v.dy, b.W, b.H)
}

// drawScene paints one frame back to front.
func drawScene(dst *ebiten.Image, s clipper.Scene, sprites sprite.Lookup[*ebiten.Image]) {
	v := newView(s)
	w, h := float32(s.World.ViewWidth), float32(s.World.ViewHeight)

	drawSky(dst, w, h)
	drawClouds(dst, v, s.Clouds)
	drawHills(dst, v, s)
	drawPlatforms(dst, v, s.Platforms, h)
	drawCoins(dst, v, s.Coins)
	drawParticles(dst, v, s.Particles)
	drawPlayer(dst, v, s.Player, sprites)
	for _, e := range s.Enemies {
		drawEnemy(dst, v, e, sprites)
	}
	drawHUD(dst, s)
	drawFlash(dst, s.Flash, w, h)

	if s.Paused {
		drawMessage(dst, w, h, "PAUSED", "Press P to resume")
	}
	if s.GameOver {
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score)
		if s.NewBest {
			sub = fmt.Sprintf("New best: %d  |  Press R to restart", s.Score)
		}
		drawMessage(dst, w, h, "GAME OVER", sub)
	}
}

func drawSky(dst *ebiten.Image, w, h float32) {
	const bands = 24
	bh := h / bands
	for i := 0; i < bands; i++ {
		c := lerpColor(skyTop, skyBottom, float64(i)/(bands-1))
		vector.DrawFilledRect(dst, 0, float32(i)*bh, w, bh+1, c, false)
	}
}

// drawClouds draws clouds in view space; only shake moves them.
func drawClouds(dst *ebiten.Image, v view, clouds []clipper.Cloud) {
	white := rgba(core.ColorBrightWhite)
	for _, c := range clouds {
		span := cloudSpan * c.Scale
		x, y := c.X+v.dx, c.Y+v.dy
		r := float32(span * 0.22)
		vector.DrawFilledCircle(dst, float32(x+span*0.25), float32(y), r, white, true)
		vector.DrawFilledCircle(dst, float32(x+span*0.5), float32(y-span*0.1), r*1.3, white, true)
		vector.DrawFilledCircle(dst, float32(x+span*0.75), float32(y), r, white, true)
	}
}

// hillHeight is the height of parallax layer i at canvas column x.
func hillHeight(i int, offset, x, viewH float64) float64 {
	depth := float64(i + 1)
	amp := viewH * 0.07 * depth
	freq := 0.006 / depth
	return (math.Sin((x+offset)*freq+float64(i)*1.3)+1)/2*amp + 4
}

// drawHills draws one rolling band per layer, far layers first.
func drawHills(dst *ebiten.Image, v view, s clipper.Scene) {
	const step = 4
	ground := s.World.GroundY + v.dy
	for i, l := range s.Layers {
		tint := hillTints[min(i, len(hillTints)-1)]
		for x := 0.0; x < s.World.ViewWidth; x += step {
			hh := hillHeight(i, l.Offset, x, s.World.ViewHeight)
			vector.DrawFilledRect(dst, float32(x), float32(ground-hh), step, float32(hh), tint, false)
		}
	}
}

func drawPlatforms(dst *ebiten.Image, v view, plats []clipper.Platform, viewH float32) {
	for _, p := range plats {
		b := v.box(p.Box())
		x, y, w := float32(b.X), float32(b.Y), float32(b.W)
		if p.Kind == clipper.PlatformGround {
			vector.DrawFilledRect(dst, x, y, w, viewH-y, dirtColor, false)
			vector.DrawFilledRect(dst, x, y, w, 10, grassColor, false)
			continue
		}
		vector.DrawFilledRect(dst, x, y, w, float32(b.H), dirtColor, false)
		vector.DrawFilledRect(dst, x, y, w, 6, grassColor, false)
		vector.StrokeRect(dst, x, y, w, float32(b.H), 2, edgeColor, false)
	}
}

// drawCoins draws each coin as a capsule whose width follows its spin.
func drawCoins(dst *ebiten.Image, v view, coins []clipper.Collectible) {
	gold := rgba(core.ColorGold)
	shine := rgba(core.ColorBrightYellow)
	for _, c := range coins {
		b := v.box(core.NewBox(c.X, c.Y+c.Bob, c.W, c.H))
		cw := b.W * math.Max(c.Spin, 0.15)
		cx, cy := b.CenterX(), b.CenterY()
		r := cw / 2
		if cw >= b.H*0.9 {
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(b.H/2), gold, true)
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(b.H/4), shine, true)
			continue
		}
		vector.DrawFilledRect(dst, float32(cx-r), float32(b.Y+r), float32(cw), float32(b.H-cw), gold, false)
		vector.DrawFilledCircle(dst, float32(cx), float32(b.Y+r), float32(r), gold, true)
		vector.DrawFilledCircle(dst, float32(cx), float32(b.Bottom()-r), float32(r), gold, true)
	}
}

func drawParticles(dst *ebiten.Image, v view, ps []clipper.Particle) {
	for _, p := range ps {
		c := fade(rgba(p.Color), p.Life)
		x := float32(p.X - v.camX + v.dx)
		y := float32(p.Y + v.dy)
		size := float32(math.Max(p.Size*p.Life, 1))
		switch p.Shape {
		case clipper.ShapeStar:
			vector.StrokeLine(dst, x-size, y, x+size, y, 2, c, true)
			vector.StrokeLine(dst, x, y-size, x, y+size, 2, c, true)
			d := size * 0.7
			vector.StrokeLine(dst, x-d, y-d, x+d, y+d, 1, c, true)
			vector.StrokeLine(dst, x-d, y+d, x+d, y-d, 1, c, true)
		case clipper.ShapeSquare:
			vector.DrawFilledRect(dst, x-size/2, y-size/2, size, size, c, false)
		default:
			vector.DrawFilledCircle(dst, x, y, size/2, c, true)
		}
	}
}

// bodyBox scales b horizontally around its center and vertically around its
// bottom edge, then lifts it by bob.
func bodyBox(b core.Box, scaleX, scaleY, bob float64) core.Box {
	w, h := b.W*scaleX, b.H*scaleY
	return core.NewBox(b.CenterX()-w/2, b.Bottom()-h+bob, w, h)
}

// limbEnd returns the tip of a limb of length l hanging from (x, y).
// Angle 0 points down; positive swings toward the facing side.
func limbEnd(x, y, l, angle, facing float64) (float64, float64) {
	if facing == 0 {
		facing = 1
	}
	return x + math.Sin(angle)*l*facing, y + math.Cos(angle)*l
}

// spriteGeoM stretches an image over b, anchored at the bottom center,
// mirrored when facing left and tilted by rotation.
func spriteGeoM(imgW, imgH int, b core.Box, facing, rotation float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(imgW)/2, -float64(imgH))
	sx := b.W / float64(imgW)
	sy := b.H / float64(imgH)
	if facing < 0 {
		sx = -sx
	}
	m.Scale(sx, sy)
	m.Rotate(rotation)
	m.Translate(b.CenterX(), b.Bottom())
	return m
}

func lookupImage(sprites sprite.Lookup[*ebiten.Image], k sprite.Kind) (*ebiten.Image, bool) {
	if sprites == nil || !sprites.Ready(k) {
		return nil, false
	}
	img, ok := sprites.Get(k)
	return img, ok && img != nil
}

func drawImage(dst, img *ebiten.Image, b core.Box, facing, rotation float64) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(size.X, size.Y, b, facing, rotation)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func drawPlayer(dst *ebiten.Image, v view, p clipper.PlayerView, sprites sprite.Lookup[*ebiten.Image]) {
	if p.Blinking {
		return
	}
	b := v.box(bodyBox(p.Box, p.ScaleX, p.ScaleY, p.Pose.Bob))

	if img, ok := lookupImage(sprites, sprite.KindPlayer); ok {
		drawImage(dst, img, b, p.Facing, p.Pose.Rotation)
		return
	}

	facing := p.Facing
	if facing == 0 {
		facing = 1
	}
	cx := b.CenterX()
	hip := b.Y + b.H*0.72
	shoulder := b.Y + b.H*0.38
	legLen := b.Bottom() - hip
	armLen := b.H * 0.3

	// Back limbs sit behind the torso.
	drawLimb(dst, cx-b.W*0.12*facing, hip, legLen, p.Pose.LegBack, facing, shadowLimb)
	drawLimb(dst, cx-b.W*0.2*facing, shoulder, armLen, p.Pose.ArmBack, facing, shadowLimb)

	torsoW := b.W * 0.7
	vector.DrawFilledRect(dst, float32(cx-torsoW/2), float32(b.Y+b.H*0.3), float32(torsoW), float32(hip-b.Y-b.H*0.3), shirtColor, false)
	headR := b.H * 0.15
	headY := b.Y + headR
	vector.DrawFilledCircle(dst, float32(cx), float32(headY), float32(headR), skinColor, true)
	vector.DrawFilledCircle(dst, float32(cx+headR*0.45*facing), float32(headY-headR*0.1), float32(math.Max(headR*0.15, 1)), limbColor, true)

	drawLimb(dst, cx+b.W*0.12*facing, hip, legLen, p.Pose.LegFront, facing, limbColor)
	drawLimb(dst, cx+b.W*0.2*facing, shoulder, armLen, p.Pose.ArmFront, facing, limbColor)

	drawLabel(dst, b, "CLIPPER")
}

func drawLimb(dst *ebiten.Image, x, y, l, angle, facing float64, c color.RGBA) {
	ex, ey := limbEnd(x, y, l, angle, facing)
	vector.StrokeLine(dst, float32(x), float32(y), float32(ex), float32(ey), 5, c, true)
}

func drawEnemy(dst *ebiten.Image, v view, e clipper.EnemyView, sprites sprite.Lookup[*ebiten.Image]) {
	b := v.box(bodyBox(e.Box, e.ScaleX, e.ScaleY, e.Bob))

	if img, ok := lookupImage(sprites, sprite.KindEnemy); ok {
		drawImage(dst, img, b, e.Facing, e.Rotation)
		drawFlame(dst, b, e.Glow)
		return
	}

	bodyW := b.W * 0.7
	x := b.CenterX() - bodyW/2
	capH := b.H * 0.2
	vector.DrawFilledRect(dst, float32(x), float32(b.Y+capH), float32(bodyW), float32(b.H-capH), lighterBody, false)
	vector.DrawFilledRect(dst, float32(x), float32(b.Y), float32(bodyW), float32(capH), rgba(core.ColorRed), false)
	vector.StrokeRect(dst, float32(x), float32(b.Y), float32(bodyW), float32(b.H), 1, edgeColor, false)
	drawFlame(dst, b, e.Glow)
	drawLabel(dst, b, "LIGHTER")
}

// drawFlame draws a flame above the enemy sized by its glow.
func drawFlame(dst *ebiten.Image, b core.Box, glow float64) {
	if glow <= 0 {
		return
	}
	r := float32(b.W * 0.15 * (0.6 + glow*0.6))
	cx, top := float32(b.CenterX()), float32(b.Y)
	vector.DrawFilledCircle(dst, cx, top-r, r, fade(rgba(core.ColorOrange), 0.5+glow/2), true)
	vector.DrawFilledCircle(dst, cx, top-r*0.8, r*0.5, fade(rgba(core.ColorBrightYellow), glow), true)
}

// drawLabel prints text centered in b.
func drawLabel(dst *ebiten.Image, b core.Box, text string) {
	x := int(b.CenterX()) - len(text)*glyphW/2
	y := int(b.CenterY()) - glyphH/2
	ebitenutil.DebugPrintAt(dst, text, x, y)
}

func drawHUD(dst *ebiten.Image, s clipper.Scene) {
	left := fmt.Sprintf("Score: %d  Best: %d", s.Score, s.HighScore)
	ebitenutil.DebugPrintAt(dst, left, 10, 8)

	heartX := float32(10 + len(left)*glyphW + 16)
	red := rgba(core.ColorBrightRed)
	for i := 0; i < s.Lives; i++ {
		vector.DrawFilledCircle(dst, heartX+float32(i)*18, 16, 6, red, true)
	}

	var right string
	if s.Variant == config.VariantPlatformer {
		right = fmt.Sprintf("Coins: %d  Spd x%.1f", s.CoinsLeft, s.Speed)
	} else {
		right = fmt.Sprintf("Spd x%.1f", s.Speed)
	}
	ebitenutil.DebugPrintAt(dst, right, int(s.World.ViewWidth)-len(right)*glyphW-10, 8)
}

// drawFlash tints the frame red in proportion to the hit flash.
func drawFlash(dst *ebiten.Image, flash float64, w, h float32) {
	if flash <= 0 {
		return
	}
	vector.DrawFilledRect(dst, 0, 0, w, h, fade(rgba(core.ColorBrightRed), flash*0.4), false)
}

func drawMessage(dst *ebiten.Image, w, h float32, title, subtitle string) {
	boxW := float32(max(len(title), len(subtitle))*glyphW + 40)
	boxH := float32(glyphH*3 + 20)
	x, y := (w-boxW)/2, (h-boxH)/2

	vector.DrawFilledRect(dst, x, y, boxW, boxH, overlayBG, false)
	vector.StrokeRect(dst, x, y, boxW, boxH, 2, rgba(core.ColorBrightWhite), false)

	cx := int(w / 2)
	ebitenutil.DebugPrintAt(dst, title, cx-len(title)*glyphW/2, int(y)+10)
	ebitenutil.DebugPrintAt(dst, subtitle, cx-len(subtitle)*glyphW/2, int(y)+10+glyphH*2)
}
