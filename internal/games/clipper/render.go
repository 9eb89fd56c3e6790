package clipper

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
	"github.com/vovakirdan/clipper-arcade/internal/sprite"
)

// Terminal glyphs
const (
	GrassChar      = '▀'
	DirtChar       = '▓'
	PlatformChar   = '█'
	PlayerBodyChar = '█'
	EnemyBodyChar  = '▓'
	CloudChar      = '≈'
	HeartChar      = '♥'
)

var hillChars = []rune{'░', '▒', '▓'}

var hillColors = []core.Color{core.ColorGray, core.ColorGreen, core.ColorBrightGreen}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
	camX   float64
	dx, dy float64
	w, h   int
}

func newViewport(s Scene, dst *core.Screen) viewport {
	return viewport{
		sx:   float64(dst.Width()) / s.World.ViewWidth,
		sy:   float64(dst.Height()) / s.World.ViewHeight,
		camX: s.CameraX,
		dx:   s.ShakeX,
		dy:   s.ShakeY,
		w:    dst.Width(),
		h:    dst.Height(),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.camX + v.dx) * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((y + v.dy) * v.sy))
}

// rect converts a world box to cells, at least one cell in each direction.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1, y1 := v.col(b.Right()), v.row(b.Bottom())
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current frame into dst, back to front.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil {
		return
	}
	RenderScene(dst, g.Scene(), g.art)
}

// RenderScene draws a scene with optional text-art sprites.
func RenderScene(dst *core.Screen, s Scene, art sprite.Lookup[[]string]) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := newViewport(s, dst)

	drawClouds(dst, v, s.Clouds)
	drawHills(dst, v, s)
	drawPlatforms(dst, v, s.Platforms)
	drawCoins(dst, v, s.Coins)
	drawParticles(dst, v, s.Particles)
	drawPlayer(dst, v, s.Player, art)
	for _, e := range s.Enemies {
		drawEnemy(dst, v, e, art)
	}
	drawHUD(dst, s)
	drawFlash(dst, s.Flash)

	if s.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.GameOver {
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score)
		if s.NewBest {
			sub = fmt.Sprintf("New best: %d  |  Press R to restart", s.Score)
		}
		drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawClouds draws clouds in view space; they ignore the camera.
func drawClouds(dst *core.Screen, v viewport, clouds []Cloud) {
	for _, c := range clouds {
		x := int(math.Floor((c.X + v.dx) * v.sx))
		y := v.row(c.Y)
		n := max(1, int(cloudWidth*c.Scale*v.sx))
		dst.DrawHLine(x, y, n, CloudChar, core.ColorBrightWhite)
		if n > 2 {
			dst.DrawHLine(x+1, y-1, n-2, CloudChar, core.ColorWhite)
		}
	}
}

// drawHills draws one rolling band per parallax layer, far layers first.
func drawHills(dst *core.Screen, v viewport, s Scene) {
	ground := v.row(s.World.GroundY)
	for i, l := range s.Layers {
		depth := i + 1
		amp := max(1, int(float64(v.h)*0.07*float64(depth)))
		ch := hillChars[min(i, len(hillChars)-1)]
		color := hillColors[min(i, len(hillColors)-1)]
		freq := 0.006 / float64(depth)

		for x := 0; x < v.w; x++ {
			wx := float64(x)/v.sx + l.Offset
			hh := int((math.Sin(wx*freq+float64(i)*1.3)+1)/2*float64(amp)) + 1
			for y := ground - hh; y < ground; y++ {
				dst.SetColor(x, y, ch, color)
			}
		}
	}
}

func drawPlatforms(dst *core.Screen, v viewport, plats []Platform) {
	for _, p := range plats {
		r := v.rect(p.Box())
		if p.Kind == PlatformGround {
			r = core.NewRect(0, r.Y, v.w, max(1, v.h-r.Y))
			dst.FillRect(r, DirtChar, core.ColorBrown)
			dst.DrawHLine(r.X, r.Y, r.W, GrassChar, core.ColorBrightGreen)
			continue
		}
		dst.FillRect(r, PlatformChar, core.ColorBrown)
		dst.DrawHLine(r.X, r.Y, r.W, GrassChar, core.ColorGreen)
	}
}

func drawCoins(dst *core.Screen, v viewport, coins []Collectible) {
	for _, c := range coins {
		x := v.col(c.X + c.W/2)
		y := v.row(c.Y + c.H/2 + c.Bob)
		ch := '●'
		switch {
		case c.Spin < 0.25:
			ch = '|'
		case c.Spin < 0.6:
			ch = '◐'
		}
		dst.SetColor(x, y, ch, core.ColorGold)
	}
}

func drawParticles(dst *core.Screen, v viewport, ps []Particle) {
	for _, p := range ps {
		ch := '•'
		switch {
		case p.Life < 0.35:
			ch = '·'
		case p.Shape == ShapeStar:
			ch = '*'
		case p.Shape == ShapeSquare:
			ch = '▪'
		}
		dst.SetColor(v.col(p.X), v.row(p.Y), ch, p.Color)
	}
}

// bodyRect scales a box vertically around its bottom edge and lifts it by bob.
func bodyRect(v viewport, b core.Box, scaleY, bob float64) core.Rect {
	h := b.H * scaleY
	return v.rect(core.NewBox(b.X, b.Bottom()-h+bob, b.W, h))
}

func drawPlayer(dst *core.Screen, v viewport, p PlayerView, art sprite.Lookup[[]string]) {
	if p.Blinking {
		return
	}
	r := bodyRect(v, p.Box, p.ScaleY, p.Pose.Bob)

	if lines, ok := lookupArt(art, sprite.KindPlayer); ok {
		drawArt(dst, r, lines, p.Facing < 0, core.ColorBrightWhite)
		return
	}

	dst.FillRect(r, PlayerBodyChar, core.ColorBrightWhite)
	drawLabel(dst, r, "CLIPPER", core.ColorBlue)
	drawLimbs(dst, r, p.Pose, p.Facing)
}

func drawEnemy(dst *core.Screen, v viewport, e EnemyView, art sprite.Lookup[[]string]) {
	r := bodyRect(v, e.Box, e.ScaleY, e.Bob)
	glow := core.ColorRed
	if e.Glow > 0.6 {
		glow = core.ColorBrightRed
	}

	if lines, ok := lookupArt(art, sprite.KindEnemy); ok {
		// Enemy art faces right; flip it toward its walking direction.
		drawArt(dst, r, lines, e.Facing < 0, glow)
		return
	}

	dst.FillRect(r, EnemyBodyChar, core.ColorGray)
	drawLabel(dst, r, "LIGHTER", glow)
	if e.Glow > 0.8 {
		dst.SetColor(r.X+r.W/2, r.Y-1, '^', core.ColorOrange)
	}
}

func lookupArt(art sprite.Lookup[[]string], k sprite.Kind) ([]string, bool) {
	if art == nil || !art.Ready(k) {
		return nil, false
	}
	return art.Get(k)
}

// drawArt draws text art centered on r's bottom edge.
func drawArt(dst *core.Screen, r core.Rect, lines []string, mirror bool, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	x0 := r.X + (r.W-width)/2
	y0 := r.Bottom() - len(lines)

	for dy, l := range lines {
		runes := []rune(l)
		for dx, ch := range runes {
			if mirror {
				ch = mirrorRune(runes[len(runes)-1-dx])
				dx += width - len(runes)
			}
			if ch == ' ' {
				continue
			}
			dst.SetColor(x0+dx, y0+dy, ch, c)
		}
	}
}

var mirrorPairs = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

func mirrorRune(ch rune) rune {
	if m, ok := mirrorPairs[ch]; ok {
		return m
	}
	return ch
}

// drawLabel writes text on the middle row of r, truncated to fit.
func drawLabel(dst *core.Screen, r core.Rect, text string, c core.Color) {
	if r.W < 3 {
		return
	}
	runes := []rune(text)
	if len(runes) > r.W {
		runes = runes[:r.W]
	}
	x := r.X + (r.W-len(runes))/2
	dst.DrawTextColor(x, r.Y+r.H/2, string(runes), c)
}

// drawLimbs draws arms beside the body and legs along its bottom row.
func drawLimbs(dst *core.Screen, r core.Rect, pose Pose, facing float64) {
	if facing == 0 {
		facing = 1
	}
	shoulder := r.Y + r.H/3
	front, back := r.Right(), r.X-1
	if facing < 0 {
		front, back = back, front
	}
	dst.SetColor(front, shoulder, limbRune(pose.ArmFront*facing), core.ColorBrightWhite)
	dst.SetColor(back, shoulder, limbRune(pose.ArmBack*facing), core.ColorWhite)

	if r.H < 2 {
		return
	}
	hip := r.Bottom() - 1
	frontLeg, backLeg := r.X+r.W*3/4, r.X+r.W/4
	if facing < 0 {
		frontLeg, backLeg = backLeg, frontLeg
	}
	dst.SetColor(frontLeg, hip, limbRune(pose.LegFront*facing), core.ColorWhite)
	dst.SetColor(backLeg, hip, limbRune(pose.LegBack*facing), core.ColorWhite)
}

// limbRune picks a glyph for a limb hanging from its joint. Angle 0 points
// down, positive swings toward screen right.
func limbRune(angle float64) rune {
	a := math.Abs(angle)
	right := angle > 0
	switch {
	case a < 0.4:
		return '|'
	case a < 1.2:
		if right {
			return '\\'
		}
		return '/'
	case a < 1.95:
		return '─'
	case a < 2.75:
		if right {
			return '/'
		}
		return '\\'
	default:
		return '|'
	}
}

func drawHUD(dst *core.Screen, s Scene) {
	left := fmt.Sprintf(" Score: %d  Best: %d  ", s.Score, s.HighScore)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)
	hearts := strings.Repeat(string(HeartChar), max(0, s.Lives))
	dst.DrawTextColor(1+len([]rune(left)), 0, hearts, core.ColorBrightRed)

	var right string
	if s.Variant == config.VariantPlatformer {
		right = fmt.Sprintf(" Coins: %d  Spd x%.1f ", s.CoinsLeft, s.Speed)
	} else {
		right = fmt.Sprintf(" Spd x%.1f ", s.Speed)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorCyan)
}

// drawFlash tints the whole frame red on a fresh hit, then only the edges.
func drawFlash(dst *core.Screen, flash float64) {
	if flash <= 0 {
		return
	}
	w, h := dst.Width(), dst.Height()
	if flash >= 0.5 {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Tint(x, y, core.ColorBrightRed)
			}
		}
		return
	}
	for x := 0; x < w; x++ {
		dst.Tint(x, h-1, core.ColorRed)
	}
	for y := 0; y < h; y++ {
		dst.Tint(0, y, core.ColorRed)
		dst.Tint(w-1, y, core.ColorRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	r := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightWhite)
	dst.DrawTextCentered(r.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, subtitle, core.ColorWhite)
}
