package clipper

import (
	"testing"

	"github.com/vovakirdan/clipper-arcade/internal/config"
	"github.com/vovakirdan/clipper-arcade/internal/core"
)

func TestFallSpeedNeverExceedsMax(t *testing.T) {
	for _, variant := range []string{config.VariantRunner, config.VariantPlatformer} {
		t.Run(variant, func(t *testing.T) {
			cfg := quietConfig(variant)
			g := newTestGame(t, cfg, nil)
			g.player.Y = -3000
			g.player.OnGround = false

			for i := 0; i < 400; i++ {
				g.Step(idle())
				if g.player.VY > cfg.Player.MaxFallSpeed {
					t.Fatalf("tick %d: vy = %v exceeds max %v", i, g.player.VY, cfg.Player.MaxFallSpeed)
				}
			}
			if !g.player.OnGround {
				t.Error("player should have landed")
			}
		})
	}
}

func TestPlayerStaysInsideWorld(t *testing.T) {
	for _, variant := range []string{config.VariantRunner, config.VariantPlatformer} {
		t.Run(variant, func(t *testing.T) {
			cfg := quietConfig(variant)
			g := newTestGame(t, cfg, nil)
			maxX := cfg.World.Width - cfg.Player.Width

			check := func(i int) {
				if g.player.X < 0 || g.player.X > maxX {
					t.Fatalf("tick %d: x = %v outside [0, %v]", i, g.player.X, maxX)
				}
			}

			for i := 0; i < 200; i++ {
				in := core.FrameOf(core.ActionLeft, core.ActionRun)
				if i%30 == 0 {
					in.Set(core.ActionJump)
				}
				g.Step(in)
				check(i)
			}
			if g.player.X != 0 {
				t.Errorf("holding left should reach x=0, got %v", g.player.X)
			}

			for i := 0; i < 1000; i++ {
				in := core.FrameOf(core.ActionRight, core.ActionRun)
				if i%25 == 0 {
					in.Set(core.ActionJump)
				}
				g.Step(in)
				check(i)
			}
			if g.player.X != maxX {
				t.Errorf("holding right should reach x=%v, got %v", maxX, g.player.X)
			}
		})
	}
}

func TestMovingRightIsMonotonicUntilClamped(t *testing.T) {
	for _, variant := range []string{config.VariantRunner, config.VariantPlatformer} {
		t.Run(variant, func(t *testing.T) {
			cfg := quietConfig(variant)
			g := newTestGame(t, cfg, nil)
			maxX := cfg.World.Width - cfg.Player.Width

			prev := g.player.X
			for i := 0; i < 1000; i++ {
				g.Step(core.FrameOf(core.ActionRight))
				x := g.player.X
				if x < prev {
					t.Fatalf("tick %d: x went back from %v to %v", i, prev, x)
				}
				if x == prev && x != maxX {
					t.Fatalf("tick %d: x stalled at %v before the bound", i, x)
				}
				prev = x
			}
			if prev != maxX {
				t.Errorf("x = %v, expected clamp at %v", prev, maxX)
			}
		})
	}
}

func TestJumpIsNoOpInAir(t *testing.T) {
	cfg := quietConfig(config.VariantRunner)
	g := newTestGame(t, cfg, nil)

	res := g.Step(core.FrameOf(core.ActionJump))
	if !res.Has(core.EventJump) {
		t.Fatal("jump from the ground should fire")
	}
	if g.player.OnGround || g.player.VY >= 0 {
		t.Fatalf("player should be rising, vy = %v", g.player.VY)
	}

	vy := g.player.VY
	particles := len(g.particles)
	res = g.Step(core.FrameOf(core.ActionJump))

	if res.Has(core.EventJump) || res.Has(core.EventDoubleJump) {
		t.Error("airborne jump without double jump should not fire")
	}
	if g.player.VY != vy+cfg.Player.Gravity {
		t.Errorf("vy = %v, expected only gravity applied (%v)", g.player.VY, vy+cfg.Player.Gravity)
	}
	if len(g.particles) > particles {
		t.Errorf("airborne jump spawned particles: %d -> %d", particles, len(g.particles))
	}
}

func TestJumpDirect(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := newPlayer(cfg.Player, cfg.World)

	if k := p.Jump(); k != jumpGround {
		t.Fatalf("ground jump = %v, expected jumpGround", k)
	}
	if p.VY != -cfg.Player.JumpPower {
		t.Errorf("vy = %v, expected %v", p.VY, -cfg.Player.JumpPower)
	}
	if k := p.Jump(); k != jumpNone {
		t.Errorf("second jump = %v, expected jumpNone", k)
	}
	if p.VY != -cfg.Player.JumpPower {
		t.Errorf("failed jump changed vy to %v", p.VY)
	}
}

func TestDoubleJump(t *testing.T) {
	cfg := quietConfig(config.VariantPlatformer)
	g := newTestGame(t, cfg, nil)

	if res := g.Step(core.FrameOf(core.ActionJump)); !res.Has(core.EventJump) {
		t.Fatal("first jump should fire")
	}
	g.Step(idle())

	res := g.Step(core.FrameOf(core.ActionJump))
	if !res.Has(core.EventDoubleJump) {
		t.Fatal("second jump in the air should be a double jump")
	}
	if g.player.VY != -cfg.Player.DoubleJumpPower+cfg.Player.Gravity {
		t.Errorf("vy = %v after double jump", g.player.VY)
	}

	res = g.Step(core.FrameOf(core.ActionJump))
	if res.Has(core.EventJump) || res.Has(core.EventDoubleJump) {
		t.Error("third jump should be a no-op")
	}

	// Landing restores the double jump.
	for i := 0; i < 200 && !g.player.OnGround; i++ {
		g.Step(idle())
	}
	if !g.player.canDoubleJump {
		t.Error("landing should restore the double jump")
	}
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	cfg := quietConfig(config.VariantPlatformer)
	g := newTestGame(t, cfg, nil)

	// First platform spans x 400..620 with its top at y=350.
	g.player.X = 450
	g.player.Y = 100
	g.player.OnGround = false

	landed := 0
	sawFalling := false
	for i := 0; i < 200; i++ {
		res := g.Step(idle())
		landed += res.Count(core.EventLand)
		if g.player.State == StateFalling {
			sawFalling = true
		}
		if g.player.OnGround {
			break
		}
	}

	if !g.player.OnGround {
		t.Fatal("player should land")
	}
	if bottom := g.player.Y + g.player.H; bottom != 350 {
		t.Errorf("player bottom = %v, expected platform top 350", bottom)
	}
	if !sawFalling || g.player.State != StateIdle {
		t.Errorf("expected falling then idle, ended in %s", g.player.State)
	}
	if landed != 1 {
		t.Errorf("land events = %d, expected 1", landed)
	}

	// Jumping up through the platform from below is not caught.
	g.player.X = 450
	g.player.Y = 380
	g.player.VY = -15
	g.player.OnGround = false
	for i := 0; i < 5; i++ {
		g.Step(idle())
		if g.player.OnGround {
			t.Fatalf("tick %d: caught by platform while rising", i)
		}
	}
}

func TestAccelerationAndFriction(t *testing.T) {
	cfg := quietConfig(config.VariantPlatformer)
	g := newTestGame(t, cfg, nil)

	for i := 0; i < 30; i++ {
		g.Step(core.FrameOf(core.ActionRight))
	}
	if g.player.VX != cfg.Player.Speed {
		t.Errorf("walk speed = %v, expected cap %v", g.player.VX, cfg.Player.Speed)
	}

	for i := 0; i < 30; i++ {
		g.Step(core.FrameOf(core.ActionRight, core.ActionRun))
	}
	want := cfg.Player.Speed * cfg.Player.RunMultiplier
	if d := g.player.VX - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("run speed = %v, expected %v", g.player.VX, want)
	}

	for i := 0; i < 60; i++ {
		g.Step(idle())
	}
	if g.player.VX != 0 {
		t.Errorf("friction should stop the player, vx = %v", g.player.VX)
	}
	if g.player.State != StateIdle {
		t.Errorf("state = %s, expected idle", g.player.State)
	}
}

func TestRunningState(t *testing.T) {
	g := newTestGame(t, quietConfig(config.VariantRunner), nil)
	g.Step(core.FrameOf(core.ActionRight))
	if g.player.State != StateRunning {
		t.Errorf("state = %s, expected running", g.player.State)
	}
	if g.player.Facing != 1 {
		t.Errorf("facing = %v, expected 1", g.player.Facing)
	}
	g.Step(core.FrameOf(core.ActionLeft))
	if g.player.Facing != -1 {
		t.Errorf("facing = %v, expected -1", g.player.Facing)
	}
}
