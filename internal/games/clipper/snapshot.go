package clipper

import "math"

// Snapshot is the gameplay-relevant state in integers, for determinism
// checks. Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Tick       int
	Score      int
	Lives      int
	GameOver   bool
	PlayerX    int
	PlayerY    int
	PlayerVX   int
	PlayerVY   int
	OnGround   bool
	State      PlayerState
	Invincible int

	// Each enemy is 4 ints: X, Y, Speed, Dir
	EnemyData []int
	CoinCount int

	ParticleCount int
	SpawnTimer    int
	SpawnInterval int
	RNGState      uint64
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(g.enemies)*4)
	for _, e := range g.enemies {
		enemyData = append(enemyData, fixed(e.X), fixed(e.Y), fixed(e.Speed), int(e.Dir))
	}

	p := g.player
	return Snapshot{
		Tick:          g.tickCount,
		Score:         g.score,
		Lives:         g.lives,
		GameOver:      g.gameOver,
		PlayerX:       fixed(p.X),
		PlayerY:       fixed(p.Y),
		PlayerVX:      fixed(p.VX),
		PlayerVY:      fixed(p.VY),
		OnGround:      p.OnGround,
		State:         p.State,
		Invincible:    p.Invincible,
		EnemyData:     enemyData,
		CoinCount:     len(g.coins),
		ParticleCount: len(g.particles),
		SpawnTimer:    g.spawnTimer,
		SpawnInterval: g.spawnInterval,
		RNGState:      g.rng.state,
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)             //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.GameOver)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVX)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerVY)          //#nosec G115 -- hash computation
	h = h*31 + uint64(boolInt(snap.OnGround)) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Invincible)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CoinCount)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnTimer)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval)     //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
