package clipper

// rng is a deterministic LCG so runs can be replayed and snapshotted.
type rng struct {
	state uint64
}

func newRNG(seed int64) *rng {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &rng{state: s}
}

func (r *rng) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1).
func (r *rng) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi).
func (r *rng) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Sign returns -1 or 1 with equal probability.
func (r *rng) Sign() float64 {
	if r.Float64() < 0.5 {
		return -1
	}
	return 1
}
