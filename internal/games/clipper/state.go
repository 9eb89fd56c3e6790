package clipper

// PlayerState is the player's movement state, recomputed every frame.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRunning
	StateRising
	StateFalling
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateRising:
		return "rising"
	case StateFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Airborne reports whether the state is off the ground.
func (s PlayerState) Airborne() bool {
	return s == StateRising || s == StateFalling
}

// NextPlayerState derives the state from contact and motion.
// Ground contact takes precedence: a grounded player is Idle or Running
// whatever its vertical velocity. In the air, vy < 0 is Rising and
// everything else (including the apex, vy == 0) is Falling.
func NextPlayerState(onGround bool, vy float64, moving bool) PlayerState {
	switch {
	case onGround && moving:
		return StateRunning
	case onGround:
		return StateIdle
	case vy < 0:
		return StateRising
	default:
		return StateFalling
	}
}
