package core

// RuntimeConfig is passed to games at Reset.
// The simulation runs in world units from its own config; ScreenW/ScreenH only
// size the terminal render target.
type RuntimeConfig struct {
	ScreenW  int   // Render target width in characters
	ScreenH  int   // Render target height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of a game, used by frontends
// for the HUD and overlays.
type GameState struct {
	Score     int
	HighScore int
	Lives     int
	GameOver  bool
	Paused    bool
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventDoubleJump
	EventLand
	EventStomp
	EventHit
	EventEnemyPassed
	EventCoin
	EventGameOver
	EventNewHighScore
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventDoubleJump:
		return "double_jump"
	case EventLand:
		return "land"
	case EventStomp:
		return "stomp"
	case EventHit:
		return "hit"
	case EventEnemyPassed:
		return "enemy_passed"
	case EventCoin:
		return "coin"
	case EventGameOver:
		return "game_over"
	case EventNewHighScore:
		return "new_high_score"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Value carries points awarded or the final score.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind the result contains.
func (r StepResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
