package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// PowerUpView is the read-only view of an active power-up.
type PowerUpView struct {
	Pos       Point
	Kind      PowerUpKind
	Label     string
	Remaining int
	Ratio     float64
}

// Snapshot captures the complete session state for rendering and
// determinism testing.
type Snapshot struct {
	Tick              uint64
	Body              []Point // Head first
	Heading           Direction
	Food              Point
	PowerUp           *PowerUpView
	Score             int
	HighScore         int
	Message           string
	SpeedDelta        int
	SpeedTicks        int
	TickRate          int
	TicksSincePowerUp int
	GameOver          bool
}

// Head returns the head cell.
func (s Snapshot) Head() Point {
	if len(s.Body) == 0 {
		return Point{}
	}
	return s.Body[0]
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:              s.tick,
		Body:              s.snake.Body(),
		Heading:           s.snake.Heading(),
		Food:              s.food.Position(),
		Score:             s.score,
		HighScore:         s.highScore,
		Message:           s.message,
		SpeedDelta:        s.speedDelta,
		SpeedTicks:        s.speedTicks,
		TickRate:          s.EffectiveTickRate(),
		TicksSincePowerUp: s.ticksSincePowerUp,
		GameOver:          s.gameOver,
	}
	if s.powerUp != nil {
		def := s.powerUp.Def()
		snap.PowerUp = &PowerUpView{
			Pos:       s.powerUp.Position(),
			Kind:      def.Kind,
			Label:     def.Label,
			Remaining: s.powerUp.Remaining(),
			Ratio:     s.powerUp.Ratio(),
		}
	}
	return snap
}

// Snapshot returns the game snapshot, including platform state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// StateType returns the coarse game state.
func (g *Game) StateType() GameStateType {
	switch {
	case g.tooSmall:
		return StatePausedSmall
	case g.session.GameOver():
		return StateGameOver
	case g.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}
