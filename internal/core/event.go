package core

// EventType identifies something notable that happened during a tick.
type EventType int

const (
	EventFoodEaten EventType = iota
	EventPowerUpSpawned
	EventPowerUpExpired
	EventPowerUpConsumed
	EventNewHighScore
	EventGameOver
)

// String returns a short name suitable for log keys.
func (e EventType) String() string {
	switch e {
	case EventFoodEaten:
		return "food_eaten"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventPowerUpConsumed:
		return "powerup_consumed"
	case EventNewHighScore:
		return "new_high_score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by games so the platform can log or react without the
// game depending on any logging library.
type Event struct {
	Type   EventType
	Tick   uint64
	Score  int
	Detail string // Free-form context, e.g. power-up key
}
