package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
)

// SessionConfig holds the values a session is started with.
type SessionConfig struct {
	Grid            Grid
	StartLength     int
	BaseFPS         int    // Ticks per second without effects
	PowerUpDelay    int    // Seconds between power-up spawns
	PowerUpLifetime int    // Seconds a power-up stays on the board
	PowerUps        bool   // Enables the power-up mechanic
	HighScoreKey    string // Key used with the high score store
}

// Session is the gameplay state machine: one snake, one food and at most
// one power-up, advanced one Tick at a time.
type Session struct {
	cfg     SessionConfig
	spawner *Spawner
	scores  core.HighScoreStore

	tick      uint64
	snake     *Snake
	food      Food
	powerUp   *PowerUp
	score     int
	highScore int
	gameOver  bool

	ticksSincePowerUp int

	speedDelta int
	speedTicks int

	message      string
	messageTicks int

	events []core.Event
}

// NewSession creates a session and resets it. A nil store keeps the high
// score in memory only.
func NewSession(cfg SessionConfig, rng *rand.Rand, scores core.HighScoreStore) *Session {
	cfg.BaseFPS = max(config.MinTickRate, cfg.BaseFPS)
	cfg.PowerUpDelay = max(1, cfg.PowerUpDelay)
	cfg.PowerUpLifetime = max(0, cfg.PowerUpLifetime)
	if scores == nil {
		scores = core.NewMemoryHighScores()
	}

	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(cfg.Grid, rng),
		scores:  scores,
	}
	s.Reset()
	return s
}

// Reset starts a fresh run with the same configuration.
func (s *Session) Reset() {
	s.tick = 0
	s.snake = NewSnake(s.cfg.Grid, s.cfg.Grid.Center(), s.cfg.StartLength)
	s.powerUp = nil
	s.score = 0
	s.gameOver = false
	s.ticksSincePowerUp = 0
	s.speedDelta = 0
	s.speedTicks = 0
	s.message = ""
	s.messageTicks = 0
	s.highScore = max(0, s.scores.Read(s.cfg.HighScoreKey))
	s.food.Respawn(s.spawner, s.snake.Cells())
}

// SetDirection forwards a steering request to the snake.
func (s *Session) SetDirection(d Direction) {
	if s.gameOver {
		return
	}
	s.snake.SetDirection(d)
}

// Tick advances the session by one move and returns what happened.
// It is a no-op once the game is over.
func (s *Session) Tick() []core.Event {
	if s.gameOver {
		return nil
	}
	s.tick++
	s.events = nil

	s.snake.Move()
	head := s.snake.Head()

	if head == s.food.Position() {
		s.snake.Grow(1)
		s.score++
		s.emit(core.EventFoodEaten, "")
		s.updateHighScore()

		forbidden := s.snake.Cells()
		if s.powerUp != nil {
			forbidden.Put(s.powerUp.Position())
		}
		s.food.Respawn(s.spawner, forbidden)
	}

	if s.powerUp != nil {
		if !s.powerUp.Tick() {
			s.emit(core.EventPowerUpExpired, s.powerUp.Def().Key)
			s.powerUp = nil
		} else if head == s.powerUp.Position() {
			s.consumePowerUp()
		}
	}

	if s.cfg.PowerUps {
		s.ticksSincePowerUp++
		if s.powerUp == nil && s.ticksSincePowerUp >= s.cfg.PowerUpDelay*s.cfg.BaseFPS {
			s.spawnPowerUp()
		}
	}

	if s.snake.CollidesSelf() {
		s.gameOver = true
		s.emit(core.EventGameOver, "")
	}

	if s.speedTicks > 0 {
		s.speedTicks--
		if s.speedTicks == 0 {
			s.speedDelta = 0
		}
	}
	if s.messageTicks > 0 {
		s.messageTicks--
		if s.messageTicks == 0 {
			s.message = ""
		}
	}

	return s.events
}

func (s *Session) spawnPowerUp() {
	kind := PowerUpKind(s.spawner.rng.Intn(int(powerUpKindCount)))

	forbidden := s.snake.Cells()
	forbidden.Put(s.food.Position())
	pos, ok := s.spawner.ChooseFreeCell(forbidden)
	if !ok {
		return
	}

	s.powerUp = newPowerUp(pos, kind.Def(), s.cfg.PowerUpLifetime*s.cfg.BaseFPS)
	s.ticksSincePowerUp = 0
	s.emit(core.EventPowerUpSpawned, kind.Def().Key)
}

func (s *Session) consumePowerUp() {
	def := s.powerUp.Def()

	if def.ScoreDelta != 0 {
		s.score = max(0, s.score+def.ScoreDelta)
	}
	switch {
	case def.GrowDelta > 0:
		s.snake.Grow(def.GrowDelta)
	case def.GrowDelta < 0:
		s.snake.Shrink(-def.GrowDelta)
	}
	if def.SpeedDelta != 0 {
		s.speedDelta = def.SpeedDelta
		s.speedTicks = max(s.cfg.BaseFPS, def.SpeedSeconds*s.cfg.BaseFPS)
	}
	s.message = fmt.Sprintf("%s! %s", def.Label, def.Description)
	s.messageTicks = 2 * s.cfg.BaseFPS

	s.emit(core.EventPowerUpConsumed, def.Key)
	s.powerUp = nil
	s.ticksSincePowerUp = 0
	s.updateHighScore()
}

// updateHighScore writes through only when the record is beaten.
func (s *Session) updateHighScore() {
	// Other sessions may share the store and have raised the record since Reset
	s.highScore = max(s.highScore, s.scores.Read(s.cfg.HighScoreKey))
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	s.scores.Write(s.cfg.HighScoreKey, s.highScore)
	s.emit(core.EventNewHighScore, "")
}

func (s *Session) emit(t core.EventType, detail string) {
	s.events = append(s.events, core.Event{
		Type:   t,
		Tick:   s.tick,
		Score:  s.score,
		Detail: detail,
	})
}

// EffectiveTickRate returns the current ticks per second, including any
// speed effect. Never below config.MinTickRate.
func (s *Session) EffectiveTickRate() int {
	if s.speedTicks > 0 {
		return max(config.MinTickRate, s.cfg.BaseFPS+s.speedDelta)
	}
	return max(config.MinTickRate, s.cfg.BaseFPS)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score known to the session.
func (s *Session) HighScore() int { return s.highScore }

// GameOver reports whether the snake has collided with itself.
func (s *Session) GameOver() bool { return s.gameOver }

// Len returns the snake length.
func (s *Session) Len() int { return s.snake.Len() }

// Ticks returns the number of moves made since the last reset.
func (s *Session) Ticks() uint64 { return s.tick }

// Config returns the session configuration.
func (s *Session) Config() SessionConfig { return s.cfg }
