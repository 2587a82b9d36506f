package snake

import "github.com/vovakirdan/batsnake/internal/core"

// PowerUpKind identifies a power-up definition.
type PowerUpKind int

const (
	PowerUpBatBoost PowerUpKind = iota
	PowerUpJokerTrap
	powerUpKindCount
)

// PowerUpDef describes what a power-up does when consumed.
type PowerUpDef struct {
	Kind         PowerUpKind
	Key          string
	Label        string
	Description  string
	Color        core.Color
	Glyph        rune
	ScoreDelta   int
	GrowDelta    int // Negative values shrink the tail
	SpeedDelta   int // Added to the base tick rate while the effect lasts
	SpeedSeconds int
}

// Def returns the definition for the kind.
func (k PowerUpKind) Def() PowerUpDef {
	switch k {
	case PowerUpBatBoost:
		return PowerUpDef{
			Kind:         k,
			Key:          "batboost",
			Label:        "Bat Boost",
			Description:  "Score surge and a burst of speed.",
			Color:        core.ColorBrightBlue,
			Glyph:        '◆',
			ScoreDelta:   3,
			GrowDelta:    2,
			SpeedDelta:   4,
			SpeedSeconds: 5,
		}
	case PowerUpJokerTrap:
		return PowerUpDef{
			Kind:         k,
			Key:          "jokertrap",
			Label:        "Joker Trap",
			Description:  "Chaotic slowdown that trims the tail.",
			Color:        core.ColorBrightMagenta,
			Glyph:        '✖',
			ScoreDelta:   -2,
			GrowDelta:    -2,
			SpeedDelta:   -4,
			SpeedSeconds: 5,
		}
	default:
		return PowerUpDef{Kind: k, Key: "unknown", Label: "Unknown", Glyph: '?'}
	}
}

func (k PowerUpKind) String() string {
	return k.Def().Key
}

// PowerUpKinds returns every defined kind in a stable order.
func PowerUpKinds() []PowerUpKind {
	kinds := make([]PowerUpKind, 0, powerUpKindCount)
	for k := PowerUpKind(0); k < powerUpKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// PowerUp is an active power-up on the board.
type PowerUp struct {
	pos       Point
	def       PowerUpDef
	remaining int
	lifetime  int
}

func newPowerUp(pos Point, def PowerUpDef, lifetimeTicks int) *PowerUp {
	return &PowerUp{
		pos:       pos,
		def:       def,
		remaining: lifetimeTicks,
		lifetime:  lifetimeTicks,
	}
}

// Tick consumes one tick of lifetime and reports whether the power-up is
// still alive.
func (p *PowerUp) Tick() bool {
	if p.remaining <= 0 {
		return false
	}
	p.remaining--
	return p.remaining > 0
}

// Position returns the power-up cell.
func (p *PowerUp) Position() Point {
	return p.pos
}

// Def returns the power-up definition.
func (p *PowerUp) Def() PowerUpDef {
	return p.def
}

// Remaining returns the ticks left before expiry.
func (p *PowerUp) Remaining() int {
	return p.remaining
}

// Ratio returns the remaining lifetime in [0, 1].
func (p *PowerUp) Ratio() float64 {
	if p.lifetime <= 0 {
		return 0
	}
	return float64(p.remaining) / float64(p.lifetime)
}
