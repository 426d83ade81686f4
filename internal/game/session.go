// Package game implements the starcatch simulation core: a paddle at the
// bottom of the playfield catches falling stars and dodges falling meteors.
// The package contains pure logic with no external dependencies; the
// platform layer drives it one tick per display frame.
package game

import (
	"math/rand"

	"github.com/dkotenko/starcatch/internal/config"
	"github.com/dkotenko/starcatch/internal/core"
)

// Phase is the state machine's current mode.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Command is a discrete external event dispatched to the state machine.
// Commands never overlap a tick; they are synchronous with the driver.
type Command int

const (
	CmdStart Command = iota
	CmdPause
	CmdResume
	CmdRestart
)

// Session owns all mutable state for one play session: phase, paddle,
// entity collections, score and timers. It is an explicit object rather
// than package globals so sessions are isolated and testable.
type Session struct {
	cfg   config.Config
	field core.Size
	phase Phase

	player       Player
	collectibles []Collectible
	hazards      []Hazard
	spawner      *Spawner

	score             int
	highScore         int
	highScoreImproved bool
	elapsed           float64 // Cumulative running time this session, seconds

	notifier Notifier
}

// NewSession creates a session in the menu phase.
// The notifier may be nil, in which case notifications are dropped.
func NewSession(cfg config.Config, field core.Size, rng *rand.Rand, notifier Notifier) *Session {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	s := &Session{
		cfg:          cfg,
		field:        field,
		phase:        PhaseMenu,
		spawner:      NewSpawner(cfg, rng),
		collectibles: make([]Collectible, 0, 16),
		hazards:      make([]Hazard, 0, 16),
		notifier:     notifier,
	}
	s.placePlayer()
	return s
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current session score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen so far, including persisted history.
func (s *Session) HighScore() int {
	return s.highScore
}

// SetHighScore seeds the persisted high score at startup.
// The high score is monotonic: a lower value is ignored.
func (s *Session) SetHighScore(v int) {
	if v > s.highScore {
		s.highScore = v
	}
}

// HighScoreImproved reports whether the most recently completed session
// raised the high score. The platform uses it to decide when to write back.
func (s *Session) HighScoreImproved() bool {
	return s.highScoreImproved
}

// Field returns the current playfield dimensions in simulation units.
func (s *Session) Field() core.Size {
	return s.field
}

// Dispatch applies an external command to the state machine.
// Commands received in an invalid phase are no-ops; the return value
// reports whether the command was applied.
func (s *Session) Dispatch(cmd Command) bool {
	switch cmd {
	case CmdStart:
		if s.phase != PhaseMenu {
			return false
		}
		s.beginSession()
	case CmdRestart:
		if s.phase != PhaseOver {
			return false
		}
		s.beginSession()
	case CmdPause:
		if s.phase != PhaseRunning {
			return false
		}
		s.phase = PhasePaused
	case CmdResume:
		if s.phase != PhasePaused {
			return false
		}
		s.phase = PhaseRunning
	default:
		return false
	}
	return true
}

// beginSession resets per-session state and enters the running phase.
// Start and restart perform the identical reset.
func (s *Session) beginSession() {
	s.score = 0
	s.elapsed = 0
	s.highScoreImproved = false
	s.collectibles = s.collectibles[:0]
	s.hazards = s.hazards[:0]
	s.spawner.Reset()
	s.placePlayer()
	s.phase = PhaseRunning
	s.notifier.SessionStart()
}

// placePlayer centers the paddle at its fixed height above the bottom edge.
func (s *Session) placePlayer() {
	p := s.cfg.Player
	s.player = Player{
		X:     (s.field.W - p.Width) / 2,
		Y:     s.field.H - p.BottomOffset - p.Height,
		W:     p.Width,
		H:     p.Height,
		Speed: p.Speed,
	}
}

// Update advances the simulation by dt seconds. Ticks are only processed
// while running; the driver stops issuing them when paused, but a stray
// tick in any other phase is a no-op regardless.
func (s *Session) Update(dt float64, in core.InputFrame) {
	if s.phase != PhaseRunning {
		return
	}

	// Clamp the integration step so a stalled driver (e.g. a backgrounded
	// terminal) cannot tunnel entities past the paddle or the bottom bound.
	maxDelta := s.cfg.Physics.MaxDeltaMs / 1000
	if dt > maxDelta {
		dt = maxDelta
	}
	if dt <= 0 {
		return
	}
	s.elapsed += dt

	if c, h := s.spawner.Update(dt, s.score, s.field.W); c != nil {
		s.collectibles = append(s.collectibles, *c)
	} else if h != nil {
		s.hazards = append(s.hazards, *h)
	}

	s.movePlayer(dt, in)
	s.advanceEntities(dt)
	s.pruneOffscreen()
	s.resolveCollisions()
}

// Resize revalidates the playfield after a viewport change. Entities in
// flight keep their positions; only the paddle is re-anchored and clamped.
func (s *Session) Resize(field core.Size) {
	s.field = field
	p := s.cfg.Player
	s.player.Y = field.H - p.BottomOffset - p.Height
	s.player.X = core.Clamp(s.player.X, 0, field.W-s.player.W)
}

// endSession is the terminal transition for a hazard collision.
func (s *Session) endSession() {
	s.phase = PhaseOver
	if s.score > s.highScore {
		s.highScore = s.score
		s.highScoreImproved = true
	}
	s.notifier.HazardHit()
	s.notifier.SessionEnd()
}
