package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dkotenko/starcatch/internal/config"
	"github.com/dkotenko/starcatch/internal/core"
)

// recordingNotifier counts notifications for assertions.
type recordingNotifier struct {
	starts, collects, hits, ends int
}

func (n *recordingNotifier) SessionStart() { n.starts++ }
func (n *recordingNotifier) Collect()      { n.collects++ }
func (n *recordingNotifier) HazardHit()    { n.hits++ }
func (n *recordingNotifier) SessionEnd()   { n.ends++ }

func TestSessionStartsInMenu(t *testing.T) {
	s := NewSession(config.Default(), core.Size{W: 800, H: 480}, rand.New(rand.NewSource(1)), nil)

	if s.Phase() != PhaseMenu {
		t.Errorf("new session phase = %v, expected menu", s.Phase())
	}

	// Ticks before start are no-ops
	s.Update(1.0/60, core.InputFrame{})
	if s.Snapshot().ElapsedSec != 0 {
		t.Error("simulation must not advance in menu phase")
	}
}

func TestSessionCommandGating(t *testing.T) {
	tests := []struct {
		name     string
		setup    []Command
		cmd      Command
		applied  bool
		endPhase Phase
	}{
		{"start from menu", nil, CmdStart, true, PhaseRunning},
		{"pause from menu rejected", nil, CmdPause, false, PhaseMenu},
		{"resume from menu rejected", nil, CmdResume, false, PhaseMenu},
		{"restart from menu rejected", nil, CmdRestart, false, PhaseMenu},
		{"start while running rejected", []Command{CmdStart}, CmdStart, false, PhaseRunning},
		{"pause while running", []Command{CmdStart}, CmdPause, true, PhasePaused},
		{"resume while paused", []Command{CmdStart, CmdPause}, CmdResume, true, PhaseRunning},
		{"pause while paused rejected", []Command{CmdStart, CmdPause}, CmdPause, false, PhasePaused},
		{"start while paused rejected", []Command{CmdStart, CmdPause}, CmdStart, false, PhasePaused},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(config.Default(), core.Size{W: 800, H: 480}, rand.New(rand.NewSource(1)), nil)
			for _, cmd := range tc.setup {
				s.Dispatch(cmd)
			}

			if got := s.Dispatch(tc.cmd); got != tc.applied {
				t.Errorf("Dispatch(%v) = %v, expected %v", tc.cmd, got, tc.applied)
			}
			if s.Phase() != tc.endPhase {
				t.Errorf("phase = %v, expected %v", s.Phase(), tc.endPhase)
			}
		})
	}
}

func TestSessionPauseFreezesSimulation(t *testing.T) {
	s := newRunningSession(t, 11)
	s.collectibles = append(s.collectibles, Collectible{X: 100, Y: 50, Radius: 15, FallSpeed: 200})

	s.Dispatch(CmdPause)
	before := s.collectibles[0]
	for i := 0; i < 60; i++ {
		s.Update(1.0/60, core.InputFrame{Intent: core.IntentRight})
	}

	if s.collectibles[0] != before {
		t.Error("entity state must not change while paused")
	}
	if s.Snapshot().ElapsedSec != 0 {
		t.Error("running time must not accumulate while paused")
	}

	// Resuming picks up from the same state
	s.Dispatch(CmdResume)
	s.Update(1.0/60, core.InputFrame{})
	if s.collectibles[0].Y <= before.Y {
		t.Error("entities should fall again after resume")
	}
}

func TestSessionTenSecondsWithoutContact(t *testing.T) {
	// A very tall playfield keeps every spawned entity far above the
	// paddle for the whole scenario.
	field := core.Size{W: 800, H: 6000}
	s := NewSession(config.Default(), field, rand.New(rand.NewSource(21)), nil)
	s.Dispatch(CmdStart)

	for i := 0; i < 600; i++ {
		s.Update(1.0/60, core.InputFrame{})
	}

	snap := s.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0 without contact", snap.Score)
	}
	if snap.Phase != "running" {
		t.Errorf("phase = %s, expected running", snap.Phase)
	}
	total := snap.Collectibles + snap.Hazards
	if total < 8 || total > 13 {
		t.Errorf("entity count %d outside the expected spawn cadence (~11 in 10s)", total)
	}
}

func TestSessionRestartResets(t *testing.T) {
	n := &recordingNotifier{}
	field := core.Size{W: 800, H: 480}
	s := NewSession(config.Default(), field, rand.New(rand.NewSource(31)), n)
	s.Dispatch(CmdStart)

	// Score a few collectibles, tighten the interval, then die
	px := s.player.X + s.player.W/2
	for i := 0; i < 3; i++ {
		s.collectibles = append(s.collectibles, Collectible{X: px, Y: s.player.Y + 5, Radius: 15})
		s.Update(0.001, core.InputFrame{})
	}
	if s.Score() != 30 {
		t.Fatalf("score = %d, expected 30", s.Score())
	}
	s.spawner.interval = 0.5 // pretend the ramp has fired a few times
	s.hazards = append(s.hazards, Hazard{X: px, Y: s.player.Y + 5, Radius: 20})
	s.Update(0.001, core.InputFrame{})
	if s.Phase() != PhaseOver {
		t.Fatalf("phase = %v, expected over", s.Phase())
	}
	if s.HighScore() != 30 {
		t.Errorf("high score = %d, expected 30", s.HighScore())
	}

	if !s.Dispatch(CmdRestart) {
		t.Fatal("restart should be accepted in over phase")
	}

	snap := s.Snapshot()
	if snap.Score != 0 {
		t.Errorf("restart should reset score, got %d", snap.Score)
	}
	if snap.Collectibles != 0 || snap.Hazards != 0 {
		t.Error("restart should clear all entities")
	}
	if snap.SpawnIntervalMs != 900 {
		t.Errorf("restart should reset spawn interval to 900ms, got %v", snap.SpawnIntervalMs)
	}
	if snap.HighScore != 30 {
		t.Errorf("high score must survive restart, got %d", snap.HighScore)
	}

	if n.starts != 2 || n.hits != 1 || n.ends != 1 || n.collects != 3 {
		t.Errorf("unexpected notification counts: %+v", *n)
	}
}

func TestSessionHighScoreMonotonic(t *testing.T) {
	s := newRunningSession(t, 41)
	s.SetHighScore(50)

	// Die with a lower score: high score must not move
	px := s.player.X + s.player.W/2
	s.hazards = append(s.hazards, Hazard{X: px, Y: s.player.Y + 5, Radius: 20})
	s.Update(0.001, core.InputFrame{})

	if s.HighScore() != 50 {
		t.Errorf("high score = %d, expected 50 to stand", s.HighScore())
	}
	if s.HighScoreImproved() {
		t.Error("a losing session must not report an improved high score")
	}

	// Seeding with a lower value is ignored
	s.SetHighScore(10)
	if s.HighScore() != 50 {
		t.Errorf("SetHighScore must be monotonic, got %d", s.HighScore())
	}

	// Beat it and die again
	s.Dispatch(CmdRestart)
	for i := 0; i < 6; i++ {
		s.collectibles = append(s.collectibles, Collectible{X: px, Y: s.player.Y + 5, Radius: 15})
		s.Update(0.001, core.InputFrame{})
	}
	s.hazards = append(s.hazards, Hazard{X: px, Y: s.player.Y + 5, Radius: 20})
	s.Update(0.001, core.InputFrame{})

	if s.HighScore() != 60 {
		t.Errorf("high score = %d, expected 60", s.HighScore())
	}
	if !s.HighScoreImproved() {
		t.Error("beating the high score should be reported")
	}
}

func TestSessionResizeKeepsEntitiesInFlight(t *testing.T) {
	s := newRunningSession(t, 51)
	s.collectibles = append(s.collectibles, Collectible{X: 700, Y: 100, Radius: 15, FallSpeed: 200})
	s.player.X = 700

	s.Resize(core.Size{W: 400, H: 480})

	if s.collectibles[0].X != 700 {
		t.Error("entities in flight must not be repositioned on resize")
	}
	if s.player.X != 400-s.player.W {
		t.Errorf("paddle should be clamped into the new playfield, x=%v", s.player.X)
	}
}

func TestSessionRenderPhases(t *testing.T) {
	field := core.Size{W: 800, H: 480}
	s := NewSession(config.Default(), field, rand.New(rand.NewSource(61)), nil)
	dst := core.NewScreen(80, 24)

	s.Render(dst)
	if !contains(dst, "S T A R C A T C H") {
		t.Error("menu phase should render the title banner")
	}

	s.Dispatch(CmdStart)
	s.Dispatch(CmdPause)
	s.Render(dst)
	if !contains(dst, "PAUSED") {
		t.Error("paused phase should render the pause overlay")
	}

	s.Dispatch(CmdResume)
	px := s.player.X + s.player.W/2
	s.hazards = append(s.hazards, Hazard{X: px, Y: s.player.Y + 5, Radius: 20})
	s.Update(0.001, core.InputFrame{})
	s.Render(dst)
	if !contains(dst, "GAME OVER") {
		t.Error("over phase should render the game over overlay")
	}
}

// contains reports whether any screen row contains the given text.
func contains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
