package game

import (
	"github.com/dkotenko/starcatch/internal/core"
)

// movePlayer maps the input frame to paddle velocity and integrates the
// paddle position, clamped to the playfield. A pointer position takes
// precedence over discrete intent: the paddle steers toward it
// proportionally, with a small dead zone to avoid jitter.
func (s *Session) movePlayer(dt float64, in core.InputFrame) {
	p := &s.player

	var vx float64
	switch {
	case in.HasPointer:
		center := p.X + p.W/2
		d := in.PointerX - center
		if d > s.cfg.Player.PointerDeadZone || d < -s.cfg.Player.PointerDeadZone {
			// Proportional steering, saturating at full speed
			vx = core.Clamp(d*8, -p.Speed, p.Speed)
		}
	case in.Intent == core.IntentLeft:
		vx = -p.Speed
	case in.Intent == core.IntentRight:
		vx = p.Speed
	}

	p.VX = vx
	p.X = core.Clamp(p.X+vx*dt, 0, s.field.W-p.W)
}

// advanceEntities integrates all live entities by dt seconds.
func (s *Session) advanceEntities(dt float64) {
	c := s.cfg.Collectibles
	for i := range s.collectibles {
		s.collectibles[i].Advance(dt, c.WobbleAmplitude, c.WobbleRate)
	}
	for i := range s.hazards {
		s.hazards[i].Advance(dt)
	}
}

// pruneOffscreen discards entities that have fully exited the bottom bound,
// with no scoring effect.
func (s *Session) pruneOffscreen() {
	limit := s.field.H + s.cfg.Physics.BottomMargin

	kept := s.collectibles[:0]
	for _, c := range s.collectibles {
		if c.Y-c.Radius <= limit {
			kept = append(kept, c)
		}
	}
	s.collectibles = kept

	keptH := s.hazards[:0]
	for _, h := range s.hazards {
		if h.Y-h.Radius <= limit {
			keptH = append(keptH, h)
		}
	}
	s.hazards = keptH
}

// resolveCollisions tests every falling entity against the paddle.
// Collectibles are processed first, so a simultaneous star-and-meteor hit
// still banks the points before the session ends. The first hazard overlap
// is terminal; no further entities are processed that tick.
func (s *Session) resolveCollisions() {
	paddle := s.player.Bounds()

	kept := s.collectibles[:0]
	for _, c := range s.collectibles {
		if paddle.OverlapsCircle(c.X, c.Y, c.Radius) {
			s.score += s.cfg.Collectibles.Points
			s.notifier.Collect()
			continue
		}
		kept = append(kept, c)
	}
	s.collectibles = kept

	for i := range s.hazards {
		h := &s.hazards[i]
		if paddle.OverlapsCircle(h.X, h.Y, h.Radius) {
			s.endSession()
			return
		}
	}
}
