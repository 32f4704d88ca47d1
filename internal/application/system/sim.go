package system

import (
	"github.com/jwhan/coinrush/internal/domain/entity"
	"github.com/jwhan/coinrush/internal/infrastructure/config"
)

// StepEvents reports the state-machine transitions produced by one
// simulation step.
type StepEvents struct {
	TimeExpired    bool
	GoalReached    bool
	CoinsCollected int
}

// SimSystem advances the platformer simulation one variable-dt frame at a
// time. It owns no state of its own: player, coins, timer and input are
// passed in and mutated in place, which keeps the step deterministic and
// directly testable.
//
// Sequencing within a step is load-bearing and must not be reordered:
// timer, horizontal intent, gravity, horizontal move+resolve, vertical
// move+floor+resolve, jump consumption, coins, goal, fall respawn.
type SimSystem struct {
	cfg   *config.PhysicsConfig
	level *entity.Level
}

// NewSimSystem creates a simulation over the given level.
func NewSimSystem(cfg *config.PhysicsConfig, level *entity.Level) *SimSystem {
	return &SimSystem{
		cfg:   cfg,
		level: level,
	}
}

// Step advances the simulation by dt seconds.
//
// When the timer expires the rest of the step is skipped; when the goal is
// reached the step returns before the fall-respawn check. Both
// short-circuits mirror the session transitions they trigger.
func (s *SimSystem) Step(p *entity.Player, coins []entity.Coin, timeRemaining *float64, in *InputState, dt float64) StepEvents {
	var ev StepEvents

	*timeRemaining -= dt
	if *timeRemaining <= 0 {
		*timeRemaining = 0
		ev.TimeExpired = true
		return ev
	}

	s.applyIntent(p, in)
	s.applyGravity(p, dt)
	s.moveHorizontal(p, dt)
	s.resolveHorizontal(p)
	// The vertical position before the floor snap is what the fall check
	// looks at, otherwise the clamp would mask a fall-through.
	fellTo := s.moveVertical(p, dt)
	s.resolveVertical(p)
	s.consumeJump(p, in)

	ev.CoinsCollected = s.collectCoins(p, coins)

	if p.Rect.Overlaps(s.level.Goal) {
		ev.GoalReached = true
		return ev
	}

	if fellTo > s.level.Height+s.cfg.Respawn.Slack {
		s.respawn(p, timeRemaining)
	}

	return ev
}

// applyIntent sets horizontal velocity directly from the held keys.
// No acceleration or friction: both or neither key held means zero.
func (s *SimSystem) applyIntent(p *entity.Player, in *InputState) {
	switch {
	case in.Left == in.Right:
		p.VX = 0
	case in.Left:
		p.VX = -s.cfg.Physics.MoveSpeed
	default:
		p.VX = s.cfg.Physics.MoveSpeed
	}
}

// applyGravity accelerates the fall and clamps VY to the one-second
// terminal velocity (equal to the gravity constant).
func (s *SimSystem) applyGravity(p *entity.Player, dt float64) {
	p.VY += s.cfg.Physics.Gravity * dt
	if p.VY > s.cfg.Physics.Gravity {
		p.VY = s.cfg.Physics.Gravity
	}
}

// moveHorizontal integrates X and clamps it into the level bounds.
func (s *SimSystem) moveHorizontal(p *entity.Player, dt float64) {
	p.X += p.VX * dt
	if p.X < 0 {
		p.X = 0
	}
	if max := s.level.Width - p.Width; p.X > max {
		p.X = max
	}
}

// resolveHorizontal snaps the player out of any platform overlapping at the
// post-move horizontal position. The travel direction is the sign of VX
// before the pass, so a snap that zeroes VX does not stop later platforms
// in list order from overriding an earlier one. Levels are authored so
// simultaneous horizontal overlaps stay unambiguous in practice.
func (s *SimSystem) resolveHorizontal(p *entity.Player) {
	vx := p.VX
	if vx == 0 {
		return
	}

	for i := range s.level.Platforms {
		pl := &s.level.Platforms[i]
		if !p.Rect.Overlaps(pl.Rect) {
			continue
		}
		if vx > 0 {
			p.X = pl.X - p.Width
		} else {
			p.X = pl.Right()
		}
		p.VX = 0
	}
}

// moveVertical integrates Y, drops the grounded flag and snaps to the level
// floor. It returns the unclamped post-move Y for the fall-respawn check.
func (s *SimSystem) moveVertical(p *entity.Player, dt float64) float64 {
	p.Y += p.VY * dt
	p.OnGround = false
	fellTo := p.Y

	if p.Bottom() >= s.level.Height {
		p.Y = s.level.Height - p.Height
		p.VY = 0
		p.OnGround = true
	}

	return fellTo
}

// resolveVertical settles platform overlaps at the post-move position,
// branching on the sign of VY before the pass. Falling lands on top (a
// bounce platform immediately relaunches instead of resting); rising bumps
// the head on the underside. VY of exactly zero settles nothing, which
// leaves an already-resolved standing contact alone.
func (s *SimSystem) resolveVertical(p *entity.Player) {
	vy := p.VY
	if vy == 0 {
		return
	}

	for i := range s.level.Platforms {
		pl := &s.level.Platforms[i]
		if !p.Rect.Overlaps(pl.Rect) {
			continue
		}
		if vy > 0 {
			p.Y = pl.Y - p.Height
			p.VY = 0
			p.OnGround = true
			if pl.Kind == entity.PlatformBounce {
				p.VY = -pl.Strength
				p.OnGround = false
			}
		} else {
			p.Y = pl.Bottom()
			p.VY = 0
		}
	}
}

// consumeJump honors a buffered jump once the player is grounded. A held
// jump key keeps the buffer alive across airborne frames; releasing it
// without landing clears the buffer.
func (s *SimSystem) consumeJump(p *entity.Player, in *InputState) {
	if in.JumpBuffer && p.OnGround {
		p.VY = -s.cfg.Physics.JumpSpeed
		p.OnGround = false
		in.JumpBuffer = false
	} else if !in.Jump {
		in.JumpBuffer = false
	}
}

// collectCoins deactivates every active coin overlapping the player and
// returns how many were picked up this step.
func (s *SimSystem) collectCoins(p *entity.Player, coins []entity.Coin) int {
	n := 0
	for i := range coins {
		if coins[i].Active && p.Rect.Overlaps(coins[i].Rect) {
			coins[i].Active = false
			n++
		}
	}
	return n
}

// respawn resets a fallen player to spawn and docks the time penalty.
// This is a punitive recovery, not a terminal state; the clamp at zero
// lets the next step's timer check handle an emptied clock.
func (s *SimSystem) respawn(p *entity.Player, timeRemaining *float64) {
	p.ResetTo(s.level.SpawnX, s.level.SpawnY)
	*timeRemaining -= s.cfg.Respawn.TimePenalty
	if *timeRemaining < 0 {
		*timeRemaining = 0
	}
}
