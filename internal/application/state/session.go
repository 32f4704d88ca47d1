package state

import (
	"github.com/jwhan/coinrush/internal/application/system"
	"github.com/jwhan/coinrush/internal/domain/entity"
	"github.com/jwhan/coinrush/internal/infrastructure/config"
)

// Session owns all mutable game state for one play-through: the player,
// the coin set, the countdown and the collected count. It is the single
// source of truth updated only between frames; the simulation mutates it
// exclusively through Advance.
//
// Transitions: Idle -> Running on Start; Running -> Lost on timer expiry;
// Running -> Won on reaching the goal. Won and Lost only leave via Start,
// which performs the same full reset as the first one.
type Session struct {
	status Status
	level  *entity.Level
	sim    *system.SimSystem

	player        *entity.Player
	coins         []entity.Coin
	timeRemaining float64
	collected     int
}

// NewSession creates an idle session over the given level.
func NewSession(cfg *config.PhysicsConfig, level *entity.Level) *Session {
	return &Session{
		status:        StatusIdle,
		level:         level,
		sim:           system.NewSimSystem(cfg, level),
		player:        entity.NewPlayer(level.SpawnX, level.SpawnY, cfg.Player.Width, cfg.Player.Height),
		coins:         level.NewCoins(),
		timeRemaining: level.TimeLimit,
	}
}

// Start resets player, coins, timer and score to their initial values and
// puts the session in the running state. Starting over from a won or lost
// session is identical to the first start.
func (s *Session) Start() {
	s.player.ResetTo(s.level.SpawnX, s.level.SpawnY)
	s.coins = s.level.NewCoins()
	s.timeRemaining = s.level.TimeLimit
	s.collected = 0
	s.status = StatusRunning
}

// Advance runs one simulation step and applies the resulting transitions.
// Outside the running state it is a no-op, so no step can mutate state
// after a terminal transition even if the frame driver still fires.
func (s *Session) Advance(in *system.InputState, dt float64) {
	if s.status != StatusRunning {
		return
	}

	ev := s.sim.Step(s.player, s.coins, &s.timeRemaining, in, dt)
	s.collected += ev.CoinsCollected

	switch {
	case ev.TimeExpired:
		s.status = StatusLost
	case ev.GoalReached:
		s.status = StatusWon
	}
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// TimeRemaining returns the countdown value, clamped at zero.
func (s *Session) TimeRemaining() float64 {
	return s.timeRemaining
}

// Collected returns the number of coins collected this session.
func (s *Session) Collected() int {
	return s.collected
}

// Player returns the session's player for rendering.
func (s *Session) Player() *entity.Player {
	return s.player
}

// Coins returns the session's coin set for rendering.
func (s *Session) Coins() []entity.Coin {
	return s.coins
}

// Level returns the immutable level the session runs on.
func (s *Session) Level() *entity.Level {
	return s.level
}
