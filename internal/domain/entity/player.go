package entity

// Player is the single dynamic body in the simulation.
// Position and velocity are in pixels and pixels/second.
type Player struct {
	Rect
	VX, VY   float64
	OnGround bool
}

// NewPlayer creates a player at the given spawn position.
func NewPlayer(x, y, width, height float64) *Player {
	return &Player{
		Rect: Rect{X: x, Y: y, Width: width, Height: height},
	}
}

// ResetTo places the player at the given position with zero velocity.
// Used at session start and on fall-through respawn.
func (p *Player) ResetTo(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.OnGround = false
}
