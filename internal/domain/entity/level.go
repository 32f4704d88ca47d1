package entity

// PlatformKind distinguishes platform collision behavior.
type PlatformKind int

const (
	PlatformSolid PlatformKind = iota
	PlatformBounce
)

// String returns the string representation of the platform kind
func (k PlatformKind) String() string {
	switch k {
	case PlatformSolid:
		return "solid"
	case PlatformBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// Platform is a static collidable rectangle. Bounce platforms launch the
// player upward at Strength pixels/second when landed on.
type Platform struct {
	Rect
	Kind     PlatformKind
	Strength float64
}

// Coin is a collectible. Active flips to false exactly once per session,
// on first overlap with the player. PhaseOffset only seeds the render
// animation and has no effect on physics.
type Coin struct {
	Rect
	Active      bool
	PhaseOffset float64
}

// Level is an immutable description of a playable stage. It is built once
// by the level loader and shared by every session; sessions copy the coin
// slice via NewCoins instead of mutating the level.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	SpawnX    float64
	SpawnY    float64
	TimeLimit float64
	Platforms []Platform
	Coins     []Coin
	Goal      Rect
}

// NewCoins returns a fresh, fully active copy of the level's coins with
// phase offsets preserved.
func (l *Level) NewCoins() []Coin {
	coins := make([]Coin, len(l.Coins))
	copy(coins, l.Coins)
	for i := range coins {
		coins[i].Active = true
	}
	return coins
}

// CoinTotal returns the number of collectible coins in the level.
func (l *Level) CoinTotal() int {
	return len(l.Coins)
}
