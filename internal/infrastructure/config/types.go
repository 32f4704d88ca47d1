package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Bounce  BounceConfig    `json:"bounce"`
	Player  PlayerConfig    `json:"player"`
	Coin    CoinConfig      `json:"coin"`
	Respawn RespawnConfig   `json:"respawn"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	// Gravity doubles as the terminal fall speed: VY is clamped to one
	// second's worth of acceleration.
	Gravity   float64 `json:"gravity"`
	MoveSpeed float64 `json:"moveSpeed"`
	JumpSpeed float64 `json:"jumpSpeed"`
}

// BounceConfig holds the fallback launch speed for bounce platforms that
// omit an explicit strength in the level file.
type BounceConfig struct {
	DefaultStrength float64 `json:"defaultStrength"`
}

type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CoinConfig struct {
	Size float64 `json:"size"`
}

// RespawnConfig tunes the fall-through recovery path: a player whose top
// edge drops Slack pixels below the level bottom is reset to spawn and
// loses TimePenalty seconds.
type RespawnConfig struct {
	Slack       float64 `json:"slack"`
	TimePenalty float64 `json:"timePenalty"`
}
