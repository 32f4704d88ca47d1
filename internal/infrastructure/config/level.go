package config

// LevelConfig is the root config for level JSON files
type LevelConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Size        SizeConfig        `json:"size"`
	TimeLimit   float64           `json:"timeLimit"`
	PlayerSpawn PositionConfig    `json:"playerSpawn"`
	Platforms   []PlatformConfig  `json:"platforms"`
	Coins       []CoinSpawnConfig `json:"coins"`
	Goal        RectConfig        `json:"goal"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PositionConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PlatformConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
	// Kind is "solid" or "bounce". Strength only applies to bounce
	// platforms; zero means use the configured default.
	Kind     string  `json:"kind"`
	Strength float64 `json:"strength,omitempty"`
}

type CoinSpawnConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Phase float64 `json:"phase"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
