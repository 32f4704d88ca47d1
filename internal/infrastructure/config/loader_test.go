package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 960, cfg.Display.ScreenWidth)
	assert.Equal(t, 540, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 1800.0, cfg.Physics.Gravity)
	assert.Equal(t, 240.0, cfg.Physics.MoveSpeed)
	assert.Equal(t, 700.0, cfg.Physics.JumpSpeed)
	assert.Equal(t, 900.0, cfg.Bounce.DefaultStrength)
	assert.Equal(t, 48.0, cfg.Player.Width)
	assert.Equal(t, 16.0, cfg.Coin.Size)
	assert.Equal(t, 200.0, cfg.Respawn.Slack)
	assert.Equal(t, 5.0, cfg.Respawn.TimePenalty)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel("meadow")
	require.NoError(t, err)

	assert.Equal(t, "meadow", cfg.ID)
	assert.Equal(t, 960.0, cfg.Size.Width)
	assert.Equal(t, 540.0, cfg.Size.Height)
	assert.Equal(t, 75.0, cfg.TimeLimit)
	assert.Equal(t, 40.0, cfg.PlayerSpawn.X)
	assert.Equal(t, 420.0, cfg.PlayerSpawn.Y)
	assert.Len(t, cfg.Platforms, 7)
	assert.Len(t, cfg.Coins, 8)

	// The reference resting platform
	assert.Equal(t, 80.0, cfg.Platforms[0].X)
	assert.Equal(t, 420.0, cfg.Platforms[0].Y)
	assert.Equal(t, "solid", cfg.Platforms[0].Kind)

	// Bounce pad relying on the default strength
	assert.Equal(t, "bounce", cfg.Platforms[3].Kind)
	assert.Equal(t, 0.0, cfg.Platforms[3].Strength)

	assert.Equal(t, 840.0, cfg.Goal.X)
	assert.Equal(t, 20.0, cfg.Goal.Y)
	assert.Equal(t, 80.0, cfg.Goal.W)
	assert.Equal(t, 100.0, cfg.Goal.H)
}

func TestLoader_LoadLevel_Missing(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadLevel("does-not-exist")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
}
