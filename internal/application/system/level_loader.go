package system

import (
	"fmt"

	"github.com/jwhan/coinrush/internal/domain/entity"
	"github.com/jwhan/coinrush/internal/infrastructure/config"
)

// LoadLevel converts a LevelConfig into a Level entity. Bounce platforms
// without an explicit strength get the configured default; an unknown
// platform kind is a level-authoring error.
func LoadLevel(phys *config.PhysicsConfig, cfg *config.LevelConfig) (*entity.Level, error) {
	platforms := make([]entity.Platform, 0, len(cfg.Platforms))
	for i, pc := range cfg.Platforms {
		p := entity.Platform{
			Rect: entity.Rect{X: pc.X, Y: pc.Y, Width: pc.W, Height: pc.H},
		}
		switch pc.Kind {
		case "solid", "":
			p.Kind = entity.PlatformSolid
		case "bounce":
			p.Kind = entity.PlatformBounce
			p.Strength = pc.Strength
			if p.Strength == 0 {
				p.Strength = phys.Bounce.DefaultStrength
			}
		default:
			return nil, fmt.Errorf("level %s: platform %d has unknown kind %q", cfg.ID, i, pc.Kind)
		}
		platforms = append(platforms, p)
	}

	coins := make([]entity.Coin, 0, len(cfg.Coins))
	for _, cc := range cfg.Coins {
		coins = append(coins, entity.Coin{
			Rect:        entity.Rect{X: cc.X, Y: cc.Y, Width: phys.Coin.Size, Height: phys.Coin.Size},
			Active:      true,
			PhaseOffset: cc.Phase,
		})
	}

	return &entity.Level{
		Name:      cfg.ID,
		Width:     cfg.Size.Width,
		Height:    cfg.Size.Height,
		SpawnX:    cfg.PlayerSpawn.X,
		SpawnY:    cfg.PlayerSpawn.Y,
		TimeLimit: cfg.TimeLimit,
		Platforms: platforms,
		Coins:     coins,
		Goal:      entity.Rect{X: cfg.Goal.X, Y: cfg.Goal.Y, Width: cfg.Goal.W, Height: cfg.Goal.H},
	}, nil
}
