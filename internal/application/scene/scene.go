// Package scene defines the Scene interface for game screens.
//
// The game loop delegates Update and Draw to the current scene; a scene
// requests a transition by returning the next scene from Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds.
	// Returns the next scene if a transition is needed, nil to stay on
	// the current scene, or an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
