package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the current input state. Left, Right and Jump track the
// live key state; JumpBuffer is a one-shot intent flag set on the jump
// key-press edge and consumed by the simulation on a grounded jump, or
// cleared when the key is released without one.
type InputState struct {
	Left       bool
	Right      bool
	Jump       bool
	JumpBuffer bool
}

// InputSystem translates keyboard state into an InputState.
// Key mapping: ArrowLeft/A move left, ArrowRight/D move right,
// ArrowUp/W/Space jump.
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
)

// Poll updates in from the current keyboard state. The jump buffer is only
// set on a key-press edge, so a held key (OS key repeat included) never
// re-buffers a jump.
func (s *InputSystem) Poll(in *InputState) {
	in.Left = anyKeyPressed(leftKeys)
	in.Right = anyKeyPressed(rightKeys)
	in.Jump = anyKeyPressed(jumpKeys)

	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.JumpBuffer = true
			break
		}
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
