package replay

// FrameInput records input state for a single frame. The jump buffer is
// captured as it stood before that frame's simulation step, so playback
// reproduces buffered jumps exactly.
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump held
	JB bool `json:"jb,omitempty"` // Jump buffered
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
