package state

// Status represents the current state of a game session
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusWon
	StatusLost
)

// String returns the string representation of the session status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusRunning:
		return "Running"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status ends the session. Terminal sessions
// only leave via a fresh Start.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}
