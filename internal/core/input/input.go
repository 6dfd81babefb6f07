// Package input defines the per-frame snapshot of held player actions.
// Backends translate their own key state into a Snapshot once per frame;
// the movement controller only ever sees the logical actions.
package input

// Snapshot is the set of logical actions held during one frame.
type Snapshot struct {
	Forward     bool
	Back        bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Sprint      bool
	Quit        bool
}

// Moving reports whether any translation action is held.
func (s Snapshot) Moving() bool {
	return s.Forward || s.Back || s.StrafeLeft || s.StrafeRight
}
