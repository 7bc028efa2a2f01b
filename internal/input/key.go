// Package input defines the abstract keys the frame driver understands.
// Front ends translate their own key events into these.
package input

type Key uint8

const (
	None Key = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Fire
	FaceUp
	FaceDown
	FaceLeft
	FaceRight
	Pause
	Step
	Quit
)

var keyNames = [...]string{
	None:      "none",
	MoveUp:    "move-up",
	MoveDown:  "move-down",
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	Fire:      "fire",
	FaceUp:    "face-up",
	FaceDown:  "face-down",
	FaceLeft:  "face-left",
	FaceRight: "face-right",
	Pause:     "pause",
	Step:      "step",
	Quit:      "quit",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Held reports whether k is a key that stays active while repeated, as
// opposed to a one-shot command.
func (k Key) Held() bool {
	return k >= MoveUp && k <= Fire
}
