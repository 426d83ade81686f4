package core

// Intent is the player's horizontal movement intent for one tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputFrame carries the input state for a single simulation tick.
// Either a discrete left/right intent or an absolute pointer position in
// simulation units; the pointer takes precedence when present.
type InputFrame struct {
	Intent     Intent
	PointerX   float64
	HasPointer bool
}

// SetPointer records an absolute pointer x-coordinate for this frame.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Intent = IntentNone
	f.PointerX = 0
	f.HasPointer = false
}
