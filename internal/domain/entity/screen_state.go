package entity

// ScreenState is one entry of the screen or section stack: the screen path the
// page was on and the opaque serialized state it asked the host to keep.
type ScreenState struct {
	ScreenPath string `json:"screenPath"`
	State      string `json:"state"`
}
