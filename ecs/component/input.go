package component

// ZoomInput stores the per-frame state of the zoom keybind and scroll wheel.
type ZoomInput struct {
	// KeyDown is true only on the frame the keybind went down.
	KeyDown bool
	// KeyHeld is true every frame the keybind is held.
	KeyHeld bool
	// Scroll is the signed scroll axis reading for this frame.
	Scroll float64
}

var ZoomInputComponent = NewComponent[ZoomInput]()
