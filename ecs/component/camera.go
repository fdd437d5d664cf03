package component

// Camera is the first-person camera capability. FieldOfView is the vertical
// field of view in degrees and is written directly by the zoom systems.
type Camera struct {
	FieldOfView float64
}

var CameraComponent = NewComponent[Camera]()
