package component

// PlayerTag marks the entity that owns the zoom input.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// CameraTag marks camera entities spawned by the host, named or not.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
