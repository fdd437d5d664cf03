// Package zoom holds the FOV zoom state machine.
//
// A Session is bound to one camera at a time. Each frame the host calls Tick
// with that frame's input and the current config snapshot; Tick is a pure
// function of (session, input, config, dt) apart from writing the camera's
// field of view. Binding and baseline updates come from the camera binder and
// the settings watcher in ecs/system.
package zoom
