package component

// TimeScale is a singleton that scales simulation time. A scale of zero means
// the game is paused.
type TimeScale struct {
	Scale float64
}

func (t *TimeScale) Paused() bool {
	return t != nil && t.Scale == 0
}

var TimeScaleComponent = NewComponent[TimeScale]()
