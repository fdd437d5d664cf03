package zoom

import "math"

const minSmoothTime = 0.0001

// SmoothDamp moves current towards target with a critically damped spring
// whose time constant is smoothTime seconds. velocity carries state between
// calls and must persist for as long as the same value is being damped. The
// result never overshoots target. A non-positive dt leaves current unchanged.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (target-current > 0) == (output > target) {
		output = target
		*velocity = 0
	}
	return output
}
