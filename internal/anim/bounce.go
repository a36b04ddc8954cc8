package anim

// SpringFromBouncinessAndSpeed derives stiffness and damping from the
// designer-facing bounciness/speed pair, keeping the other fields of base.
// Bounciness 0 gives a critically damped feel; higher values bounce more.
// Speed scales how quickly the spring reaches its destination.
func SpringFromBouncinessAndSpeed(base SpringConfig, bounciness, speed float64) SpringConfig {
	b := projectNormal(normalize(bounciness/1.7, 0, 20), 0, 0.8)
	s := normalize(speed/1.7, 0, 20)

	tension := 0.5 + s*199.5
	friction := quadraticOutInterpolation(b, noBounceFriction(tension), 0.01)

	base.Stiffness = tensionToStiffness(tension)
	base.Damping = frictionToDamping(friction)
	return base
}

func normalize(value, start, end float64) float64 {
	return (value - start) / (end - start)
}

func projectNormal(n, start, end float64) float64 {
	return start + n*(end-start)
}

func linearInterpolation(t, start, end float64) float64 {
	return t*end + (1-t)*start
}

func quadraticOutInterpolation(t, start, end float64) float64 {
	return linearInterpolation(2*t-t*t, start, end)
}

// noBounceFriction is the friction that removes all bounce for a given
// tension, as a piecewise cubic fit.
func noBounceFriction(tension float64) float64 {
	switch {
	case tension <= 18:
		return 0.0007*tension*tension*tension - 0.031*tension*tension + 0.64*tension + 1.28
	case tension <= 44:
		return 0.000044*tension*tension*tension - 0.006*tension*tension + 0.36*tension + 2
	default:
		return 0.00000045*tension*tension*tension - 0.000332*tension*tension + 0.1078*tension + 5.84
	}
}

func tensionToStiffness(tension float64) float64 {
	return (tension-30)*3.62 + 194
}

func frictionToDamping(friction float64) float64 {
	return (friction-8)*3 + 25
}
