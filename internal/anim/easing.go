package anim

import (
	"math"
	"sort"
	"strings"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

func EaseInQuad(t float64) float64  { return t * t }
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseInCubic(t float64) float64 { return t * t * t }

func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

func EaseOutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-in-quad":      EaseInQuad,
	"ease-out-quad":     EaseOutQuad,
	"ease-in-out-quad":  EaseInOutQuad,
	"ease-in-cubic":     EaseInCubic,
	"ease-out-cubic":    EaseOutCubic,
	"ease-in-out-cubic": EaseInOutCubic,
	"ease-out-sine":     EaseOutSine,
}

// EasingByName looks up an easing by its configuration name.
// Names are case-insensitive.
func EasingByName(name string) (Easing, bool) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// EasingNames lists the accepted easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
