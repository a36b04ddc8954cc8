package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/swiperow/internal/gesture"
)

// defaultSettleFrames bounds the frames run after the last step.
const defaultSettleFrames = 600

// Layout is the simulated row geometry. A panel size of 0 means the row
// has no panel on that side.
type Layout struct {
	Leading  float64 `koanf:"leading"`
	Trailing float64 `koanf:"trailing"`
	Size     float64 `koanf:"size"`
}

// Step is one scripted input: either a gesture sample or an imperative
// control, followed by Frames display frames (default 1).
type Step struct {
	Phase    string  `koanf:"phase"` // began, active, ended, cancelled, failed
	Offset   float64 `koanf:"offset"`
	Velocity float64 `koanf:"velocity"`
	Control  string  `koanf:"control"` // open_leading, open_trailing, close
	Frames   int     `koanf:"frames"`
}

// Script is a gesture replay.
type Script struct {
	Layout Layout `koanf:"layout"`
	Steps  []Step `koanf:"step"`
	Settle int    `koanf:"settle"`
}

var controls = map[string]bool{
	"open_leading":  true,
	"open_trailing": true,
	"close":         true,
}

// loadScript reads a TOML script.
func loadScript(path string) (Script, error) {
	if _, err := os.Stat(path); err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return Script{}, fmt.Errorf("load %s: %w", path, err)
	}
	var sc Script
	if err := k.Unmarshal("", &sc); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	sc.normalize()
	if err := sc.validate(); err != nil {
		return Script{}, err
	}
	return sc, nil
}

// scriptFromFlags builds a script from the command line shorthand: a
// drag through the given comma separated offsets released at velocity,
// then an optional control.
func scriptFromFlags(layout Layout, drag string, velocity float64, control string) (Script, error) {
	sc := Script{Layout: layout}

	if drag = strings.TrimSpace(drag); drag != "" {
		var last float64
		for _, field := range strings.Split(drag, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Script{}, fmt.Errorf("drag offset %q: %w", field, err)
			}
			sc.Steps = append(sc.Steps, Step{Phase: "active", Offset: v})
			last = v
		}
		sc.Steps = append(sc.Steps, Step{Phase: "ended", Offset: last, Velocity: velocity})
	}
	if control != "" {
		sc.Steps = append(sc.Steps, Step{Control: control})
	}

	sc.normalize()
	if err := sc.validate(); err != nil {
		return Script{}, err
	}
	return sc, nil
}

func (sc *Script) normalize() {
	if sc.Settle <= 0 {
		sc.Settle = defaultSettleFrames
	}
	for i := range sc.Steps {
		st := &sc.Steps[i]
		st.Phase = strings.ToLower(strings.TrimSpace(st.Phase))
		st.Control = strings.ToLower(strings.TrimSpace(st.Control))
		if st.Frames <= 0 {
			st.Frames = 1
		}
	}
}

func (sc Script) validate() error {
	var errs []error
	l := sc.Layout
	if l.Size <= 0 {
		errs = append(errs, errors.New("layout.size must be positive"))
	}
	if l.Leading < 0 || l.Trailing < 0 {
		errs = append(errs, errors.New("panel sizes must not be negative"))
	}
	if l.Leading+l.Trailing > l.Size {
		errs = append(errs, fmt.Errorf("panels (%g + %g) do not fit in size %g", l.Leading, l.Trailing, l.Size))
	}
	if len(sc.Steps) == 0 {
		errs = append(errs, errors.New("script has no steps"))
	}
	for i, st := range sc.Steps {
		switch {
		case st.Phase != "" && st.Control != "":
			errs = append(errs, fmt.Errorf("step %d: phase and control are exclusive", i+1))
		case st.Control != "":
			if !controls[st.Control] {
				errs = append(errs, fmt.Errorf("step %d: unknown control %q", i+1, st.Control))
			}
		case st.Phase != "":
			if _, ok := gesture.ParsePhase(st.Phase); !ok {
				errs = append(errs, fmt.Errorf("step %d: unknown phase %q", i+1, st.Phase))
			}
		default:
			errs = append(errs, fmt.Errorf("step %d: needs a phase or a control", i+1))
		}
	}
	return errors.Join(errs...)
}
