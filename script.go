package elastica

import (
	"encoding/json"
	"fmt"
)

// ScriptStep is a single action in an input script.
type ScriptStep struct {
	Action string  `json:"action"` // "move", "press", "release", "leave", "wait", "preset", "reset"
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"` // for "wait"
	Preset string  `json:"preset,omitempty"` // for "preset"
	Burst  bool    `json:"burst,omitempty"`  // for "reset"
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []ScriptStep `json:"steps"`
}

// Script replays a sequence of pointer and parameter actions against a Sim,
// one step per frame (wait steps spanning several). Useful for demos that
// play themselves and for driving the simulation headlessly in tests.
type Script struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"move": true, "press": true, "release": true, "leave": true,
	"wait": true, "preset": true, "reset": true,
}

// LoadScript parses a JSON input script. Every step's action and preset name
// are validated up front so a playback never hits an unknown step.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range file.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "preset" {
			if _, ok := presetTable[Preset(st.Preset)]; !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown preset %q", i, st.Preset)
			}
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has been executed.
func (sc *Script) Done() bool {
	return sc.done
}

// Rewind restarts the script from its first step.
func (sc *Script) Rewind() {
	sc.cursor = 0
	sc.waitCount = 0
	sc.done = false
}

// Step executes the next script action against s. Call once per frame,
// before s.Tick. Wait steps consume one call per frame.
func (sc *Script) Step(s *Sim) {
	if sc.done {
		return
	}

	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}

	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "move":
		s.OnPointerMove(st.X, st.Y)
	case "press":
		s.OnPointerDown(st.X, st.Y)
	case "release":
		s.OnPointerUp()
	case "leave":
		s.OnPointerLeave()
	case "wait":
		if st.Frames > 1 {
			sc.waitCount = st.Frames - 1
		}
	case "preset":
		s.ApplyPreset(Preset(st.Preset))
	case "reset":
		s.Reset(st.Burst)
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 {
		sc.done = true
	}
}
