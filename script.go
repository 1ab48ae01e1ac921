package asteroids

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Intent string `json:"intent,omitempty"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`

	intent Intent
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays press, release and snapshot actions against a Loop, one
// step per frame. Supported actions:
//
//	press     hold an intent
//	release   let go of an intent
//	tap       press now, release on the next frame
//	wait      do nothing for the given number of frames
//	snapshot  ask the host to capture the frame under a label
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	pending   []Intent
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "press", "release", "tap":
			in, err := ParseIntent(st.Intent)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.intent = in
		case "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// Done reports whether every step has been executed and released.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame, feeding input into l. It must be
// called before l.Frame. A non-empty label asks the caller to capture the
// frame it is about to draw.
func (s *Script) Step(l *Loop) (label string) {
	for _, in := range s.pending {
		l.KeyUp(in)
	}
	s.pending = s.pending[:0]

	if s.done {
		return ""
	}
	if s.waitCount > 0 {
		s.waitCount--
		return ""
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return ""
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "press":
		l.KeyDown(st.intent)
	case "release":
		l.KeyUp(st.intent)
	case "tap":
		l.KeyDown(st.intent)
		s.pending = append(s.pending, st.intent)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		label = st.Label
		if label == "" {
			label = fmt.Sprintf("step%d", s.cursor-1)
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && len(s.pending) == 0 {
		s.done = true
	}
	return label
}
