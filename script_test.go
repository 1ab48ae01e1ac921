package asteroids

import (
	"os"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "attract"},
			{"action": "tap", "intent": "fire"},
			{"action": "wait", "frames": 3},
			{"action": "press", "intent": "thrust"},
			{"action": "release", "intent": "thrust"}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(s.steps))
	}
	if s.steps[1].Action != "tap" || s.steps[1].intent != IntentFire {
		t.Error("step 1 mismatch")
	}
	if s.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if s.steps[3].intent != IntentThrust {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "jump"}]}`},
		{"unknown intent", `{"steps": [{"action": "press", "intent": "warp"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptStep_Tap(t *testing.T) {
	l, _ := newTestLoop(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "tap", "intent": "fire"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	s.Step(l)
	if !l.World.Keys.Held(IntentFire) {
		t.Fatal("tap should press on the first frame")
	}
	if s.Done() {
		t.Error("script should not be done until the tap is released")
	}

	s.Step(l)
	if l.World.Keys.Held(IntentFire) {
		t.Error("tap should release on the next frame")
	}
	if !s.Done() {
		t.Error("script should be done")
	}
}

func TestScriptStep_WaitAndSnapshot(t *testing.T) {
	l, _ := newTestLoop(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "snapshot", "label": "after-wait"},
		{"action": "snapshot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	var labels []string
	for frame := 0; frame < 10 && !s.Done(); frame++ {
		if label := s.Step(l); label != "" {
			labels = append(labels, label)
			if frame != 3 && label == "after-wait" {
				t.Errorf("snapshot fired on frame %d, want 3", frame)
			}
		}
	}
	if len(labels) != 2 || labels[0] != "after-wait" || labels[1] != "step2" {
		t.Errorf("labels = %v", labels)
	}
}

func TestScriptStep_PressRelease(t *testing.T) {
	l, _ := newTestLoop(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "intent": "left"},
		{"action": "release", "intent": "left"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.Step(l)
	if !l.World.Keys.Held(IntentRotateLeft) {
		t.Error("press should hold the intent")
	}
	s.Step(l)
	if l.World.Keys.Held(IntentRotateLeft) {
		t.Error("release should let go")
	}
}

func TestDemoScriptRuns(t *testing.T) {
	data, err := os.ReadFile("testdata/demo.json")
	if err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("demo script: %v", err)
	}

	l, clock := newTestLoop(t)
	var labels []string
	for frame := 0; frame < 500 && !s.Done(); frame++ {
		clock.Advance(30 * time.Millisecond)
		if label := s.Step(l); label != "" {
			labels = append(labels, label)
		}
		l.Frame(Discard)
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}
	want := []string{"attract", "spawned", "firing", "grid"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}
	if l.World.State() == StateBoot || l.World.State() == StateWaiting {
		t.Errorf("start tap ignored, state %v", l.World.State())
	}
}
