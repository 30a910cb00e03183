package chartview

import "testing"

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "move", "x": 10, "y": 20},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6}
		]
	}`)

	s, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(s.steps))
	}
	if s.steps[1].Action != "click" || s.steps[1].X != 100 || s.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if s.steps[2].Action != "wait" || s.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if st := s.steps[3]; st.FromX != 1 || st.FromY != 2 || st.ToX != 3 || st.ToY != 4 || st.Frames != 6 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":       `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "screenshot"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestScriptRun(t *testing.T) {
	c, r := newTestChart(t)
	s, err := LoadScript([]byte(`{
		"steps": [
			{"action": "move", "x": 50, "y": 50},
			{"action": "wait", "frames": 2},
			{"action": "click", "x": 50, "y": 50},
			{"action": "leave"}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScript(s)

	for i := 0; i < 20 && !s.Done(); i++ {
		c.Update()
	}
	if !s.Done() {
		t.Fatal("script did not finish")
	}
	assertEvents(t, "script", r.take(),
		"hover-enter", "press", "click", "release", "hover-exit")
}

func TestScriptWaitsForQueuedInput(t *testing.T) {
	c, r := newTestChart(t)
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 30, "toY": 10, "frames": 4},
		{"action": "release", "x": 0, "y": 0}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c.SetScript(s)

	// The drag occupies four frames; the release step must not start early.
	for i := 0; i < 4; i++ {
		c.Update()
	}
	assertEvents(t, "drag frames", r.take(),
		"hover-enter", "press", "drag-start", "drag", "drag", "drag-end")

	for i := 0; i < 5 && !s.Done(); i++ {
		c.Update()
	}
	if !s.Done() {
		t.Error("script did not finish")
	}
	assertEvents(t, "stray release", r.take())
}
