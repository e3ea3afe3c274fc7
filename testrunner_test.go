package folio

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wheel", "dy": 600},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].DY != 600 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `not json`,
		"empty":          `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "teleport"}]}`,
	}
	for name, data := range tests {
		if _, err := LoadTestScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunnerSteps(t *testing.T) {
	p := newTestPage(t, DefaultConfig())
	data := []byte(`{"steps": [
		{"action": "click", "x": 100, "y": 100},
		{"action": "wheel", "dy": 600},
		{"action": "wait", "frames": 2}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	p.SetTestRunner(runner)

	runner.step(p)
	if p.input.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", p.input.Pending())
	}
	// Held while injections drain.
	runner.step(p)
	if p.input.Pending() != 2 {
		t.Fatal("runner advanced with pending input")
	}
	p.input.Process()
	p.input.Process()

	runner.step(p)
	p.input.Process()
	if p.smooth.Target() != 600 {
		t.Errorf("smooth target = %v, want 600", p.smooth.Target())
	}

	runner.step(p) // wait, frame 1
	if runner.Done() {
		t.Error("runner done during wait")
	}
	runner.step(p) // wait, frame 2
	runner.step(p)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerScreenshotQueues(t *testing.T) {
	p := newTestPage(t, DefaultConfig())
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "hero"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	p.SetTestRunner(runner)
	runner.step(p)
	if len(p.screenshotQueue) != 1 || p.screenshotQueue[0] != "hero" {
		t.Errorf("queue = %v", p.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("single step runner should be done")
	}
}
