package folio

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true, "click": true, "drag": true, "hover": true,
	"wheel": true, "resize": true, "wait": true,
}

// TestRunner sequences injected input, resizes and screenshots across
// frames for automated visual checks. Attach to a Page via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Page via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the page. The runner steps once per
// Update, before input is processed.
func (p *Page) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Page.Update.
func (r *TestRunner) step(p *Page) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if p.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		p.Screenshot(st.Label)
	case "click":
		p.input.InjectClick(st.X, st.Y)
	case "hover":
		p.input.InjectHover(st.X, st.Y)
	case "drag":
		p.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wheel":
		p.input.InjectWheel(st.DY)
	case "resize":
		// The window follows on the next frame; the page re-lays out now so
		// the very next Draw already sees the new bounds.
		ebiten.SetWindowSize(st.Width, st.Height)
		p.Layout(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.input.Pending() == 0 {
		r.done = true
	}
}
