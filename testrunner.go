package dock

import (
	"encoding/json"
	"fmt"
)

// scriptOp is the kind of a test script step.
type scriptOp uint8

const (
	opMove       scriptOp = iota // pointer to (x, y)
	opPress                      // primary press at (x, y)
	opRelease                    // primary release at (x, y)
	opClick                      // press and release at (x, y)
	opMenu                       // secondary click at (x, y)
	opDrag                       // press at from, move to to over frames ticks, release
	opLeave                      // pointer leaves the surface
	opPoll                       // global cursor sample at screen (x, y)
	opWait                       // idle for frames ticks
	opScreenshot                 // capture the surface as label
	opHide                       // ForceHide
	opShowAt                     // ShowAt screen x
)

var scriptOps = map[string]scriptOp{
	"move":       opMove,
	"press":      opPress,
	"release":    opRelease,
	"click":      opClick,
	"menu":       opMenu,
	"drag":       opDrag,
	"leave":      opLeave,
	"poll":       opPoll,
	"wait":       opWait,
	"screenshot": opScreenshot,
	"hide":       opHide,
	"show-at":    opShowAt,
}

// scriptStep is one entry of a test script. Coordinates are surface-local
// except for poll and show-at, which take screen coordinates. from and to
// are [x, y] pairs.
type scriptStep struct {
	Action string     `json:"action"`
	Label  string     `json:"label,omitempty"`
	X      float64    `json:"x,omitempty"`
	Y      float64    `json:"y,omitempty"`
	From   [2]float64 `json:"from,omitempty"`
	To     [2]float64 `json:"to,omitempty"`
	Frames int        `json:"frames,omitempty"`

	op scriptOp
}

// TestRunner plays a test script against a Dock one tick at a time, queueing
// synthetic input and screenshots. Attach it with SetTestRunner.
type TestRunner struct {
	steps    []scriptStep
	next     int
	hold     int
	finished bool
}

// LoadTestScript parses a JSON test script of the form
// {"steps": [{"action": "move", "x": 40, "y": 36}, ...]}.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		op, ok := scriptOps[st.Action]
		if !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		st.op = op
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the dock. It advances at the start of
// every Tick, before queued input is processed.
func (d *Dock) SetTestRunner(runner *TestRunner) {
	d.testRunner = runner
}

// Done reports whether every step has run and its input has been consumed.
func (r *TestRunner) Done() bool {
	return r.finished
}

// step runs at most one script step. It stalls while injected input is
// pending or a wait is counting down.
func (r *TestRunner) step(d *Dock) {
	switch {
	case r.finished, len(d.injectQueue) > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next >= len(r.steps):
		r.finished = true
		return
	}

	st := r.steps[r.next]
	r.next++
	r.run(d, st)
	r.finished = r.next >= len(r.steps) && r.hold == 0 && len(d.injectQueue) == 0
}

func (r *TestRunner) run(d *Dock, st scriptStep) {
	switch st.op {
	case opMove:
		d.InjectMove(st.X, st.Y)
	case opPress:
		d.InjectPress(st.X, st.Y)
	case opRelease:
		d.InjectRelease(st.X, st.Y)
	case opClick:
		d.InjectClick(st.X, st.Y)
	case opMenu:
		d.InjectContextClick(st.X, st.Y)
	case opDrag:
		d.InjectDrag(st.From[0], st.From[1], st.To[0], st.To[1], max(st.Frames, 2))
	case opLeave:
		d.InjectLeave()
	case opPoll:
		d.InjectPoll(st.X, st.Y)
	case opWait:
		// The current tick counts as the first frame.
		r.hold = max(st.Frames-1, 0)
	case opScreenshot:
		d.Screenshot(st.Label)
	case opHide:
		d.ForceHide()
	case opShowAt:
		d.ShowAt(st.X)
	}
}
