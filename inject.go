package dock

import "time"

type injectKind uint8

const (
	injectMove injectKind = iota
	injectPress
	injectRelease
	injectLeave
	injectPoll
)

// syntheticPointerEvent is a single injected input event. Coordinates are
// surface-local except for injectPoll, which carries screen coordinates.
type syntheticPointerEvent struct {
	kind   injectKind
	x, y   float64
	button Button
}

// InjectMove queues a pointer move to the surface-local position (x, y). The
// event is consumed by the next Tick.
func (d *Dock) InjectMove(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectMove, x: x, y: y})
}

// InjectPress queues a primary button press at (x, y).
func (d *Dock) InjectPress(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectPress, x: x, y: y, button: ButtonPrimary})
}

// InjectRelease queues a primary button release at (x, y).
func (d *Dock) InjectRelease(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectRelease, x: x, y: y, button: ButtonPrimary})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two ticks.
func (d *Dock) InjectClick(x, y float64) {
	d.InjectPress(x, y)
	d.InjectRelease(x, y)
}

// InjectContextClick queues a secondary button press at (x, y).
func (d *Dock) InjectContextClick(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectPress, x: x, y: y, button: ButtonSecondary})
}

// InjectLeave queues the pointer leaving the surface.
func (d *Dock) InjectLeave() {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectLeave})
}

// InjectPoll queues a global cursor sample at screen position (x, y).
func (d *Dock) InjectPoll(x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{kind: injectPoll, x: x, y: y})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, then release at (toX, toY). The sequence consumes
// frames ticks; the minimum is 2.
func (d *Dock) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued event and dispatches it. Presses and
// releases move the pointer first, as a real pointer would have.
func (d *Dock) processInjectedInput(now time.Time) bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	switch evt.kind {
	case injectMove:
		d.PointerMove(evt.x, evt.y, now)
	case injectPress:
		d.PointerMove(evt.x, evt.y, now)
		d.PointerDown(evt.button, evt.x, evt.y, now)
	case injectRelease:
		d.PointerMove(evt.x, evt.y, now)
		d.PointerUp(evt.button, evt.x, evt.y, now)
	case injectLeave:
		d.PointerLeave(now)
	case injectPoll:
		d.PollCursor(evt.x, evt.y, now)
	}
	return true
}
