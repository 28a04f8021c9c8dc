package dock

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation constants. Smoothing factors are per nominal 16 ms frame.
const (
	NominalFrame = 16 * time.Millisecond

	positionSmoothing = 0.15
	positionEpsilon   = 0.5
	scaleSmoothing    = 0.3
	scaleEpsilon      = 0.001

	// MagnifyRadiusFactor is the wave radius in icon sizes.
	MagnifyRadiusFactor = 3.5

	bounceDuration     = 0.6 // seconds
	bounceHeightFactor = 0.5 // peak lift in icon sizes
)

// smoothing rescales a per-frame factor k to a step of length dt so that the
// approach speed does not depend on the frame rate.
func smoothing(k float64, dt time.Duration) float64 {
	if dt <= 0 || dt == NominalFrame {
		return k
	}
	return 1 - math.Pow(1-k, float64(dt)/float64(NominalFrame))
}

// WaveTarget returns the magnification target for an icon whose centre is d
// pixels from the cursor: a raised cosine from maxScale at d = 0 down to 1 at
// the radius.
func WaveTarget(d, radius, maxScale float64) float64 {
	d = math.Abs(d)
	if radius <= 0 || d >= radius {
		return 1
	}
	falloff := (1 + math.Cos(math.Pi*d/radius)) / 2
	return 1 + (maxScale-1)*falloff
}

// DockTargets returns the on-screen Y of the dock's top edge when visible
// and when hidden. A positive offset pushes the visible dock into the bottom
// edge. A positive sliver leaves that many rows on screen while hidden so
// the cursor can still be detected there; otherwise the dock moves fully off
// screen.
func DockTargets(screenH, surfaceH, offset, sliver int) (visible, hidden float64) {
	visible = float64(screenH - surfaceH + offset)
	if sliver > 0 {
		hidden = float64(screenH - sliver)
	} else {
		hidden = float64(screenH + 20)
	}
	return visible, hidden
}

// WaveInput describes the cursor for one magnification step.
type WaveInput struct {
	CursorX  float64   // surface-local pointer x
	Inside   bool      // pointer over the dock surface
	Dragging bool      // magnification is suspended during a drag
	Centers  []float64 // rest-position icon centres, see SlotCenters
	Radius   float64
	MaxScale float64
}

// Animator owns the dock's vertical position and per-item scales.
type Animator struct {
	DockY    float64
	TargetY  float64
	VisibleY float64
	HiddenY  float64
	Scales   []float64

	bounces []*gween.Tween
	lifts   []float64
}

// NewAnimator creates an animator for n items resting at scale 1.
func NewAnimator(n int) *Animator {
	a := &Animator{}
	a.SetCount(n)
	return a
}

// SetCount resizes the per-item state. Existing scales are kept; new items
// start at rest. Bounces are cancelled.
func (a *Animator) SetCount(n int) {
	n = max(n, 0)
	scales := make([]float64, n)
	for i := range scales {
		scales[i] = 1
		if i < len(a.Scales) {
			scales[i] = a.Scales[i]
		}
	}
	a.Scales = scales
	a.bounces = make([]*gween.Tween, n)
	a.lifts = make([]float64, n)
}

// SetTargets updates the visible and hidden positions without moving the
// dock. The current target follows whichever state it pointed at.
func (a *Animator) SetTargets(visible, hidden float64) {
	wasVisible := a.TargetY == a.VisibleY
	a.VisibleY, a.HiddenY = visible, hidden
	if wasVisible {
		a.TargetY = visible
	} else {
		a.TargetY = hidden
	}
}

// Place sets the position and target outright.
func (a *Animator) Place(y, target float64) {
	a.DockY, a.TargetY = y, target
}

// Show targets the visible position.
func (a *Animator) Show() { a.TargetY = a.VisibleY }

// Hide targets the hidden position.
func (a *Animator) Hide() { a.TargetY = a.HiddenY }

// ShowingTarget reports whether the dock is heading to (or at) the visible
// position.
func (a *Animator) ShowingTarget() bool { return a.TargetY == a.VisibleY }

// NearlyVisible reports whether the dock is within 5 pixels of the visible
// position.
func (a *Animator) NearlyVisible() bool {
	return math.Abs(a.DockY-a.VisibleY) < 5
}

// Bounce starts a launch bounce on item i: the icon jumps up by height pixels
// and settles back with a bouncing ease.
func (a *Animator) Bounce(i int, height float64) {
	if i < 0 || i >= len(a.bounces) || height <= 0 {
		return
	}
	a.bounces[i] = gween.New(float32(height), 0, bounceDuration, ease.OutBounce)
	a.lifts[i] = height
}

// Lifts returns the current extra lift of each item in pixels.
func (a *Animator) Lifts() []float64 {
	return a.lifts
}

// Step advances every animated quantity by dt and reports whether any of
// them is still moving.
func (a *Animator) Step(dt time.Duration, in WaveInput) bool {
	moving := a.stepPosition(dt)
	if a.stepScales(dt, in) {
		moving = true
	}
	if a.stepBounces(dt) {
		moving = true
	}
	return moving
}

func (a *Animator) stepPosition(dt time.Duration) bool {
	d := a.TargetY - a.DockY
	if math.Abs(d) < positionEpsilon {
		a.DockY = a.TargetY
		return false
	}
	a.DockY += d * smoothing(positionSmoothing, dt)
	return true
}

func (a *Animator) stepScales(dt time.Duration, in WaveInput) bool {
	k := smoothing(scaleSmoothing, dt)
	moving := false
	for i := range a.Scales {
		target := 1.0
		if in.Inside && !in.Dragging && i < len(in.Centers) {
			target = WaveTarget(in.CursorX-in.Centers[i], in.Radius, in.MaxScale)
		}
		d := target - a.Scales[i]
		if math.Abs(d) <= scaleEpsilon {
			a.Scales[i] = target
			continue
		}
		a.Scales[i] += d * k
		moving = true
	}
	return moving
}

func (a *Animator) stepBounces(dt time.Duration) bool {
	if dt <= 0 {
		dt = NominalFrame
	}
	moving := false
	for i, tw := range a.bounces {
		if tw == nil {
			continue
		}
		v, done := tw.Update(float32(dt.Seconds()))
		if done {
			a.bounces[i] = nil
			a.lifts[i] = 0
			continue
		}
		a.lifts[i] = float64(v)
		moving = true
	}
	return moving
}

// Settled reports whether position, scales and bounces are all at rest.
func (a *Animator) Settled() bool {
	if math.Abs(a.TargetY-a.DockY) >= positionEpsilon {
		return false
	}
	for _, s := range a.Scales {
		if math.Abs(s-1) > 0.01 {
			return false
		}
	}
	for _, b := range a.bounces {
		if b != nil {
			return false
		}
	}
	return true
}
