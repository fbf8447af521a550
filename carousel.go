package grace

// ReplicaCount is how many physical copies of the logical item list the
// gallery strip renders. Five copies keep real cards on both sides of the
// wrap boundary, so a wrap correction is never visible.
const ReplicaCount = 5

// Carousel default tuning. Override with CarouselOptions.
const (
	defaultEaseFactor     float32 = 0.08
	defaultWheelGain      float32 = 1.0
	defaultDragGain       float32 = 1.0
	defaultMaxScale       float32 = 1.0
	defaultMinScale       float32 = 0.78
	defaultParallaxFactor float32 = 0.08
	defaultFalloff        float32 = 0.5 // fraction of viewport width for full distance falloff
)

// settleThreshold is the target/current gap below which the strip is
// considered at rest.
const settleThreshold float32 = 0.5

// CarouselOption configures a Carousel.
type CarouselOption func(*Carousel)

// WithEaseFactor sets the fraction of remaining distance closed per step.
// Must be in (0, 1).
func WithEaseFactor(f float32) CarouselOption {
	return func(c *Carousel) { c.ease = f }
}

// WithWheelGain sets the multiplier applied to wheel deltas.
func WithWheelGain(g float32) CarouselOption {
	return func(c *Carousel) { c.wheelGain = g }
}

// WithDragGain sets the multiplier applied to drag deltas.
func WithDragGain(g float32) CarouselOption {
	return func(c *Carousel) { c.dragGain = g }
}

// WithScaleRange sets the card scale at viewport center (max) and at the
// falloff edge (min).
func WithScaleRange(minScale, maxScale float32) CarouselOption {
	return func(c *Carousel) { c.minScale, c.maxScale = minScale, maxScale }
}

// WithParallaxFactor sets the inner-image parallax multiplier.
func WithParallaxFactor(f float32) CarouselOption {
	return func(c *Carousel) { c.parallax = f }
}

// Carousel maintains the virtual scroll offset for the infinitely repeating
// gallery strip. It chases a target offset set by input handlers, wraps the
// offset when it exits the middle replica window, and derives per-card visual
// transforms from distance to viewport center.
//
// The carousel is single-owner state: input handlers and the per-frame Step
// all run on the UI thread, so no synchronization is needed.
type Carousel struct {
	current float32 // current virtual offset, px
	target  float32 // offset being chased
	visual  float32 // offset last written to the screen; frozen while suspended

	itemCount  int
	itemStride float32 // card width + gap
	itemExtent float32 // one full logical cycle: itemCount * itemStride

	suspended bool

	dragging  bool
	dragStart float32 // target captured at DragStart

	ease      float32
	wheelGain float32
	dragGain  float32
	minScale  float32
	maxScale  float32
	parallax  float32
	falloff   float32
}

// Frame is the per-step output consumed by the gallery strip widget and the
// navigation indicator.
type Frame struct {
	Offset       float32 // strip translation: the strip is drawn at -Offset
	ActiveIndex  int     // 0-based logical index of the centered item
	DisplayIndex int     // 1-based, for the position indicator
	Settled      bool    // true when current has effectively reached target
}

// Transform holds the visual parameters for one rendered card, derived fresh
// each frame from the card's distance to viewport center.
type Transform struct {
	Scale    float32
	Opacity  float32
	Parallax float32 // horizontal offset for the card's inner image
}

// NewCarousel creates a carousel with default tuning. It performs no wrapping
// or transform math until SetLayout has been called with measured items.
func NewCarousel(opts ...CarouselOption) *Carousel {
	c := &Carousel{
		ease:      defaultEaseFactor,
		wheelGain: defaultWheelGain,
		dragGain:  defaultDragGain,
		minScale:  defaultMinScale,
		maxScale:  defaultMaxScale,
		parallax:  defaultParallaxFactor,
		falloff:   defaultFalloff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLayout (re)computes the cycle extent from the measured item count and
// stride. The first valid call centers the offset into the middle replica
// (current = target = 2*extent). Later calls - viewport resizes - rescale
// current and target proportionally so the visual position is preserved.
func (c *Carousel) SetLayout(itemCount int, itemStride float32) {
	if itemCount <= 0 || itemStride <= 0 {
		c.itemCount, c.itemStride, c.itemExtent = 0, 0, 0
		return
	}
	extent := float32(itemCount) * itemStride
	switch {
	case c.itemExtent == 0:
		c.current, c.target = 2*extent, 2*extent
		c.visual = c.current
	case extent != c.itemExtent:
		ratio := extent / c.itemExtent
		c.current *= ratio
		c.target *= ratio
		c.visual *= ratio
		c.dragStart *= ratio
	}
	c.itemCount, c.itemStride, c.itemExtent = itemCount, itemStride, extent
}

// Wheel adds a scaled wheel delta to the target offset. Target updates are
// allowed while suspended; only transform writes freeze during suspension.
// Wrapping happens in Step.
func (c *Carousel) Wheel(dx, dy float32) {
	if c.itemExtent <= 0 {
		return
	}
	c.target += (dx + dy) * c.wheelGain
}

// DragStart captures the current target as the drag origin.
func (c *Carousel) DragStart() {
	if c.itemExtent <= 0 {
		return
	}
	c.dragging = true
	c.dragStart = c.target
}

// DragMove retargets relative to the drag origin. delta is the accumulated
// pointer displacement since DragStart, already sign-adjusted by the caller.
func (c *Carousel) DragMove(delta float32) {
	if !c.dragging {
		return
	}
	c.target = c.dragStart + delta*c.dragGain
}

// DragEnd finishes a drag gesture.
func (c *Carousel) DragEnd() {
	c.dragging = false
}

// Dragging reports whether a drag gesture is in progress.
func (c *Carousel) Dragging() bool {
	return c.dragging
}

// NavigateTo targets logical item i within the canonical middle replica, so
// the engine eases toward it on subsequent steps. i must be in
// [0, itemCount); the call is ignored before the first layout measurement.
func (c *Carousel) NavigateTo(i int) {
	if c.itemExtent <= 0 {
		return
	}
	c.target = 2*c.itemExtent + float32(i)*c.itemStride
}

// Advance retargets n items forward (negative n for backward). Used by the
// arrow keys and the strip's edge buttons. Wrapping happens in Step.
func (c *Carousel) Advance(n int) {
	if c.itemExtent <= 0 {
		return
	}
	c.target += float32(n) * c.itemStride
}

// SnapToNearest retargets to the nearest item boundary. The gallery calls
// this on drag release so cards settle centered instead of mid-gap.
func (c *Carousel) SnapToNearest() {
	if c.itemExtent <= 0 {
		return
	}
	c.target = roundf(c.target/c.itemStride) * c.itemStride
}

// Suspend freezes visual transform writes while an overlay covers the
// gallery. Position tracking keeps running so Resume is jump-free.
// Idempotent.
func (c *Carousel) Suspend() { c.suspended = true }

// Resume re-enables visual transform writes. Idempotent.
func (c *Carousel) Resume() { c.suspended = false }

// Suspended reports whether transform writes are frozen.
func (c *Carousel) Suspended() bool { return c.suspended }

// Step advances the position integrator by one animation frame: exponential
// ease toward target, then a wrap correction that shifts target and current
// by the same whole extent whenever target exits [extent, 3*extent). Shifting
// both together keeps the chase bounded forever without a visible jump.
//
// A no-op that returns the zero Frame until SetLayout has measured items.
func (c *Carousel) Step() Frame {
	if c.itemExtent <= 0 {
		return Frame{}
	}

	c.current += (c.target - c.current) * c.ease

	// Normally a single correction suffices, because per-step easing
	// displacement is a fraction of the gap. The loop also covers a burst
	// of input that moves target more than one extent between steps.
	for c.target >= 3*c.itemExtent {
		c.target -= c.itemExtent
		c.current -= c.itemExtent
	}
	for c.target < c.itemExtent {
		c.target += c.itemExtent
		c.current += c.itemExtent
	}

	// A chase gap larger than one cycle can leave current outside the
	// window even though target is inside. Shifting current alone by whole
	// extents is invisible - the strip repeats every extent - and keeps the
	// integrator bounded.
	for c.current >= 3*c.itemExtent {
		c.current -= c.itemExtent
	}
	for c.current < c.itemExtent {
		c.current += c.itemExtent
	}

	// The drawn offset only follows the integrator while unsuspended.
	// During suspension it stays latched at the pre-suspension value, so
	// the strip holds still behind the overlay while tracking continues.
	if !c.suspended {
		c.visual = c.current
	}

	idx := c.activeIndex()
	return Frame{
		Offset:       c.visual,
		ActiveIndex:  idx,
		DisplayIndex: idx + 1,
		Settled:      absf32(c.target-c.current) < settleThreshold,
	}
}

// activeIndex derives the centered logical item from the wrapped offset.
// Always in [0, itemCount) regardless of accumulated wrap corrections.
func (c *Carousel) activeIndex() int {
	m := modf32(c.current, c.itemExtent)
	idx := int((m / c.itemExtent) * float32(c.itemCount))
	if idx >= c.itemCount { // float rounding at the cycle seam
		idx -= c.itemCount
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// ItemTransform derives the visual transform for a card whose center is at
// itemCenterX in a viewport of the given width. Distance is normalized by a
// viewport fraction and clamped to [0,1]; scale and opacity fall off linearly
// with it. Parallax is zero while suspended so the overlay does not fight the
// strip.
func (c *Carousel) ItemTransform(itemCenterX, viewportW float32) Transform {
	center := viewportW / 2
	n := clampf(absf32(itemCenterX-center)/(viewportW*c.falloff), 0, 1)
	t := Transform{
		Scale:   c.maxScale - n*(c.maxScale-c.minScale),
		Opacity: 1 - n*0.5,
	}
	if !c.suspended {
		t.Parallax = c.parallax * (itemCenterX - center)
	}
	return t
}

// Position returns the current and target offsets. Exposed for the
// navigation indicator and for tests asserting the wrap window.
func (c *Carousel) Position() (current, target float32) {
	return c.current, c.target
}

// Extent returns the width of one logical cycle, or 0 before the first
// layout measurement.
func (c *Carousel) Extent() float32 {
	return c.itemExtent
}

// Stride returns the per-item stride (card width + gap).
func (c *Carousel) Stride() float32 {
	return c.itemStride
}
