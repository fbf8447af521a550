package grace_test

import (
	"math"
	"math/rand"
	"testing"

	grace "github.com/eunyuson/GRACE-sub000"
)

// newTestCarousel returns a carousel measured as 10 items of stride 100,
// so one cycle is 1000px and the canonical start offset is 2000.
func newTestCarousel() *grace.Carousel {
	c := grace.NewCarousel()
	c.SetLayout(10, 100)
	return c
}

func inWrapWindow(c *grace.Carousel) bool {
	cur, tgt := c.Position()
	ext := c.Extent()
	return cur >= ext && cur < 3*ext && tgt >= ext && tgt < 3*ext
}

func TestCarouselInitialCentering(t *testing.T) {
	c := newTestCarousel()

	cur, tgt := c.Position()
	if cur != 2000 || tgt != 2000 {
		t.Fatalf("initial offsets should be 2*extent, got current=%v target=%v", cur, tgt)
	}

	f := c.Step()
	if f.DisplayIndex != 1 {
		t.Errorf("initial display index should be 1, got %d", f.DisplayIndex)
	}
	if f.ActiveIndex != 0 {
		t.Errorf("initial active index should be 0, got %d", f.ActiveIndex)
	}
	if !f.Settled {
		t.Error("carousel should be settled with current == target")
	}
}

func TestCarouselStepBeforeLayoutIsNoop(t *testing.T) {
	c := grace.NewCarousel()

	c.Wheel(10, 20)      // ignored: no measurement yet
	c.NavigateTo(3)      // ignored
	f := c.Step()        // no-op
	if f != (grace.Frame{}) {
		t.Errorf("step before layout should return zero frame, got %+v", f)
	}
	if cur, tgt := c.Position(); cur != 0 || tgt != 0 {
		t.Errorf("offsets should remain zero before layout, got %v/%v", cur, tgt)
	}
}

func TestCarouselWrapInvariant(t *testing.T) {
	c := newTestCarousel()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			c.Wheel(rng.Float32()*400-200, rng.Float32()*400-200)
		case 1:
			c.NavigateTo(rng.Intn(10))
		case 2:
			c.DragStart()
			c.DragMove(rng.Float32()*3000 - 1500)
			c.DragEnd()
		case 3:
			// drift only
		}
		c.Step()
		if !inWrapWindow(c) {
			cur, tgt := c.Position()
			t.Fatalf("step %d: offsets escaped wrap window [%v, %v): current=%v target=%v",
				i, c.Extent(), 3*c.Extent(), cur, tgt)
		}
	}
}

func TestCarouselWrapInvariantLargeBurst(t *testing.T) {
	c := newTestCarousel()

	// A single wheel burst worth many cycles must still be corrected on the
	// next step.
	c.Wheel(0, 25000)
	c.Step()
	if !inWrapWindow(c) {
		cur, tgt := c.Position()
		t.Fatalf("burst not corrected: current=%v target=%v extent=%v", cur, tgt, c.Extent())
	}
}

func TestCarouselConvergence(t *testing.T) {
	c := newTestCarousel()
	c.NavigateTo(5)

	var f grace.Frame
	for i := 0; i < 300; i++ {
		f = c.Step()
	}

	cur, tgt := c.Position()
	if math.Abs(float64(cur-tgt)) > 0.01 {
		t.Errorf("current should converge to target, gap=%v", cur-tgt)
	}
	if math.Abs(float64(cur-2500)) > 0.01 {
		t.Errorf("converged offset should be 2*extent+500, got %v", cur)
	}
	if f.DisplayIndex != 6 {
		t.Errorf("display index after NavigateTo(5) should be 6, got %d", f.DisplayIndex)
	}
	if !f.Settled {
		t.Error("frame should report settled after convergence")
	}
}

func TestCarouselWrapForwardKeepsVisualPosition(t *testing.T) {
	c := newTestCarousel()

	// Scroll forward until the next step must wrap.
	for {
		c.Wheel(0, 120)
		_, tgt := c.Position()
		if tgt >= 3*c.Extent() {
			break
		}
		c.Step()
	}

	curBefore, tgtBefore := c.Position()
	ease := float32(0.08)
	expectCur := curBefore + (tgtBefore-curBefore)*ease - c.Extent()
	expectTgt := tgtBefore - c.Extent()

	c.Step()

	curAfter, tgtAfter := c.Position()
	if math.Abs(float64(tgtAfter-expectTgt)) > 1e-3 {
		t.Errorf("target should shift by exactly one extent: got %v want %v", tgtAfter, expectTgt)
	}
	if math.Abs(float64(curAfter-expectCur)) > 1e-3 {
		t.Errorf("current should shift with target: got %v want %v", curAfter, expectCur)
	}
}

func TestCarouselActiveIndexAlwaysNormalized(t *testing.T) {
	c := newTestCarousel()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		c.Wheel(0, rng.Float32()*1000-500)
		f := c.Step()
		if f.ActiveIndex < 0 || f.ActiveIndex >= 10 {
			t.Fatalf("active index out of range: %d", f.ActiveIndex)
		}
		if f.DisplayIndex != f.ActiveIndex+1 {
			t.Fatalf("display index should be 1-based: active=%d display=%d",
				f.ActiveIndex, f.DisplayIndex)
		}
	}
}

func TestCarouselSuspendResumeIdempotent(t *testing.T) {
	c := newTestCarousel()

	c.Suspend()
	c.Suspend()
	if !c.Suspended() {
		t.Error("double suspend should leave carousel suspended")
	}

	c.Resume()
	c.Resume()
	if c.Suspended() {
		t.Error("double resume should leave carousel running")
	}
}

func TestCarouselSuspendKeepsTracking(t *testing.T) {
	c := newTestCarousel()

	c.Suspend()
	c.Wheel(0, 300)

	_, tgtBefore := c.Position()
	if tgtBefore == 2000 {
		t.Fatal("wheel while suspended should still update target")
	}

	c.Step()
	cur, _ := c.Position()
	if cur == 2000 {
		t.Error("step while suspended should still ease current toward target")
	}

	// Parallax is the transform component gated by suspension.
	tr := c.ItemTransform(700, 800)
	if tr.Parallax != 0 {
		t.Errorf("parallax should be zero while suspended, got %v", tr.Parallax)
	}
	c.Resume()
	tr = c.ItemTransform(700, 800)
	if tr.Parallax == 0 {
		t.Error("parallax should be nonzero after resume for off-center card")
	}
}

func TestCarouselSuspendFreezesDrawnOffset(t *testing.T) {
	c := newTestCarousel()
	before := c.Step().Offset

	c.Suspend()
	c.Wheel(0, 300)

	for i := 0; i < 10; i++ {
		if got := c.Step().Offset; got != before {
			t.Fatalf("drawn offset moved while suspended: before=%v after=%v", before, got)
		}
	}

	// Tracking continued the whole time
	cur, tgt := c.Position()
	if cur == 2000 || tgt == 2000 {
		t.Fatalf("integrator should keep chasing while suspended, got current=%v target=%v", cur, tgt)
	}

	// Resume hands the drawn offset back to the integrator
	c.Resume()
	if got := c.Step().Offset; got == before {
		t.Error("drawn offset should move again after resume")
	}
}

func TestCarouselItemTransformFalloff(t *testing.T) {
	c := newTestCarousel()

	centered := c.ItemTransform(400, 800)
	if centered.Scale != 1.0 {
		t.Errorf("centered card scale should be maxScale, got %v", centered.Scale)
	}
	if centered.Opacity != 1.0 {
		t.Errorf("centered card opacity should be 1, got %v", centered.Opacity)
	}

	// A card a full falloff distance away hits the minimums.
	edge := c.ItemTransform(800, 800)
	if math.Abs(float64(edge.Scale-0.78)) > 1e-4 {
		t.Errorf("edge card scale should be minScale, got %v", edge.Scale)
	}
	if math.Abs(float64(edge.Opacity-0.5)) > 1e-4 {
		t.Errorf("edge card opacity should be 0.5, got %v", edge.Opacity)
	}

	// Further out clamps rather than inverting.
	far := c.ItemTransform(2400, 800)
	if far.Scale != edge.Scale || far.Opacity != edge.Opacity {
		t.Error("distance should clamp at the falloff edge")
	}
}

func TestCarouselDragGesture(t *testing.T) {
	c := newTestCarousel()

	c.DragStart()
	if !c.Dragging() {
		t.Fatal("DragStart should begin a gesture")
	}
	c.DragMove(-250)
	_, tgt := c.Position()
	if tgt != 1750 {
		t.Errorf("drag should retarget relative to origin: got %v want 1750", tgt)
	}

	// Each move is relative to the captured origin, not cumulative.
	c.DragMove(-100)
	_, tgt = c.Position()
	if tgt != 1900 {
		t.Errorf("drag moves should not accumulate: got %v want 1900", tgt)
	}

	c.DragEnd()
	c.SnapToNearest()
	_, tgt = c.Position()
	if tgt != 1900 {
		t.Errorf("snap should settle on the nearest stride boundary, got %v", tgt)
	}

	c.DragStart()
	c.DragMove(-130)
	c.DragEnd()
	c.SnapToNearest()
	_, tgt = c.Position()
	if tgt != 1800 {
		t.Errorf("snap should round to nearest boundary, got %v", tgt)
	}
}

func TestCarouselResizeRescalesPosition(t *testing.T) {
	c := newTestCarousel()
	c.NavigateTo(4)
	for i := 0; i < 200; i++ {
		c.Step()
	}
	before := c.Step()

	// Viewport resize: same items, narrower cards.
	c.SetLayout(10, 80)
	after := c.Step()

	if before.ActiveIndex != after.ActiveIndex {
		t.Errorf("resize should preserve the centered item: %d -> %d",
			before.ActiveIndex, after.ActiveIndex)
	}
	if !inWrapWindow(c) {
		t.Error("offsets should stay inside the wrap window after resize")
	}
}

func TestCarouselNavigateIgnoredBeforeLayout(t *testing.T) {
	c := grace.NewCarousel()
	c.NavigateTo(5)
	if _, tgt := c.Position(); tgt != 0 {
		t.Errorf("navigate before layout should be ignored, target=%v", tgt)
	}
}

func BenchmarkCarouselStep(b *testing.B) {
	c := newTestCarousel()
	c.NavigateTo(7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Wheel(0, 3)
		c.Step()
	}
}
