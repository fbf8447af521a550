package grace_test

import (
	"testing"

	grace "github.com/eunyuson/GRACE-sub000"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *grace.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer, grace.WithStyle(grace.SanctuaryStyle()))

	input := grace.NewInputState()
	displaySize := grace.Vec2{X: 1920, Y: 1080}

	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextColored("Colored", grace.ColorGray)

	err := ui.End()
	if err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestButtonWithoutClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer)
	input := grace.NewInputState()

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)

	if ctx.Button("Test Button") {
		t.Error("button should not be clicked without mouse input")
	}

	_ = ui.End()
}

func TestButtonWithClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer)
	input := grace.NewInputState()

	// Click inside the button drawn at the origin
	input.SetMousePos(10, 5)
	input.SetMouseButton(grace.MouseButtonLeft, true)

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	clicked := ctx.Button("Click Me")
	_ = ui.End()

	if !clicked {
		t.Error("expected click inside the button rect to register")
	}
}

func TestCheckbox(t *testing.T) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer)
	input := grace.NewInputState()

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)

	checked := false
	ctx.Checkbox("Enable", &checked)
	if checked {
		t.Error("checkbox should remain unchecked without click")
	}

	_ = ui.End()
}

func TestVerticalHorizontalLayout(t *testing.T) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer)
	input := grace.NewInputState()

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)

	ctx.Vertical(grace.Gap(10))(func() {
		ctx.Horizontal(grace.Gap(5))(func() {
			ctx.Text("Label:")
			ctx.Text("Value")
		})
		ctx.Text("Below")
	})

	_ = ui.End()
}

func TestDrawListPool(t *testing.T) {
	dl1 := grace.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	dl1.AddRect(0, 0, 100, 100, grace.ColorWhite)
	grace.ReleaseDrawList(dl1)

	dl2 := grace.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}

	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}

	grace.ReleaseDrawList(dl2)
}

func TestDrawListImageBatching(t *testing.T) {
	dl := grace.AcquireDrawList()
	defer grace.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, grace.ColorWhite)
	dl.AddImage(7, 20, 0, 10, 10, grace.ColorWhite)
	dl.AddRect(40, 0, 10, 10, grace.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("expected 3 commands (texture switch splits the batch), got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("middle command should carry texture 7, got %d", dl.CmdBuffer[1].TextureID)
	}
}

func TestPushPopID(t *testing.T) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer)
	input := grace.NewInputState()

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)

	ctx.PushID("section1")
	id1 := ctx.GetID("item")
	ctx.PopID()

	ctx.PushID("section2")
	id2 := ctx.GetID("item")
	ctx.PopID()

	if id1 == id2 {
		t.Error("same label in different sections should have different IDs")
	}

	_ = ui.End()
}

func TestFrameStoreCleanup(t *testing.T) {
	store := grace.NewFrameStore[int]()

	a := store.Get(1)
	*a = 42
	store.NextFrame()

	// Touched this frame, survives the next cleanup
	if v := store.Get(1); *v != 42 {
		t.Fatalf("expected state to persist, got %d", *v)
	}
	store.NextFrame()

	// Not touched this frame, dropped
	store.NextFrame()
	if _, ok := store.Peek(1); ok {
		t.Error("expected untouched state to be dropped")
	}
}

func TestStyles(t *testing.T) {
	styles := []grace.Style{
		grace.DefaultStyle(),
		grace.SanctuaryStyle(),
		grace.LightStyle(),
	}

	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 {
			t.Errorf("style %d has zero CharWidth", i)
		}
		if style.Stride() != style.CardWidth+style.CardSpacing {
			t.Errorf("style %d stride mismatch", i)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	c := grace.RGBA(10, 20, 30, 255)
	faded := grace.WithAlpha(c, 0.5)
	if faded&0x00FFFFFF != c&0x00FFFFFF {
		t.Error("WithAlpha must not touch color channels")
	}
	if faded>>24 != 127 {
		t.Errorf("expected alpha 127, got %d", faded>>24)
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := grace.AcquireDrawList()
	defer grace.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, grace.ColorWhite)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := grace.New(renderer)
	input := grace.NewInputState()
	displaySize := grace.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)

		ctx.Vertical(grace.Gap(8))(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Selectable("Item", false)
			}
		})

		_ = ui.End()
	}
}
