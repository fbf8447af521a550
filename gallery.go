package grace

import "strconv"

// dragThreshold is the pointer displacement in pixels that turns a press on
// the strip into a drag gesture instead of a card click.
const dragThreshold float32 = 3

// wheelStepPx converts one wheel notch into strip pixels.
const wheelStepPx float32 = 48

// DisplayItem is one card in the gallery strip.
type DisplayItem struct {
	Key       string // Stable identifier for widget state
	Title     string
	Subtitle  string
	TextureID uint32 // Thumbnail texture, 0 for the flat placeholder
}

// GalleryEvent reports what the strip did this frame.
type GalleryEvent struct {
	ActiveIndex  int  // Logical index of the centered card
	DisplayIndex int  // 1-based, for the "N / total" readout
	ClickedIndex int  // Logical index of a clicked card, -1 if none
	ClickedOpen  bool // True if the clicked card was already centered
	Settled      bool
}

// GalleryStrip renders the infinitely repeating card strip and feeds input
// into its Carousel. One instance persists across frames.
type GalleryStrip struct {
	Carousel *Carousel

	items []DisplayItem

	// InputBlocked drops pointer and keyboard handling for the frame.
	// Set while an overlay such as the detail view covers the strip.
	InputBlocked bool

	pressed  bool // Left button went down on the strip
	dragging bool // Press turned into a drag
}

// NewGalleryStrip creates a strip around a carousel.
func NewGalleryStrip(opts ...CarouselOption) *GalleryStrip {
	return &GalleryStrip{
		Carousel: NewCarousel(opts...),
	}
}

// SetItems replaces the card list. Layout is re-measured on the next Draw.
func (g *GalleryStrip) SetItems(items []DisplayItem) {
	g.items = items
}

// Items returns the current card list.
func (g *GalleryStrip) Items() []DisplayItem {
	return g.items
}

// Draw handles input, steps the carousel, and renders the strip into bounds.
// When suspended, input is still folded into the target but nothing visual
// moves; the caller keeps drawing so the strip stays visible behind overlays.
func (g *GalleryStrip) Draw(ctx *Context, bounds Rect) GalleryEvent {
	ev := GalleryEvent{ClickedIndex: -1}
	if len(g.items) == 0 {
		return ev
	}

	id := ctx.GetID("gallery-strip")
	style := ctx.Style()
	g.Carousel.SetLayout(len(g.items), style.Stride())

	clickedGlobal := g.handleInput(ctx, id, bounds)

	frame := g.Carousel.Step()
	ev.ActiveIndex = frame.ActiveIndex
	ev.DisplayIndex = frame.DisplayIndex
	ev.Settled = frame.Settled

	if clickedGlobal >= 0 {
		logical := clickedGlobal % len(g.items)
		ev.ClickedIndex = logical
		if logical == frame.ActiveIndex {
			ev.ClickedOpen = true
		} else {
			g.Carousel.NavigateTo(logical)
		}
	}

	g.render(ctx, bounds, frame)
	g.drawIndicator(ctx, bounds, frame)

	return ev
}

// handleInput folds pointer and keyboard input into the carousel target.
// Returns the global (replicated) index of a clicked card, or -1.
func (g *GalleryStrip) handleInput(ctx *Context, id ID, bounds Rect) int {
	in := ctx.Input
	if in == nil || g.InputBlocked {
		g.pressed = false
		if g.dragging {
			g.dragging = false
			g.Carousel.DragEnd()
			ctx.ClearActive(id)
		}
		return -1
	}

	hovered := ctx.isHovered(bounds)

	if hovered && (in.MouseWheelX != 0 || in.MouseWheelY != 0) {
		g.Carousel.Wheel(in.MouseWheelX*wheelStepPx, in.MouseWheelY*wheelStepPx)
		ctx.WantCaptureMouse = true
	}

	if !ctx.HasWidgetFocus() {
		if in.KeyPressed(KeyLeft) {
			g.Carousel.Advance(-1)
		}
		if in.KeyPressed(KeyRight) {
			g.Carousel.Advance(1)
		}
		if in.KeyPressed(KeyHome) {
			g.Carousel.NavigateTo(0)
		}
		if in.KeyPressed(KeyEnd) {
			g.Carousel.NavigateTo(len(g.items) - 1)
		}
	}

	if hovered && in.MouseClicked(MouseButtonLeft) && !ctx.HasActive() {
		g.pressed = true
	}

	if g.pressed && in.MouseDown(MouseButtonLeft) {
		dx, _ := in.DragDistance()
		if !g.dragging && absf32(dx) > dragThreshold {
			g.dragging = true
			g.Carousel.DragStart()
			ctx.SetActive(id)
		}
		if g.dragging {
			// Content follows the pointer: strip draws at -offset, so a
			// rightward drag lowers the target.
			g.Carousel.DragMove(-dx)
			ctx.WantCaptureMouse = true
		}
	}

	clicked := -1
	if g.pressed && in.MouseReleased(MouseButtonLeft) {
		if g.dragging {
			g.Carousel.DragEnd()
			g.Carousel.SnapToNearest()
			ctx.ClearActive(id)
		} else if hovered {
			clicked = g.cardAt(ctx, bounds, in.MouseX)
		}
		g.pressed = false
		g.dragging = false
	}

	return clicked
}

// cardAt maps a viewport X coordinate to the global card index under it,
// or -1 when the point falls in a gap between cards.
func (g *GalleryStrip) cardAt(ctx *Context, bounds Rect, x float32) int {
	stride := g.Carousel.Stride()
	if stride <= 0 {
		return -1
	}
	current, _ := g.Carousel.Position()
	// Invert the render mapping: cardCenterX = viewportCenter + g*stride - current
	virtual := x - bounds.CenterX() + current
	global := int(roundf(virtual / stride))
	if global < 0 || global >= len(g.items)*ReplicaCount {
		return -1
	}
	center := bounds.CenterX() + float32(global)*stride - current
	half := ctx.Style().CardWidth / 2
	if x < center-half || x > center+half {
		return -1
	}
	return global
}

// render draws every replica card that intersects the viewport.
func (g *GalleryStrip) render(ctx *Context, bounds Rect, frame Frame) {
	style := ctx.Style()
	stride := g.Carousel.Stride()
	dl := ctx.DrawList

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	defer dl.PopClipRect()

	total := len(g.items) * ReplicaCount
	for global := 0; global < total; global++ {
		centerX := bounds.CenterX() + float32(global)*stride - frame.Offset
		if centerX+stride < bounds.X || centerX-stride > bounds.X+bounds.W {
			continue
		}

		logical := global % len(g.items)
		item := g.items[logical]
		tf := g.Carousel.ItemTransform(centerX, bounds.W)

		w := style.CardWidth * tf.Scale
		h := style.CardHeight * tf.Scale
		x := centerX - w/2
		y := bounds.Y + (bounds.H-h)/2

		g.drawCard(ctx, item, Rect{X: x, Y: y, W: w, H: h}, tf,
			logical == frame.ActiveIndex)
	}
}

// drawCard draws one card with its thumbnail, caption, and border.
func (g *GalleryStrip) drawCard(ctx *Context, item DisplayItem, r Rect, tf Transform, active bool) {
	style := ctx.Style()
	dl := ctx.DrawList

	dl.AddRect(r.X, r.Y, r.W, r.H, WithAlpha(style.CardColor, tf.Opacity))

	if item.TextureID != 0 {
		// The image is inset and shifted by the parallax offset; the card
		// clip hides the overhang.
		dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
		inset := style.BorderSize
		dl.AddImage(item.TextureID,
			r.X+inset-tf.Parallax, r.Y+inset,
			r.W-inset*2, r.H-inset*2,
			WithAlpha(ColorWhite, tf.Opacity))
		dl.PopClipRect()
	}

	border := style.CardBorderColor
	if active {
		border = style.CardActiveBorder
	}
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, WithAlpha(border, tf.Opacity), style.BorderSize)

	if item.Title != "" {
		tx := r.X + style.CaptionInset
		ty := r.Y + r.H - ctx.lineHeight()*2 - style.CaptionInset
		ctx.AddText(tx, ty, item.Title, WithAlpha(style.CardCaptionColor, tf.Opacity))
		if item.Subtitle != "" {
			ctx.AddText(tx, ty+ctx.lineHeight(), item.Subtitle,
				WithAlpha(style.CardIndexColor, tf.Opacity))
		}
	}
}

// drawIndicator draws the "N / total" readout under the strip.
func (g *GalleryStrip) drawIndicator(ctx *Context, bounds Rect, frame Frame) {
	style := ctx.Style()
	label := strconv.Itoa(frame.DisplayIndex) + " / " + strconv.Itoa(len(g.items))
	size := ctx.MeasureText(label)
	x := bounds.CenterX() - size.X/2
	y := bounds.Y + bounds.H - size.Y - style.PanelPadding
	ctx.AddText(x, y, label, style.CardIndexColor)
}
