package grace

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	// Position tracking
	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	// Spacing
	Gap     float32 // Space between children
	Padding float32 // Inner padding

	// State
	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayout creates and pushes a new layout onto the stack.
func (ctx *Context) pushLayout(layoutType LayoutType, opts ...LayoutOption) *Layout {
	layout := &Layout{Type: layoutType}
	for _, opt := range opts {
		opt(layout)
	}
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	ctx.cursor.X += layout.Padding
	ctx.cursor.Y += layout.Padding
	ctx.layoutStack = append(ctx.layoutStack, layout)
	return layout
}

// popLayout removes the current layout and returns its content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{
		X: layout.StartX,
		Y: layout.StartY,
		W: layout.MaxWidth + layout.Padding*2,
		H: layout.MaxHeight + layout.Padding*2,
	}

	// Fold this layout into the parent as a single item
	if len(ctx.layoutStack) > 0 {
		parent := ctx.layoutStack[len(ctx.layoutStack)-1]

		if parent.ItemCount > 0 {
			gap := parent.Gap
			if gap == 0 {
				gap = ctx.style.ItemSpacing
			}
			if parent.Type == LayoutVertical {
				ctx.cursor.Y += gap
			} else {
				ctx.cursor.X += gap
			}
		}

		if parent.Type == LayoutVertical {
			ctx.cursor.X = parent.StartX + parent.Padding
			ctx.cursor.Y = layout.StartY + bounds.H
			parent.MaxWidth = maxf(parent.MaxWidth, bounds.W)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + bounds.W
			ctx.cursor.Y = parent.StartY + parent.Padding
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, bounds.H)
		}

		parent.ItemCount++
	}

	return bounds
}

// Vertical lays out children top to bottom. Returns a closure that runs
// the content and pops the layout.
func (ctx *Context) Vertical(opts ...LayoutOption) func(content func()) Rect {
	ctx.pushLayout(LayoutVertical, opts...)
	return func(content func()) Rect {
		content()
		return ctx.popLayout()
	}
}

// Horizontal lays out children left to right.
func (ctx *Context) Horizontal(opts ...LayoutOption) func(content func()) Rect {
	ctx.pushLayout(LayoutHorizontal, opts...)
	return func(content func()) Rect {
		content()
		return ctx.popLayout()
	}
}
