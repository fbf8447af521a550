package grace

import (
	"log/slog"
	"os"
)

// uiLogger is the package logger. The level variable is shared with the
// application via SetLogLevel.
var (
	uiLogLevel = new(slog.LevelVar)
	uiLogger   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))
)

// SetLogLevel adjusts the verbosity of the package logger.
func SetLogLevel(l slog.Level) {
	uiLogLevel.Set(l)
}

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For overlays and toasts (drawn on top)

	// Styling
	style      Style
	styleStack []Style

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// IDs
	idStack []ID

	// Screen
	DisplaySize Vec2
	DPIScale    float32

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Interaction tracking
	focusedID ID // Widget with keyboard focus (memo editor, search box)
	activeID  ID // Widget being interacted with (pressed button, dragged strip)
	hoveredID ID

	// Font texture ID (set by renderer)
	FontTextureID uint32

	// Input capture flags (output from GUI to application).
	// These tell the application whether GUI wants to consume input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// Per-frame text measurement cache.
	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		textMeasureCache: make(map[string]Vec2, 64),
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{0, 0}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	ctx.hoveredID = 0

	// Reset input capture flags - widgets set these during the frame
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	clear(ctx.textMeasureCache)
}

// PushID pushes an ID scope so repeated labels stay unique.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID pops the ID scope stack.
func (ctx *Context) PopID() {
	n := len(ctx.idStack)
	if n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
}

// GetID derives a widget ID from a label within the current ID scope.
func (ctx *Context) GetID(label string) ID {
	var seed ID
	if n := len(ctx.idStack); n > 0 {
		seed = ctx.idStack[n-1]
	}
	return idFromString(seed, label)
}

// isHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

// IsHovered returns true if the widget area is under the mouse cursor.
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// IsClicked returns true if the widget was clicked this frame.
func (ctx *Context) IsClicked(rect Rect) bool {
	return ctx.isClicked(rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetActive marks a widget as the active interaction target. Only one
// widget can be active; the gallery strip claims it for the duration of
// a drag so cards under the pointer do not also react.
func (ctx *Context) SetActive(id ID) {
	ctx.activeID = id
}

// ClearActive releases the active widget if id currently holds it.
func (ctx *Context) ClearActive(id ID) {
	if ctx.activeID == id {
		ctx.activeID = 0
	}
}

// IsActive returns true if the widget is the active interaction target.
func (ctx *Context) IsActive(id ID) bool {
	return ctx.activeID == id
}

// HasActive returns true if any widget holds the active interaction.
func (ctx *Context) HasActive() bool {
	return ctx.activeID != 0
}

// SetFocused sets the focused widget.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused returns true if the widget has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// HasWidgetFocus returns true if any widget has keyboard focus (edit mode).
func (ctx *Context) HasWidgetFocus() bool {
	return ctx.focusedID != 0
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text.
// Results are cached per-frame to avoid redundant measurements.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	charH := ctx.style.CharHeight * ctx.style.FontScale
	result := Vec2{X: float32(len(text)) * charW, Y: charH}

	ctx.textMeasureCache[text] = result
	return result
}

// AddText draws text with the current style.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text to a specific DrawList.
// Useful for drawing to the foreground/overlay layer.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// addText is the internal helper for widgets.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddText(x, y, text, color)
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return layout.Width - layout.Padding*2
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth returns the available width in the current layout.
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil {
		return
	}

	if layout.ItemCount > 0 {
		gap := layout.Gap
		if gap == 0 {
			gap = ctx.style.ItemSpacing
		}
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += gap
		} else {
			ctx.cursor.X += gap
		}
	}
}

// ItemPos returns the position for the next widget with gap applied.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor after drawing an item.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, size.X)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}

	layout.ItemCount++
}

// advanceCursor is the internal helper for widgets.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}
