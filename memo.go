package grace

// MemoSaver persists memo text for an item. content.MemoStore satisfies it.
type MemoSaver interface {
	SaveMemo(itemID, text string) error
}

// memoAutoSaveDelay is how long after the last keystroke a save fires.
const memoAutoSaveDelay float32 = 1.5

// MemoPanel is the per-item notes editor. Text edits auto-save after a
// short pause; Ctrl+Z / Ctrl+Y walk the undo history.
type MemoPanel struct {
	saver  MemoSaver
	itemID string
	text   []rune
	state  EditorState

	// OnSaved fires after a successful save, on the UI thread. The
	// application uses it to raise a toast.
	OnSaved func(itemID string)
}

// NewMemoPanel creates a memo panel backed by the given store.
func NewMemoPanel(saver MemoSaver) *MemoPanel {
	return &MemoPanel{saver: saver}
}

// SetItem switches the panel to another item's memo text. Unsaved edits
// to the previous item are flushed first so nothing is lost.
func (p *MemoPanel) SetItem(itemID, text string) {
	if p.itemID == itemID {
		return
	}
	p.Flush()
	p.itemID = itemID
	p.text = []rune(text)
	p.state = EditorState{CursorPos: len(p.text)}
}

// ItemID returns the item the panel is editing, or "".
func (p *MemoPanel) ItemID() string {
	return p.itemID
}

// Text returns the current memo text.
func (p *MemoPanel) Text() string {
	return string(p.text)
}

// Dirty reports whether there are edits not yet persisted.
func (p *MemoPanel) Dirty() bool {
	return p.state.Dirty
}

// Flush saves pending edits immediately. Safe to call when clean.
func (p *MemoPanel) Flush() {
	if !p.state.Dirty || p.saver == nil || p.itemID == "" {
		return
	}
	p.state.Dirty = false
	p.save()
}

func (p *MemoPanel) save() {
	if err := p.saver.SaveMemo(p.itemID, string(p.text)); err != nil {
		uiLogger.Warn("memo save failed", "item", p.itemID, "err", err)
		p.state.MarkEdited() // Retry on the next auto-save tick
		return
	}
	if p.OnSaved != nil {
		p.OnSaved(p.itemID)
	}
}

// Draw renders the editor into bounds and handles its input.
func (p *MemoPanel) Draw(ctx *Context, bounds Rect) {
	style := ctx.Style()
	dl := ctx.DrawList

	id := ctx.GetID("memo-editor")
	focused := ctx.IsFocused(id)

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelColor)

	bg := style.InputBgColor
	if focused {
		bg = style.InputFocusedBgColor
	}
	inner := Rect{
		X: bounds.X + style.PanelPadding,
		Y: bounds.Y + style.PanelPadding + ctx.lineHeight() + SpaceSM,
		W: bounds.W - style.PanelPadding*2,
		H: bounds.H - style.PanelPadding*2 - ctx.lineHeight() - SpaceSM,
	}
	dl.AddRect(inner.X, inner.Y, inner.W, inner.H, bg)
	dl.AddRectOutline(inner.X, inner.Y, inner.W, inner.H, style.InputBorderColor, 1)

	header := "Notes"
	if p.state.Dirty {
		header = "Notes *"
	}
	ctx.addText(bounds.X+style.PanelPadding, bounds.Y+style.PanelPadding, header, style.TextColor)

	// Focus follows clicks
	if ctx.Input != nil && !ctx.HasActive() {
		if ctx.isClicked(inner) {
			ctx.SetFocused(id)
			focused = true
		} else if ctx.Input.MouseClicked(MouseButtonLeft) && focused {
			ctx.ClearFocus()
			focused = false
		}
	}

	if focused {
		ctx.WantCaptureKeyboard = true
		p.handleKeys(ctx)
	}

	if p.itemID == "" {
		ctx.AddTextTo(dl, inner.X+style.InputPadding, inner.Y+style.InputPadding,
			"Select an item to take notes", style.TextDisabledColor)
		return
	}

	p.drawText(ctx, dl, inner, focused)

	if p.state.TickAutoSave(ctx.DeltaTime, memoAutoSaveDelay) {
		p.save()
	}
}

func (p *MemoPanel) handleKeys(ctx *Context) {
	in := ctx.Input

	if in.KeyPressed(KeyEscape) {
		ctx.ClearFocus()
		return
	}

	if in.ModCtrl {
		if in.KeyPressed(KeyZ) {
			if prev, ok := p.state.Undo(string(p.text)); ok {
				p.text = []rune(prev)
				p.clampCursor()
				p.state.MarkEdited()
			}
			in.ConsumeInputChars()
			return
		}
		if in.KeyPressed(KeyY) {
			if next, ok := p.state.Redo(); ok {
				p.text = []rune(next)
				p.clampCursor()
				p.state.MarkEdited()
			}
			in.ConsumeInputChars()
			return
		}
	}

	if in.KeyPressed(KeyLeft) && p.state.CursorPos > 0 {
		p.state.CursorPos--
	}
	if in.KeyPressed(KeyRight) && p.state.CursorPos < len(p.text) {
		p.state.CursorPos++
	}
	if in.KeyPressed(KeyHome) {
		p.state.CursorPos = 0
	}
	if in.KeyPressed(KeyEnd) {
		p.state.CursorPos = len(p.text)
	}

	if in.KeyPressed(KeyBackspace) && p.state.CursorPos > 0 {
		p.state.PushUndo(string(p.text))
		p.text = append(p.text[:p.state.CursorPos-1], p.text[p.state.CursorPos:]...)
		p.state.CursorPos--
		p.state.MarkEdited()
	}
	if in.KeyPressed(KeyDelete) && p.state.CursorPos < len(p.text) {
		p.state.PushUndo(string(p.text))
		p.text = append(p.text[:p.state.CursorPos], p.text[p.state.CursorPos+1:]...)
		p.state.MarkEdited()
	}
	if in.KeyPressed(KeyEnter) {
		p.insert([]rune{'\n'})
	}

	if in.HasInputChars() {
		p.insert(in.InputChars)
		in.ConsumeInputChars()
	}
}

func (p *MemoPanel) insert(chars []rune) {
	if len(chars) == 0 {
		return
	}
	p.state.PushUndo(string(p.text))
	out := make([]rune, 0, len(p.text)+len(chars))
	out = append(out, p.text[:p.state.CursorPos]...)
	out = append(out, chars...)
	out = append(out, p.text[p.state.CursorPos:]...)
	p.text = out
	p.state.CursorPos += len(chars)
	p.state.MarkEdited()
}

func (p *MemoPanel) clampCursor() {
	if p.state.CursorPos > len(p.text) {
		p.state.CursorPos = len(p.text)
	}
	if p.state.CursorPos < 0 {
		p.state.CursorPos = 0
	}
}

// drawText lays the memo out as wrapped monospace lines and draws the
// blinking cursor when focused.
func (p *MemoPanel) drawText(ctx *Context, dl *DrawList, inner Rect, focused bool) {
	style := ctx.Style()
	charW := style.CharWidth * style.FontScale
	lineH := ctx.lineHeight()

	cols := int((inner.W - style.InputPadding*2) / charW)
	if cols < 1 {
		cols = 1
	}

	dl.PushClipRect(inner.X, inner.Y, inner.X+inner.W, inner.Y+inner.H)
	defer dl.PopClipRect()

	x0 := inner.X + style.InputPadding
	y := inner.Y + style.InputPadding - p.state.ScrollOffset

	var cursorX, cursorY float32
	cursorX, cursorY = x0, y

	line := make([]rune, 0, cols)
	col := 0
	flush := func() {
		if len(line) > 0 {
			ctx.AddTextTo(dl, x0, y, string(line), style.TextColor)
		}
		line = line[:0]
		col = 0
		y += lineH
	}

	for i, r := range p.text {
		if i == p.state.CursorPos {
			cursorX, cursorY = x0+float32(col)*charW, y
		}
		if r == '\n' {
			flush()
			continue
		}
		line = append(line, r)
		col++
		if col >= cols {
			flush()
		}
	}
	if p.state.CursorPos == len(p.text) {
		cursorX, cursorY = x0+float32(col)*charW, y
	}
	flush()

	// Keep the cursor line in view
	contentH := y + p.state.ScrollOffset - (inner.Y + style.InputPadding)
	p.state.ScrollOffset = clampScroll(p.state.ScrollOffset, contentH, inner.H-style.InputPadding*2)

	if focused {
		p.state.CursorBlinkTime += ctx.DeltaTime
		if int(p.state.CursorBlinkTime*2)%2 == 0 {
			dl.AddRect(cursorX, cursorY, 2, lineH, style.TextHighlightColor)
		}
	}
}

func clampScroll(offset, contentH, viewH float32) float32 {
	max := contentH - viewH
	if max < 0 {
		max = 0
	}
	if offset > max {
		return max
	}
	if offset < 0 {
		return 0
	}
	return offset
}
