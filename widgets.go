package grace

import "strings"

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextWrapped draws text with automatic word wrapping.
// maxWidth specifies the maximum line width (0 = use current layout width).
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.currentLayoutWidth()
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()

	line := ""
	y := pos.Y
	lineCount := 0

	for _, word := range words {
		testLine := line
		if testLine != "" {
			testLine += " "
		}
		testLine += word

		width := ctx.MeasureText(testLine).X
		if width > maxWidth && line != "" {
			ctx.addText(pos.X, y, line, ctx.style.TextColor)
			y += lineH
			lineCount++
			line = word
		} else {
			line = testLine
		}
	}

	if line != "" {
		ctx.addText(pos.X, y, line, ctx.style.TextColor)
		lineCount++
	}

	ctx.advanceCursor(Vec2{maxWidth, float32(lineCount) * lineH})
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.Horizontal()(func() {
		ctx.Text(label)
		ctx.Text(value)
	})
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}

	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		size.X = optWidth
	}
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		size.Y = optHeight
	}

	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(rect) && !disabled && !ctx.HasActive()
	pressed := ctx.isPressed(rect) && !disabled && !ctx.HasActive()

	bgColor := ctx.style.ButtonColor
	if hovered {
		bgColor = ctx.style.ButtonHoveredColor
	}
	if pressed {
		bgColor = ctx.style.ButtonActiveColor
	}
	if disabled {
		bgColor = ctx.style.ButtonDisabledColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)

	textX := pos.X + (size.X-textSize.X)/2
	textY := pos.Y + (size.Y-textSize.Y)/2
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(textX, textY, label, textColor)

	if hovered {
		ctx.WantCaptureMouse = true
		ctx.hoveredID = id
	}

	clicked := !disabled && !ctx.HasActive() && ctx.isClicked(rect)
	ctx.advanceCursor(size)

	return clicked
}

// SmallButton draws a smaller button without extra padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	savedPadding := ctx.style.ButtonPadding
	ctx.style.ButtonPadding = 2
	result := ctx.Button(label, opts...)
	ctx.style.ButtonPadding = savedPadding
	return result
}

// Selectable draws a selectable list item.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.GetID(label)
	if optID := GetOpt(o, OptID); optID != "" {
		id = ctx.GetID(optID)
	}

	prefix := "  "
	if selected {
		prefix = "> "
	}

	display := prefix + label
	if badge := GetOpt(o, OptBadge); badge != "" {
		display += " [" + badge + "]"
	}

	textSize := ctx.MeasureText(display)
	w := textSize.X + ctx.style.ItemSpacing*2
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	h := ctx.lineHeight()

	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(rect) && !disabled && !ctx.HasActive()

	var bgColor uint32
	textColor := ctx.style.TextColor

	if selected {
		bgColor = ctx.style.SelectedBgColor
		textColor = ctx.style.SelectedTextColor
	} else if hovered {
		bgColor = ctx.style.HoveredBgColor
	}
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}

	if bgColor != 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	}

	if selected {
		ctx.DrawList.AddRect(pos.X, pos.Y, 4, h, ctx.style.TextHighlightColor)
	}

	ctx.addText(pos.X, pos.Y, display, textColor)

	if hovered {
		ctx.WantCaptureMouse = true
		ctx.hoveredID = id
	}

	clicked := !disabled && !ctx.HasActive() && ctx.isClicked(rect)
	ctx.advanceCursor(Vec2{w, h})

	return clicked
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	boxSize := ctx.lineHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X

	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	disabled := GetOpt(o, OptDisabled)
	hovered := ctx.isHovered(rect) && !disabled && !ctx.HasActive()

	boxColor := ctx.style.InputBgColor
	if hovered {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize,
		ctx.style.InputBorderColor, 1)

	if *value {
		padding := boxSize * 0.2
		x1, y1 := pos.X+padding, pos.Y+padding
		x2, y2 := pos.X+boxSize-padding, pos.Y+boxSize-padding
		ctx.DrawList.AddLine(x1, y1, x2, y2, ctx.style.TextColor, 2)
		ctx.DrawList.AddLine(x1, y2, x2, y1, ctx.style.TextColor, 2)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y, label, textColor)

	changed := false
	if !disabled && !ctx.HasActive() && ctx.isClicked(rect) {
		*value = !*value
		changed = true
	}

	if hovered {
		ctx.WantCaptureMouse = true
	}

	ctx.advanceCursor(Vec2{totalWidth, boxSize})
	return changed
}

// Spacing adds vertical space between items.
func (ctx *Context) Spacing(pixels float32) {
	ctx.advanceCursor(Vec2{0, pixels})
}

// Separator draws a horizontal line across the current layout width.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	ctx.DrawList.AddRect(pos.X, pos.Y+1, w, 1, ctx.style.SeparatorColor)
	ctx.advanceCursor(Vec2{w, 3})
}
