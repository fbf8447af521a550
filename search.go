package grace

import (
	"sort"
	"strconv"
	"strings"

	"github.com/eunyuson/GRACE-sub000/content"
)

// TagCount pairs a tag with how many currently matching items carry it.
type TagCount struct {
	Tag   string
	Count int
}

// SearchPanel filters library items by title or speaker substring and by
// tag. Selecting a result navigates the gallery to that item.
type SearchPanel struct {
	items      []*content.Item
	query      []rune
	cursor     int
	activeTags map[string]bool

	// OnSelect fires when a result row is clicked.
	OnSelect func(itemID string)
}

// NewSearchPanel creates an empty panel.
func NewSearchPanel() *SearchPanel {
	return &SearchPanel{activeTags: make(map[string]bool)}
}

// SetItems replaces the searchable item set. Active tags that no longer
// exist anywhere are dropped.
func (p *SearchPanel) SetItems(items []*content.Item) {
	p.items = items
	known := make(map[string]bool)
	for _, it := range items {
		for _, tag := range it.Tags {
			known[tag] = true
		}
	}
	for tag := range p.activeTags {
		if !known[tag] {
			delete(p.activeTags, tag)
		}
	}
}

// Query returns the current search text.
func (p *SearchPanel) Query() string {
	return string(p.query)
}

// SetQuery replaces the search text.
func (p *SearchPanel) SetQuery(q string) {
	p.query = []rune(q)
	p.cursor = len(p.query)
}

// ToggleTag flips a tag filter on or off.
func (p *SearchPanel) ToggleTag(tag string) {
	if p.activeTags[tag] {
		delete(p.activeTags, tag)
	} else {
		p.activeTags[tag] = true
	}
}

// TagActive reports whether a tag filter is on.
func (p *SearchPanel) TagActive(tag string) bool {
	return p.activeTags[tag]
}

// Clear resets the query and all tag filters.
func (p *SearchPanel) Clear() {
	p.query = p.query[:0]
	p.cursor = 0
	p.activeTags = make(map[string]bool)
}

// matchesQuery checks the text filter only. Titles, speakers and tags
// all count as match targets.
func (p *SearchPanel) matchesQuery(it *content.Item) bool {
	if len(p.query) == 0 {
		return true
	}
	q := strings.ToLower(string(p.query))
	if strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Speaker), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesTags requires every active tag to be present on the item.
func (p *SearchPanel) matchesTags(it *content.Item) bool {
	for tag := range p.activeTags {
		found := false
		for _, t := range it.Tags {
			if t == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Results returns the items passing both the text and tag filters, in
// library order.
func (p *SearchPanel) Results() []*content.Item {
	out := make([]*content.Item, 0, len(p.items))
	for _, it := range p.items {
		if p.matchesQuery(it) && p.matchesTags(it) {
			out = append(out, it)
		}
	}
	return out
}

// TagCounts returns facet counts over the items matching the current
// query, sorted by count descending then tag name. Tag filters do not
// narrow the counts, so turning one on still shows the alternatives.
func (p *SearchPanel) TagCounts() []TagCount {
	counts := make(map[string]int)
	for _, it := range p.items {
		if !p.matchesQuery(it) {
			continue
		}
		for _, tag := range it.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Draw renders the panel into bounds.
func (p *SearchPanel) Draw(ctx *Context, bounds Rect) {
	style := ctx.Style()
	dl := ctx.DrawList

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelColor)
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelBorderColor, style.BorderSize)

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	defer dl.PopClipRect()

	ctx.SetCursorPos(bounds.X+style.PanelPadding, bounds.Y+style.PanelPadding)
	width := bounds.W - style.PanelPadding*2

	ctx.Vertical(Gap(SpaceSM))(func() {
		p.drawSearchBox(ctx, width)
		p.drawTags(ctx, width)
		ctx.Separator()
		p.drawResults(ctx, width)
	})
}

func (p *SearchPanel) drawSearchBox(ctx *Context, width float32) {
	style := ctx.Style()
	id := ctx.GetID("search-box")
	focused := ctx.IsFocused(id)

	pos := ctx.ItemPos()
	h := ctx.lineHeight() + style.InputPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: width, H: h}

	bg := style.InputBgColor
	if focused {
		bg = style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, style.InputBorderColor, 1)

	if ctx.Input != nil && !ctx.HasActive() {
		if ctx.isClicked(rect) {
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

	textX := rect.X + style.InputPadding
	textY := rect.Y + style.InputPadding
	if len(p.query) == 0 && !focused {
		ctx.addText(textX, textY, "Search by title or speaker", style.TextDisabledColor)
	} else {
		ctx.addText(textX, textY, string(p.query), style.TextColor)
	}
	if focused {
		charW := style.CharWidth * style.FontScale
		ctx.DrawList.AddRect(textX+float32(p.cursor)*charW, textY, 2, ctx.lineHeight(),
			style.TextHighlightColor)
	}

	ctx.advanceCursor(Vec2{width, h})
}

func (p *SearchPanel) handleKeys(ctx *Context) {
	in := ctx.Input

	if in.KeyPressed(KeyEscape) {
		ctx.ClearFocus()
		return
	}
	if in.KeyPressed(KeyLeft) && p.cursor > 0 {
		p.cursor--
	}
	if in.KeyPressed(KeyRight) && p.cursor < len(p.query) {
		p.cursor++
	}
	if in.KeyPressed(KeyBackspace) && p.cursor > 0 {
		p.query = append(p.query[:p.cursor-1], p.query[p.cursor:]...)
		p.cursor--
	}
	if in.KeyPressed(KeyDelete) && p.cursor < len(p.query) {
		p.query = append(p.query[:p.cursor], p.query[p.cursor+1:]...)
	}

	if in.HasInputChars() {
		out := make([]rune, 0, len(p.query)+len(in.InputChars))
		out = append(out, p.query[:p.cursor]...)
		out = append(out, in.InputChars...)
		out = append(out, p.query[p.cursor:]...)
		p.query = out
		p.cursor += len(in.InputChars)
		in.ConsumeInputChars()
	}
}

func (p *SearchPanel) drawTags(ctx *Context, width float32) {
	tags := p.TagCounts()
	if len(tags) == 0 {
		return
	}
	ctx.Horizontal(Gap(SpaceSM))(func() {
		for _, tc := range tags {
			label := tc.Tag + " " + strconv.Itoa(tc.Count)
			if p.activeTags[tc.Tag] {
				label = "[" + label + "]"
			}
			if ctx.SmallButton(label, WithID("tag-"+tc.Tag)) {
				p.ToggleTag(tc.Tag)
			}
		}
	})
}

func (p *SearchPanel) drawResults(ctx *Context, width float32) {
	results := p.Results()
	if len(results) == 0 {
		ctx.TextDisabled("No matches")
		return
	}
	for _, it := range results {
		label := it.Title
		if it.Speaker != "" {
			label += "  " + it.Speaker
		}
		if ctx.Selectable(label, false, WithID("result-"+it.ID), WithWidth(width)) {
			if p.OnSelect != nil {
				p.OnSelect(it.ID)
			}
		}
	}
}
