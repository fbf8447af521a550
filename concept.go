package grace

import (
	"strings"

	"github.com/eunyuson/GRACE-sub000/content"
)

// ConceptPanel browses the teaching concept cards. Cards link to related
// cards; following a link pushes onto a breadcrumb trail so Back retraces
// the reader's path.
type ConceptPanel struct {
	cards []*content.ConceptCard
	byID  map[string]*content.ConceptCard
	graph *content.ConceptGraph
	trail []string
}

// NewConceptPanel creates an empty panel.
func NewConceptPanel() *ConceptPanel {
	return &ConceptPanel{byID: make(map[string]*content.ConceptCard)}
}

// SetCards replaces the card set, typically after a library load. The
// trail resets since old IDs may no longer resolve.
func (p *ConceptPanel) SetCards(cards []*content.ConceptCard) {
	p.cards = cards
	p.byID = make(map[string]*content.ConceptCard, len(cards))
	for _, c := range cards {
		p.byID[c.ID] = c
	}
	p.graph = content.BuildConceptGraph(cards)
	p.trail = p.trail[:0]
}

// CardsForItem returns the concept cards that annotate a gallery item.
func (p *ConceptPanel) CardsForItem(itemID string) []*content.ConceptCard {
	if p.graph == nil {
		return nil
	}
	return p.graph.CardsForItem(itemID)
}

// Show navigates to a card by ID. Unknown IDs are ignored. Scroll
// position is per card and starts at the top for a freshly shown one.
func (p *ConceptPanel) Show(id string) bool {
	if _, ok := p.byID[id]; !ok {
		return false
	}
	p.trail = append(p.trail, id)
	return true
}

// Back pops the trail, returning to the previous card or the index.
func (p *ConceptPanel) Back() bool {
	if len(p.trail) == 0 {
		return false
	}
	p.trail = p.trail[:len(p.trail)-1]
	return true
}

// Current returns the card being shown, or nil at the index.
func (p *ConceptPanel) Current() *content.ConceptCard {
	if len(p.trail) == 0 {
		return nil
	}
	return p.byID[p.trail[len(p.trail)-1]]
}

// Depth returns how many cards deep the trail is.
func (p *ConceptPanel) Depth() int {
	return len(p.trail)
}

// Draw renders the panel into bounds.
func (p *ConceptPanel) Draw(ctx *Context, bounds Rect) {
	style := ctx.Style()
	dl := ctx.DrawList

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelColor)
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelBorderColor, style.BorderSize)

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	defer dl.PopClipRect()

	ctx.SetCursorPos(bounds.X+style.PanelPadding, bounds.Y+style.PanelPadding)

	if card := p.Current(); card != nil {
		p.drawCard(ctx, card, bounds)
		return
	}
	p.drawIndex(ctx, bounds.W-style.PanelPadding*2)
}

func (p *ConceptPanel) drawIndex(ctx *Context, width float32) {
	style := ctx.Style()
	ctx.Vertical(Gap(SpaceSM))(func() {
		headerColor := style.PanelHeaderTextColor
		if headerColor == 0 {
			headerColor = style.TextColor
		}
		ctx.TextColored("Concepts", headerColor)
		ctx.Separator()

		if len(p.cards) == 0 {
			ctx.TextDisabled("No concept cards in the library")
			return
		}
		for _, card := range p.cards {
			if ctx.Selectable(card.Title, false, WithID("concept-"+card.ID), WithWidth(width)) {
				p.Show(card.ID)
			}
		}
	})
}

func (p *ConceptPanel) drawCard(ctx *Context, card *content.ConceptCard, bounds Rect) {
	style := ctx.Style()
	width := bounds.W - style.PanelPadding*2

	header := ctx.Vertical(Gap(SpaceSM))(func() {
		ctx.Horizontal(Gap(SpaceMD))(func() {
			if ctx.SmallButton("< Back", WithID("concept-back")) {
				p.Back()
			}
			ctx.TextColored(card.Title, style.TextHighlightColor)
		})
		ctx.Separator()
	})

	body := Rect{
		X: bounds.X + style.PanelPadding,
		Y: header.Y + header.H + SpaceSM,
		W: width,
	}
	body.H = bounds.Y + bounds.H - body.Y - style.PanelPadding

	// Scroll position is keyed per card; it survives link navigation and
	// is forgotten once the card stops drawing.
	scroll := scrollStates.Get(ctx.GetID("concept-card-" + card.ID))
	if ctx.Input != nil && ctx.isHovered(body) && !ctx.HasActive() {
		if wheel := ctx.Input.MouseWheelY; wheel != 0 {
			scroll.TargetScrollY -= wheel * ctx.lineHeight() * 3
			ctx.WantCaptureMouse = true
		}
	}
	scroll.UpdateSmooth(ctx.DeltaTime)

	dl := ctx.DrawList
	dl.PushClipRect(body.X, body.Y, body.X+body.W, body.Y+body.H)
	defer dl.PopClipRect()

	ctx.SetCursorPos(body.X, body.Y-scroll.ScrollY)
	area := ctx.Vertical(Gap(SpaceSM))(func() {
		if len(card.Tags) > 0 {
			ctx.TextDisabled(strings.Join(card.Tags, ", "))
		}
		ctx.TextWrapped(card.Body, width)

		related := p.graph.Related(card.ID)
		if len(related) == 0 {
			return
		}
		ctx.Spacing(SpaceMD)
		ctx.TextDisabled("Related")
		for _, linked := range related {
			if ctx.Selectable(linked.Title, false, WithID("concept-link-"+linked.ID), WithWidth(width)) {
				p.Show(linked.ID)
			}
		}
	})

	scroll.ContentHeight = area.H
	scroll.TargetScrollY = clampScroll(scroll.TargetScrollY, area.H, body.H)
}
