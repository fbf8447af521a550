package grace_test

import (
	"testing"

	grace "github.com/eunyuson/GRACE-sub000"
	"github.com/eunyuson/GRACE-sub000/content"
)

func conceptCards() []*content.ConceptCard {
	return []*content.ConceptCard{
		{ID: "grace", Title: "Grace", Body: "Unmerited favor.", Links: []string{"covenant"}},
		{ID: "covenant", Title: "Covenant", Body: "A binding promise.", Links: []string{"grace"}},
		{ID: "psalm", Title: "Psalm", Body: "A sacred song."},
	}
}

func TestConceptPanelNavigation(t *testing.T) {
	panel := grace.NewConceptPanel()
	panel.SetCards(conceptCards())

	if panel.Current() != nil {
		t.Fatal("panel should start at the index")
	}

	if !panel.Show("grace") {
		t.Fatal("Show should accept a known ID")
	}
	if got := panel.Current(); got == nil || got.ID != "grace" {
		t.Fatalf("expected grace, got %v", got)
	}

	if !panel.Show("covenant") {
		t.Fatal("Show should follow a link")
	}
	if panel.Depth() != 2 {
		t.Errorf("expected trail depth 2, got %d", panel.Depth())
	}

	if !panel.Back() {
		t.Fatal("Back should pop the trail")
	}
	if got := panel.Current(); got == nil || got.ID != "grace" {
		t.Errorf("Back should return to grace, got %v", got)
	}

	panel.Back()
	if panel.Current() != nil {
		t.Error("Back from depth 1 should return to the index")
	}
	if panel.Back() {
		t.Error("Back at the index should report false")
	}
}

func TestConceptPanelRejectsUnknownID(t *testing.T) {
	panel := grace.NewConceptPanel()
	panel.SetCards(conceptCards())

	if panel.Show("missing") {
		t.Error("Show should reject an unknown ID")
	}
	if panel.Depth() != 0 {
		t.Errorf("failed Show should not grow the trail, depth=%d", panel.Depth())
	}
}

func TestConceptPanelSetCardsResetsTrail(t *testing.T) {
	panel := grace.NewConceptPanel()
	panel.SetCards(conceptCards())
	panel.Show("grace")

	panel.SetCards(conceptCards()[:1])
	if panel.Depth() != 0 {
		t.Error("replacing cards should reset the trail")
	}
}

func TestConceptPanelCardsForItem(t *testing.T) {
	cards := conceptCards()
	cards[0].Items = []string{"easter-2026"}
	panel := grace.NewConceptPanel()
	panel.SetCards(cards)

	got := panel.CardsForItem("easter-2026")
	if len(got) != 1 || got[0].ID != "grace" {
		t.Errorf("expected grace to annotate easter-2026, got %v", got)
	}
	if panel.CardsForItem("unknown") != nil {
		t.Error("unknown item should have no cards")
	}
}

func TestConceptPanelClickOpensCard(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	panel := grace.NewConceptPanel()
	panel.SetCards(conceptCards())

	bounds := grace.Rect{X: 0, Y: 0, W: 400, H: 300}

	// Default style: padding 8, "Concepts" line 8px, gap 4, separator 3,
	// gap 4. First row spans y=27..35.
	input.SetMousePos(50, 30)
	input.SetMouseButton(grace.MouseButtonLeft, true)

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, bounds)
	_ = ui.End()

	if got := panel.Current(); got == nil || got.ID != "grace" {
		t.Errorf("click on the first row should open grace, got %v", got)
	}
}

func TestConceptPanelDrawCardView(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	panel := grace.NewConceptPanel()
	panel.SetCards(conceptCards())
	panel.Show("grace")

	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, grace.Rect{X: 0, Y: 0, W: 400, H: 300})
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}
