package grace_test

import (
	"testing"

	grace "github.com/eunyuson/GRACE-sub000"
	"github.com/eunyuson/GRACE-sub000/content"
)

func searchItems() []*content.Item {
	return []*content.Item{
		{ID: "easter", Title: "Easter Service", Speaker: "Pastor Kim", Tags: []string{"service", "easter"}},
		{ID: "psalms-1", Title: "Psalms Study 1", Speaker: "Elder Park", Tags: []string{"study", "psalms"}},
		{ID: "psalms-2", Title: "Psalms Study 2", Speaker: "Elder Park", Tags: []string{"study", "psalms"}},
		{ID: "christmas", Title: "Christmas Eve", Speaker: "Pastor Kim", Tags: []string{"service"}},
	}
}

func TestSearchPanelQueryFiltersTitleAndSpeaker(t *testing.T) {
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())

	if got := len(panel.Results()); got != 4 {
		t.Fatalf("empty query should match everything, got %d", got)
	}

	panel.SetQuery("psalms")
	results := panel.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 psalms matches, got %d", len(results))
	}

	// Speaker matches too, case-insensitive
	panel.SetQuery("pastor KIM")
	results = panel.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 speaker matches, got %d", len(results))
	}
	if results[0].ID != "easter" || results[1].ID != "christmas" {
		t.Errorf("wrong results: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestSearchPanelQueryMatchesTags(t *testing.T) {
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())

	// "service" is in the easter title but only in the christmas tags
	panel.SetQuery("service")
	results := panel.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(results))
	}
	if results[0].ID != "easter" || results[1].ID != "christmas" {
		t.Errorf("wrong results: %s, %s", results[0].ID, results[1].ID)
	}
}

func TestSearchPanelTagFilter(t *testing.T) {
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())

	panel.ToggleTag("service")
	results := panel.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 service items, got %d", len(results))
	}

	// Multiple tags are ANDed
	panel.ToggleTag("easter")
	results = panel.Results()
	if len(results) != 1 || results[0].ID != "easter" {
		t.Fatalf("expected only the easter item, got %d results", len(results))
	}

	// Toggle off restores the wider set
	panel.ToggleTag("easter")
	if got := len(panel.Results()); got != 2 {
		t.Errorf("expected 2 after untoggling, got %d", got)
	}
}

func TestSearchPanelTagCounts(t *testing.T) {
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())

	counts := panel.TagCounts()
	if len(counts) != 4 {
		t.Fatalf("expected 4 distinct tags, got %d", len(counts))
	}
	// service and study both count 2; ties break alphabetically
	if counts[0].Tag != "service" || counts[0].Count != 2 {
		t.Errorf("expected service 2 first, got %s %d", counts[0].Tag, counts[0].Count)
	}
	if counts[1].Tag != "study" || counts[1].Count != 2 {
		t.Errorf("expected study 2 second, got %s %d", counts[1].Tag, counts[1].Count)
	}

	// Counts follow the query
	panel.SetQuery("psalms")
	counts = panel.TagCounts()
	for _, tc := range counts {
		if tc.Tag == "service" {
			t.Error("service should not appear for a psalms query")
		}
	}
}

func TestSearchPanelSetItemsDropsStaleTags(t *testing.T) {
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())
	panel.ToggleTag("easter")

	panel.SetItems(searchItems()[1:3]) // Psalms studies only
	if panel.TagActive("easter") {
		t.Error("tags absent from the new item set should be dropped")
	}
}

func TestSearchPanelTyping(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())

	bounds := grace.Rect{X: 0, Y: 0, W: 400, H: 300}

	// Click the search box to focus it: box spans y=8..24
	input.SetMousePos(100, 15)
	input.SetMouseButton(grace.MouseButtonLeft, true)
	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, bounds)
	_ = ui.End()

	input.Reset()
	input.SetMouseButton(grace.MouseButtonLeft, false)
	ctx = ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, bounds)
	_ = ui.End()

	input.Reset()
	input.AddInputChar('e')
	input.AddInputChar('a')
	ctx = ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, bounds)
	_ = ui.End()

	if panel.Query() != "ea" {
		t.Errorf("expected query %q, got %q", "ea", panel.Query())
	}

	input.Reset()
	input.SetKey(grace.KeyBackspace, true)
	ctx = ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, bounds)
	_ = ui.End()

	if panel.Query() != "e" {
		t.Errorf("expected query %q after backspace, got %q", "e", panel.Query())
	}
}

func TestSearchPanelClickSelectsResult(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())

	var selected string
	panel.OnSelect = func(itemID string) { selected = itemID }

	// Default style: search box y=8..24, tag row 28..40, separator
	// 44..47, first result row 51..59.
	input.SetMousePos(50, 55)
	input.SetMouseButton(grace.MouseButtonLeft, true)
	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	panel.Draw(ctx, grace.Rect{X: 0, Y: 0, W: 400, H: 300})
	_ = ui.End()

	if selected != "easter" {
		t.Errorf("expected click to select easter, got %q", selected)
	}
}

func TestSearchPanelClear(t *testing.T) {
	panel := grace.NewSearchPanel()
	panel.SetItems(searchItems())
	panel.SetQuery("psalms")
	panel.ToggleTag("study")

	panel.Clear()
	if panel.Query() != "" {
		t.Error("Clear should empty the query")
	}
	if panel.TagActive("study") {
		t.Error("Clear should drop tag filters")
	}
	if got := len(panel.Results()); got != 4 {
		t.Errorf("expected all items after Clear, got %d", got)
	}
}
