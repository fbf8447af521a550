package grace_test

import (
	"errors"
	"testing"
	"time"

	grace "github.com/eunyuson/GRACE-sub000"
	"github.com/eunyuson/GRACE-sub000/content"
)

type fakeSetlistRepo struct {
	saved   []*content.Setlist
	deleted []string
	lists   []*content.Setlist
	err     error
}

func (f *fakeSetlistRepo) Save(list *content.Setlist) error {
	if f.err != nil {
		return f.err
	}
	if list.ID == "" {
		list.ID = "generated-id"
	}
	f.saved = append(f.saved, list)
	return nil
}

func (f *fakeSetlistRepo) Delete(id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSetlistRepo) LoadAll() ([]*content.Setlist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lists, nil
}

func plannerSongs() []*content.Song {
	return []*content.Song{
		{ID: "amazing-grace", Title: "Amazing Grace", Key: "G", DurationSec: 240},
		{ID: "doxology", Title: "Doxology", Key: "D", DurationSec: 95},
	}
}

func TestSetlistPlannerBuildList(t *testing.T) {
	planner := grace.NewSetlistPlanner(&fakeSetlistRepo{})
	planner.SetSongs(plannerSongs())

	list := planner.NewList("Sunday Service", "2026-09-06")
	if planner.Current() != list {
		t.Fatal("NewList should select the new list")
	}

	if !planner.AddSong("amazing-grace") {
		t.Fatal("AddSong should accept a known song")
	}
	if !planner.AddSong("doxology") {
		t.Fatal("AddSong should accept a second song")
	}
	if planner.AddSong("unknown") {
		t.Error("AddSong should reject an unknown song")
	}

	want := 335 * time.Second
	if got := planner.TotalDuration(); got != want {
		t.Errorf("expected total %v, got %v", want, got)
	}
}

func TestSetlistPlannerReorder(t *testing.T) {
	planner := grace.NewSetlistPlanner(&fakeSetlistRepo{})
	planner.SetSongs(plannerSongs())
	planner.NewList("Sunday", "")
	planner.AddSong("amazing-grace")
	planner.AddSong("doxology")

	if !planner.MoveSong(0, 1) {
		t.Fatal("MoveSong down should succeed")
	}
	list := planner.Current()
	if list.Entries[0].SongID != "doxology" || list.Entries[1].SongID != "amazing-grace" {
		t.Errorf("wrong order after move: %v", list.SongIDs())
	}

	if planner.MoveSong(0, -1) {
		t.Error("moving the first entry up should fail")
	}
	if planner.MoveSong(1, 1) {
		t.Error("moving the last entry down should fail")
	}

	if !planner.RemoveSong(0) {
		t.Fatal("RemoveSong should succeed")
	}
	if len(list.Entries) != 1 || list.Entries[0].SongID != "amazing-grace" {
		t.Errorf("wrong list after remove: %v", list.SongIDs())
	}
}

func TestSetlistPlannerEntryKeyOverride(t *testing.T) {
	planner := grace.NewSetlistPlanner(&fakeSetlistRepo{})
	planner.SetSongs(plannerSongs())
	planner.NewList("Sunday", "")
	planner.AddSong("amazing-grace")

	if !planner.SetEntryKey(0, "A") {
		t.Fatal("SetEntryKey should succeed for a valid entry")
	}
	if got := planner.Current().Entries[0].Key; got != "A" {
		t.Errorf("expected key A, got %q", got)
	}
	if planner.SetEntryKey(1, "B") {
		t.Error("SetEntryKey should fail out of range")
	}
}

func TestSetlistPlannerSave(t *testing.T) {
	repo := &fakeSetlistRepo{}
	planner := grace.NewSetlistPlanner(repo)
	planner.SetSongs(plannerSongs())

	var savedName string
	planner.OnSaved = func(name string) { savedName = name }

	if err := planner.Save(); err == nil {
		t.Error("Save with no selection should fail")
	}

	planner.NewList("Sunday", "2026-09-06")
	planner.AddSong("doxology")
	if err := planner.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 save, got %d", len(repo.saved))
	}
	if planner.Current().ID != "generated-id" {
		t.Error("store-assigned ID should stick to the list")
	}
	if savedName != "Sunday" {
		t.Errorf("expected OnSaved for Sunday, got %q", savedName)
	}
}

func TestSetlistPlannerDelete(t *testing.T) {
	repo := &fakeSetlistRepo{}
	planner := grace.NewSetlistPlanner(repo)
	planner.NewList("Sunday", "")
	if err := planner.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := planner.DeleteCurrent(); err != nil {
		t.Fatalf("DeleteCurrent failed: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "generated-id" {
		t.Errorf("expected delete of generated-id, got %v", repo.deleted)
	}
	if len(planner.Lists()) != 0 {
		t.Errorf("deleted list should leave the planner, got %d lists", len(planner.Lists()))
	}
	if planner.Current() != nil {
		t.Error("delete should deselect")
	}
}

func TestSetlistPlannerLoad(t *testing.T) {
	repo := &fakeSetlistRepo{lists: []*content.Setlist{
		{ID: "s1", Name: "Christmas Eve", Date: "2026-12-24"},
	}}
	planner := grace.NewSetlistPlanner(repo)

	if err := planner.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(planner.Lists()) != 1 || planner.Lists()[0].Name != "Christmas Eve" {
		t.Errorf("wrong lists after load: %v", planner.Lists())
	}

	repo.err = errors.New("io error")
	if err := planner.Load(); err == nil {
		t.Error("Load should surface store errors")
	}
}

func TestSetlistPlannerDraw(t *testing.T) {
	ui := grace.New(&mockRenderer{})
	input := grace.NewInputState()
	planner := grace.NewSetlistPlanner(&fakeSetlistRepo{})
	planner.SetSongs(plannerSongs())

	bounds := grace.Rect{X: 0, Y: 0, W: 500, H: 400}

	// Index view, then editor view
	ctx := ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	planner.Draw(ctx, bounds)
	_ = ui.End()

	planner.NewList("Sunday", "")
	planner.AddSong("amazing-grace")
	ctx = ui.Begin(input, grace.Vec2{X: 800, Y: 600}, 0.016)
	planner.Draw(ctx, bounds)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}
