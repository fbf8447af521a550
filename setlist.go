package grace

import (
	"fmt"
	"time"

	"github.com/eunyuson/GRACE-sub000/content"
)

// SetlistRepo persists setlists. content.SetlistStore satisfies it.
type SetlistRepo interface {
	Save(list *content.Setlist) error
	Delete(id string) error
	LoadAll() ([]*content.Setlist, error)
}

// SetlistPlanner builds ordered song lists for upcoming services. Songs
// come from the library; lists persist through a SetlistRepo.
type SetlistPlanner struct {
	repo      SetlistRepo
	songs     []*content.Song
	songsByID map[string]*content.Song

	lists   []*content.Setlist
	current int // Index into lists, -1 when none selected

	// OnSaved fires after a successful save, for toast notifications.
	OnSaved func(name string)
}

// NewSetlistPlanner creates a planner backed by the given store.
func NewSetlistPlanner(repo SetlistRepo) *SetlistPlanner {
	return &SetlistPlanner{repo: repo, current: -1, songsByID: make(map[string]*content.Song)}
}

// SetSongs replaces the available song pool, typically after a library load.
func (p *SetlistPlanner) SetSongs(songs []*content.Song) {
	p.songs = songs
	p.songsByID = make(map[string]*content.Song, len(songs))
	for _, s := range songs {
		p.songsByID[s.ID] = s
	}
}

// Load reads all saved setlists from the store.
func (p *SetlistPlanner) Load() error {
	if p.repo == nil {
		return nil
	}
	lists, err := p.repo.LoadAll()
	if err != nil {
		return fmt.Errorf("load setlists: %w", err)
	}
	p.lists = lists
	p.current = -1
	return nil
}

// Lists returns the loaded setlists.
func (p *SetlistPlanner) Lists() []*content.Setlist {
	return p.lists
}

// NewList creates a setlist and selects it. The store assigns an ID on
// first save.
func (p *SetlistPlanner) NewList(name, date string) *content.Setlist {
	list := &content.Setlist{Name: name, Date: date}
	p.lists = append(p.lists, list)
	p.current = len(p.lists) - 1
	return list
}

// Select makes the i-th list current. Out-of-range deselects.
func (p *SetlistPlanner) Select(i int) {
	if i < 0 || i >= len(p.lists) {
		p.current = -1
		return
	}
	p.current = i
}

// Current returns the selected setlist, or nil.
func (p *SetlistPlanner) Current() *content.Setlist {
	if p.current < 0 || p.current >= len(p.lists) {
		return nil
	}
	return p.lists[p.current]
}

// AddSong appends a song to the current list. Unknown songs and missing
// selection are rejected.
func (p *SetlistPlanner) AddSong(songID string) bool {
	list := p.Current()
	if list == nil {
		return false
	}
	if _, ok := p.songsByID[songID]; !ok {
		return false
	}
	list.Entries = append(list.Entries, content.SetlistEntry{SongID: songID})
	return true
}

// RemoveSong deletes the i-th entry of the current list.
func (p *SetlistPlanner) RemoveSong(i int) bool {
	list := p.Current()
	if list == nil || i < 0 || i >= len(list.Entries) {
		return false
	}
	list.Entries = append(list.Entries[:i], list.Entries[i+1:]...)
	return true
}

// MoveSong shifts the i-th entry by delta positions, clamped to the list.
func (p *SetlistPlanner) MoveSong(i, delta int) bool {
	list := p.Current()
	if list == nil || i < 0 || i >= len(list.Entries) {
		return false
	}
	j := i + delta
	if j < 0 || j >= len(list.Entries) || j == i {
		return false
	}
	list.Entries[i], list.Entries[j] = list.Entries[j], list.Entries[i]
	return true
}

// SetEntryKey overrides the performance key for the i-th entry. An empty
// key falls back to the song's default.
func (p *SetlistPlanner) SetEntryKey(i int, key string) bool {
	list := p.Current()
	if list == nil || i < 0 || i >= len(list.Entries) {
		return false
	}
	list.Entries[i].Key = key
	return true
}

// TotalDuration returns the running time of the current list.
func (p *SetlistPlanner) TotalDuration() time.Duration {
	list := p.Current()
	if list == nil {
		return 0
	}
	return list.TotalDuration(p.songsByID)
}

// Save persists the current list.
func (p *SetlistPlanner) Save() error {
	list := p.Current()
	if list == nil {
		return fmt.Errorf("no setlist selected")
	}
	if p.repo == nil {
		return fmt.Errorf("no setlist store configured")
	}
	if err := p.repo.Save(list); err != nil {
		return fmt.Errorf("save setlist %q: %w", list.Name, err)
	}
	if p.OnSaved != nil {
		p.OnSaved(list.Name)
	}
	return nil
}

// DeleteCurrent removes the selected list from the store and memory.
func (p *SetlistPlanner) DeleteCurrent() error {
	list := p.Current()
	if list == nil {
		return nil
	}
	if p.repo != nil && list.ID != "" {
		if err := p.repo.Delete(list.ID); err != nil {
			return fmt.Errorf("delete setlist %q: %w", list.Name, err)
		}
	}
	p.lists = append(p.lists[:p.current], p.lists[p.current+1:]...)
	p.current = -1
	return nil
}

// Draw renders the planner into bounds.
func (p *SetlistPlanner) Draw(ctx *Context, bounds Rect) {
	style := ctx.Style()
	dl := ctx.DrawList

	dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelColor)
	dl.AddRectOutline(bounds.X, bounds.Y, bounds.W, bounds.H, style.PanelBorderColor, style.BorderSize)

	dl.PushClipRect(bounds.X, bounds.Y, bounds.X+bounds.W, bounds.Y+bounds.H)
	defer dl.PopClipRect()

	ctx.SetCursorPos(bounds.X+style.PanelPadding, bounds.Y+style.PanelPadding)
	width := bounds.W - style.PanelPadding*2

	if p.Current() == nil {
		p.drawListIndex(ctx, width)
		return
	}
	p.drawEditor(ctx, width)
}

func (p *SetlistPlanner) drawListIndex(ctx *Context, width float32) {
	style := ctx.Style()
	ctx.Vertical(Gap(SpaceSM))(func() {
		headerColor := style.PanelHeaderTextColor
		if headerColor == 0 {
			headerColor = style.TextColor
		}
		ctx.TextColored("Setlists", headerColor)
		ctx.Separator()

		for i, list := range p.lists {
			label := list.Name
			if list.Date != "" {
				label += "  " + list.Date
			}
			if ctx.Selectable(label, false, WithID("setlist-"+list.Name), WithWidth(width)) {
				p.Select(i)
			}
		}

		if ctx.Button("New setlist", WithID("setlist-new")) {
			p.NewList("Untitled", "")
		}
	})
}

func (p *SetlistPlanner) drawEditor(ctx *Context, width float32) {
	style := ctx.Style()
	list := p.Current()

	ctx.Vertical(Gap(SpaceSM))(func() {
		ctx.Horizontal(Gap(SpaceMD))(func() {
			if ctx.SmallButton("< Lists", WithID("setlist-back")) {
				p.Select(-1)
				return
			}
			ctx.TextColored(list.Name, style.TextHighlightColor)
			ctx.TextDisabled(formatDuration(p.TotalDuration()))
		})
		ctx.Separator()

		if p.Current() == nil {
			return
		}

		for i := range list.Entries {
			p.drawEntry(ctx, list, i)
		}
		if len(list.Entries) == 0 {
			ctx.TextDisabled("No songs yet")
		}

		ctx.Spacing(SpaceMD)
		ctx.TextDisabled("Available songs")
		for _, song := range p.songs {
			ctx.Horizontal(Gap(SpaceSM))(func() {
				if ctx.SmallButton("+", WithID("add-"+song.ID)) {
					p.AddSong(song.ID)
				}
				label := song.Title
				if song.Key != "" {
					label += "  (" + song.Key + ")"
				}
				ctx.Text(label)
			})
		}

		ctx.Spacing(SpaceMD)
		ctx.Horizontal(Gap(SpaceSM))(func() {
			if ctx.Button("Save", WithID("setlist-save")) {
				if err := p.Save(); err != nil {
					uiLogger.Warn("setlist save failed", "err", err)
				}
			}
			if ctx.Button("Delete", WithID("setlist-delete")) {
				if err := p.DeleteCurrent(); err != nil {
					uiLogger.Warn("setlist delete failed", "err", err)
				}
			}
		})
	})
}

func (p *SetlistPlanner) drawEntry(ctx *Context, list *content.Setlist, i int) {
	entry := list.Entries[i]
	song := p.songsByID[entry.SongID]
	title := entry.SongID
	key := entry.Key
	var dur time.Duration
	if song != nil {
		title = song.Title
		dur = time.Duration(song.DurationSec) * time.Second
		if key == "" {
			key = song.Key
		}
	}

	idx := fmt.Sprintf("%d", i)
	ctx.Horizontal(Gap(SpaceSM))(func() {
		if ctx.SmallButton("^", WithID("up-"+idx), WithDisabled(i == 0)) {
			p.MoveSong(i, -1)
		}
		if ctx.SmallButton("v", WithID("down-"+idx), WithDisabled(i == len(list.Entries)-1)) {
			p.MoveSong(i, 1)
		}
		if ctx.SmallButton("x", WithID("del-"+idx)) {
			p.RemoveSong(i)
		}
		ctx.Text(title)
		if key != "" {
			ctx.TextDisabled("(" + key + ")")
		}
		if dur > 0 {
			ctx.TextDisabled(formatDuration(dur))
		}
		if entry.Note != "" {
			ctx.TextDisabled(entry.Note)
		}
	})
}

// formatDuration renders a song or setlist length as m:ss.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
