// Package content loads and persists the GRACE media library: items shown
// in the gallery, worship songs, concept cards, news posts, per-item memos,
// and setlists. Library data is YAML on disk; memos and setlists are
// written back as YAML files.
package content

import (
	"fmt"
	"time"
)

// MediaKind says which detail tab an item opens on by default.
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindPDF   MediaKind = "pdf"
	KindLink  MediaKind = "link"
)

// Item is one entry in the gallery strip.
type Item struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Speaker   string    `yaml:"speaker,omitempty"`
	Date      string    `yaml:"date,omitempty"` // YYYY-MM-DD
	Tags      []string  `yaml:"tags,omitempty"`
	Thumbnail string    `yaml:"thumbnail,omitempty"` // Path relative to the library dir
	VideoURL  string    `yaml:"video,omitempty"`
	PDFPath   string    `yaml:"pdf,omitempty"`
	LinkURL   string    `yaml:"link,omitempty"`
	Default   MediaKind `yaml:"default,omitempty"`
}

// DefaultKind returns the tab the detail view opens on: the explicit
// default when set, otherwise the first medium the item carries.
func (it *Item) DefaultKind() MediaKind {
	if it.Default != "" {
		return it.Default
	}
	switch {
	case it.VideoURL != "":
		return KindVideo
	case it.PDFPath != "":
		return KindPDF
	default:
		return KindLink
	}
}

// HasKind reports whether the item carries the given medium.
func (it *Item) HasKind(k MediaKind) bool {
	switch k {
	case KindVideo:
		return it.VideoURL != ""
	case KindPDF:
		return it.PDFPath != ""
	case KindLink:
		return it.LinkURL != ""
	}
	return false
}

// Song is one worship song available to the setlist planner.
type Song struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Key         string   `yaml:"key,omitempty"` // Musical key, e.g. "G", "Em"
	BPM         int      `yaml:"bpm,omitempty"`
	DurationSec int      `yaml:"duration,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// ConceptCard is a short teaching note that links to related cards and
// to the gallery items it annotates.
type ConceptCard struct {
	ID    string   `yaml:"id"`
	Title string   `yaml:"title"`
	Body  string   `yaml:"body"`
	Tags  []string `yaml:"tags,omitempty"`
	Links []string `yaml:"links,omitempty"` // IDs of related cards
	Items []string `yaml:"items,omitempty"` // IDs of gallery items
}

// NewsPost is one entry in the news feed.
type NewsPost struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Body     string    `yaml:"body" json:"body"`
	Author   string    `yaml:"author,omitempty" json:"author,omitempty"`
	PostedAt time.Time `yaml:"posted_at" json:"posted_at"`
}

// Memo is free-form text attached to a gallery item.
type Memo struct {
	ItemID    string    `yaml:"item_id"`
	Text      string    `yaml:"text"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// SetlistEntry is one song slot in a setlist. Key overrides the song's
// catalog key for this service; Note is free text for the band.
type SetlistEntry struct {
	SongID string `yaml:"song"`
	Key    string `yaml:"key,omitempty"`
	Note   string `yaml:"note,omitempty"`
}

// Setlist is an ordered selection of songs for one service.
type Setlist struct {
	ID      string         `yaml:"id"`
	Name    string         `yaml:"name"`
	Date    string         `yaml:"date,omitempty"` // YYYY-MM-DD
	Entries []SetlistEntry `yaml:"entries"`
}

// SongIDs returns the entry song IDs in order.
func (s *Setlist) SongIDs() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.SongID
	}
	return out
}

// TotalDuration sums the durations of the listed songs, skipping unknown IDs.
func (s *Setlist) TotalDuration(songs map[string]*Song) time.Duration {
	var total time.Duration
	for _, e := range s.Entries {
		if song, ok := songs[e.SongID]; ok {
			total += time.Duration(song.DurationSec) * time.Second
		}
	}
	return total
}

// validate checks the fields every item must carry.
func (it *Item) validate() error {
	if it.ID == "" {
		return fmt.Errorf("item %q: missing id", it.Title)
	}
	if it.Title == "" {
		return fmt.Errorf("item %s: missing title", it.ID)
	}
	if it.VideoURL == "" && it.PDFPath == "" && it.LinkURL == "" {
		return fmt.Errorf("item %s: needs at least one of video, pdf, link", it.ID)
	}
	if it.Default != "" && !it.HasKind(it.Default) {
		return fmt.Errorf("item %s: default tab %q has no content", it.ID, it.Default)
	}
	return nil
}

func (s *Song) validate() error {
	if s.ID == "" {
		return fmt.Errorf("song %q: missing id", s.Title)
	}
	if s.Title == "" {
		return fmt.Errorf("song %s: missing title", s.ID)
	}
	if s.DurationSec < 0 {
		return fmt.Errorf("song %s: negative duration", s.ID)
	}
	return nil
}

func (c *ConceptCard) validate() error {
	if c.ID == "" {
		return fmt.Errorf("concept card %q: missing id", c.Title)
	}
	if c.Title == "" {
		return fmt.Errorf("concept card %s: missing title", c.ID)
	}
	return nil
}
