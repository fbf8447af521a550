package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// libraryFile is the library's main document inside the content directory.
const libraryFile = "library.yaml"

// newsFile holds locally cached news posts.
const newsFile = "news.yaml"

// Library is the loaded, validated content set. It is immutable after
// Load; the watcher swaps in a fresh Library on file changes.
type Library struct {
	Items    []*Item
	Songs    []*Song
	Concepts []*ConceptCard
	News     []*NewsPost

	Dir string // Directory the library was loaded from

	itemsByID    map[string]*Item
	songsByID    map[string]*Song
	conceptsByID map[string]*ConceptCard
}

// libraryDoc is the on-disk shape of library.yaml.
type libraryDoc struct {
	Items    []*Item        `yaml:"items"`
	Songs    []*Song        `yaml:"songs,omitempty"`
	Concepts []*ConceptCard `yaml:"concepts,omitempty"`
}

type newsDoc struct {
	Posts []*NewsPost `yaml:"posts"`
}

// Load reads and validates the library from dir. A missing news file is
// not an error; a missing library file is.
func Load(dir string) (*Library, error) {
	path := filepath.Join(dir, libraryFile)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	var doc libraryDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", libraryFile, err)
	}

	lib := &Library{
		Items:        doc.Items,
		Songs:        doc.Songs,
		Concepts:     doc.Concepts,
		Dir:          dir,
		itemsByID:    make(map[string]*Item, len(doc.Items)),
		songsByID:    make(map[string]*Song, len(doc.Songs)),
		conceptsByID: make(map[string]*ConceptCard, len(doc.Concepts)),
	}

	if err := lib.index(); err != nil {
		return nil, err
	}

	if err := lib.loadNews(); err != nil {
		return nil, err
	}

	slog.Info("library loaded",
		"dir", dir,
		"items", len(lib.Items),
		"songs", len(lib.Songs),
		"concepts", len(lib.Concepts),
		"news", len(lib.News))
	return lib, nil
}

// index validates entries and builds the ID lookups.
func (l *Library) index() error {
	for _, it := range l.Items {
		if err := it.validate(); err != nil {
			return fmt.Errorf("library: %w", err)
		}
		if _, dup := l.itemsByID[it.ID]; dup {
			return fmt.Errorf("library: duplicate item id %s", it.ID)
		}
		l.itemsByID[it.ID] = it
	}
	for _, s := range l.Songs {
		if err := s.validate(); err != nil {
			return fmt.Errorf("library: %w", err)
		}
		if _, dup := l.songsByID[s.ID]; dup {
			return fmt.Errorf("library: duplicate song id %s", s.ID)
		}
		l.songsByID[s.ID] = s
	}
	for _, c := range l.Concepts {
		if err := c.validate(); err != nil {
			return fmt.Errorf("library: %w", err)
		}
		if _, dup := l.conceptsByID[c.ID]; dup {
			return fmt.Errorf("library: duplicate concept id %s", c.ID)
		}
		l.conceptsByID[c.ID] = c
	}

	// Concept links must resolve; a broken link is a content error worth
	// failing loud on, since the graph view walks them blindly.
	for _, c := range l.Concepts {
		for _, target := range c.Links {
			if _, ok := l.conceptsByID[target]; !ok {
				return fmt.Errorf("library: concept %s links to unknown card %s", c.ID, target)
			}
		}
	}
	return nil
}

func (l *Library) loadNews() error {
	raw, err := os.ReadFile(filepath.Join(l.Dir, newsFile))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read news: %w", err)
	}
	var doc newsDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", newsFile, err)
	}
	l.News = doc.Posts
	return nil
}

// ItemByID returns the item with the given ID, or nil.
func (l *Library) ItemByID(id string) *Item {
	return l.itemsByID[id]
}

// SongByID returns the song with the given ID, or nil.
func (l *Library) SongByID(id string) *Song {
	return l.songsByID[id]
}

// SongsByID returns the song lookup map. Callers must not modify it.
func (l *Library) SongsByID() map[string]*Song {
	return l.songsByID
}

// ConceptByID returns the concept card with the given ID, or nil.
func (l *Library) ConceptByID(id string) *ConceptCard {
	return l.conceptsByID[id]
}

// ThumbnailPath resolves an item's thumbnail relative to the library dir.
// Returns "" when the item has no thumbnail.
func (l *Library) ThumbnailPath(it *Item) string {
	if it == nil || it.Thumbnail == "" {
		return ""
	}
	return filepath.Join(l.Dir, it.Thumbnail)
}
