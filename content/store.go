package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MemoStore persists per-item memos as one YAML file per item under
// <dir>/memos/. Writes go through a temp file so a crash mid-save cannot
// truncate an existing memo.
type MemoStore struct {
	dir string
	log *slog.Logger
}

// NewMemoStore creates the store, making the memo directory if needed.
func NewMemoStore(dir string) (*MemoStore, error) {
	memoDir := filepath.Join(dir, "memos")
	if err := os.MkdirAll(memoDir, 0o755); err != nil {
		return nil, fmt.Errorf("create memo dir: %w", err)
	}
	return &MemoStore{
		dir: memoDir,
		log: slog.With("component", "memo-store"),
	}, nil
}

// SaveMemo writes the memo text for an item. Empty text deletes the file.
func (s *MemoStore) SaveMemo(itemID, text string) error {
	path := s.path(itemID)
	if strings.TrimSpace(text) == "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete memo %s: %w", itemID, err)
		}
		return nil
	}

	memo := Memo{ItemID: itemID, Text: text, UpdatedAt: time.Now().UTC()}
	if err := writeYAML(path, &memo); err != nil {
		return fmt.Errorf("save memo %s: %w", itemID, err)
	}
	s.log.Debug("memo saved", "item", itemID, "bytes", len(text))
	return nil
}

// LoadMemo returns the memo text for an item, or "" when none exists.
func (s *MemoStore) LoadMemo(itemID string) (string, error) {
	raw, err := os.ReadFile(s.path(itemID))
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read memo %s: %w", itemID, err)
	}
	var memo Memo
	if err := yaml.Unmarshal(raw, &memo); err != nil {
		return "", fmt.Errorf("parse memo %s: %w", itemID, err)
	}
	return memo.Text, nil
}

func (s *MemoStore) path(itemID string) string {
	return filepath.Join(s.dir, itemID+".yaml")
}

// SetlistStore persists setlists as one YAML file per list under
// <dir>/setlists/.
type SetlistStore struct {
	dir string
	log *slog.Logger
}

// NewSetlistStore creates the store, making the setlist directory if needed.
func NewSetlistStore(dir string) (*SetlistStore, error) {
	listDir := filepath.Join(dir, "setlists")
	if err := os.MkdirAll(listDir, 0o755); err != nil {
		return nil, fmt.Errorf("create setlist dir: %w", err)
	}
	return &SetlistStore{
		dir: listDir,
		log: slog.With("component", "setlist-store"),
	}, nil
}

// Save writes a setlist, assigning a fresh ID on first save.
func (s *SetlistStore) Save(list *Setlist) error {
	if list.Name == "" {
		return fmt.Errorf("save setlist: missing name")
	}
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	path := filepath.Join(s.dir, list.ID+".yaml")
	if err := writeYAML(path, list); err != nil {
		return fmt.Errorf("save setlist %s: %w", list.ID, err)
	}
	s.log.Debug("setlist saved", "id", list.ID, "songs", len(list.Entries))
	return nil
}

// Delete removes a setlist file. Deleting an unknown ID is not an error.
func (s *SetlistStore) Delete(id string) error {
	if err := os.Remove(filepath.Join(s.dir, id+".yaml")); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete setlist %s: %w", id, err)
	}
	return nil
}

// LoadAll reads every setlist, sorted by date then name.
func (s *SetlistStore) LoadAll() ([]*Setlist, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list setlists: %w", err)
	}

	var lists []*Setlist
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read setlist %s: %w", e.Name(), err)
		}
		var list Setlist
		if err := yaml.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("parse setlist %s: %w", e.Name(), err)
		}
		lists = append(lists, &list)
	}

	sort.Slice(lists, func(i, j int) bool {
		if lists[i].Date != lists[j].Date {
			return lists[i].Date < lists[j].Date
		}
		return lists[i].Name < lists[j].Name
	})
	return lists, nil
}

// writeYAML marshals v and writes it atomically via a temp file rename.
func writeYAML(path string, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
