package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eunyuson/GRACE-sub000/content"
)

const sampleLibrary = `
items:
  - id: easter-2026
    title: Easter Sunday
    speaker: Pastor Kim
    date: "2026-04-05"
    tags: [sermon, easter]
    video: https://example.org/easter.mp4
    pdf: notes/easter.pdf
  - id: psalms-study
    title: Psalms Study
    tags: [study]
    link: https://example.org/psalms
songs:
  - id: amazing-grace
    title: Amazing Grace
    key: G
    duration: 240
  - id: doxology
    title: Doxology
    key: D
    duration: 95
concepts:
  - id: grace
    title: Grace
    body: Unmerited favor.
    links: [covenant]
  - id: covenant
    title: Covenant
    body: A binding promise.
`

func writeLibrary(t *testing.T, doc string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "library.yaml"), []byte(doc), 0o644))
	return dir
}

func TestLoadLibrary(t *testing.T) {
	dir := writeLibrary(t, sampleLibrary)

	lib, err := content.Load(dir)
	require.NoError(t, err)

	assert.Len(t, lib.Items, 2)
	assert.Len(t, lib.Songs, 2)
	assert.Len(t, lib.Concepts, 2)

	it := lib.ItemByID("easter-2026")
	require.NotNil(t, it)
	assert.Equal(t, "Easter Sunday", it.Title)
	assert.Equal(t, content.KindVideo, it.DefaultKind())
	assert.True(t, it.HasKind(content.KindPDF))
	assert.False(t, it.HasKind(content.KindLink))

	assert.Equal(t, content.KindLink, lib.ItemByID("psalms-study").DefaultKind())
	assert.Nil(t, lib.ItemByID("missing"))
}

func TestLoadLibraryMissingFile(t *testing.T) {
	_, err := content.Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadLibraryDuplicateID(t *testing.T) {
	dir := writeLibrary(t, `
items:
  - {id: a, title: One, link: https://example.org/1}
  - {id: a, title: Two, link: https://example.org/2}
`)
	_, err := content.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate item id")
}

func TestLoadLibraryItemWithoutMedia(t *testing.T) {
	dir := writeLibrary(t, `
items:
  - {id: a, title: Empty}
`)
	_, err := content.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of")
}

func TestLoadLibraryBrokenConceptLink(t *testing.T) {
	dir := writeLibrary(t, `
items:
  - {id: a, title: One, link: https://example.org/1}
concepts:
  - {id: x, title: X, body: b, links: [nope]}
`)
	_, err := content.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown card")
}

func TestLoadLibraryWithNews(t *testing.T) {
	dir := writeLibrary(t, sampleLibrary)
	news := `
posts:
  - id: n1
    title: Potluck moved
    body: Now on Saturday.
    posted_at: 2026-08-20T10:00:00Z
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "news.yaml"), []byte(news), 0o644))

	lib, err := content.Load(dir)
	require.NoError(t, err)
	require.Len(t, lib.News, 1)
	assert.Equal(t, "Potluck moved", lib.News[0].Title)
}

func TestSetlistTotalDuration(t *testing.T) {
	dir := writeLibrary(t, sampleLibrary)
	lib, err := content.Load(dir)
	require.NoError(t, err)

	list := &content.Setlist{
		Name: "Sunday AM",
		Entries: []content.SetlistEntry{
			{SongID: "amazing-grace"},
			{SongID: "doxology"},
			{SongID: "unknown"},
		},
	}
	total := list.TotalDuration(lib.SongsByID())
	assert.Equal(t, 335, int(total.Seconds()))
}
