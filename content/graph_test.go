package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eunyuson/GRACE-sub000/content"
)

func graphCards() []*content.ConceptCard {
	return []*content.ConceptCard{
		{ID: "grace", Title: "Grace", Links: []string{"covenant"}, Items: []string{"easter-2026"}},
		{ID: "covenant", Title: "Covenant", Items: []string{"easter-2026", "psalms-1"}},
		{ID: "psalm", Title: "Psalm", Links: []string{"missing-card"}},
	}
}

func TestConceptGraphRelatedIsBidirectional(t *testing.T) {
	g := content.BuildConceptGraph(graphCards())

	related := g.Related("covenant")
	require.Len(t, related, 1)
	assert.Equal(t, "grace", related[0].ID, "backlink from grace should count as related")

	related = g.Related("grace")
	require.Len(t, related, 1)
	assert.Equal(t, "covenant", related[0].ID)
}

func TestConceptGraphCardsForItem(t *testing.T) {
	g := content.BuildConceptGraph(graphCards())

	cards := g.CardsForItem("easter-2026")
	require.Len(t, cards, 2)

	assert.Empty(t, g.CardsForItem("no-such-item"))
}

func TestConceptGraphDangling(t *testing.T) {
	g := content.BuildConceptGraph(graphCards())
	assert.Equal(t, []string{"missing-card"}, g.Dangling())
	assert.Empty(t, g.Related("psalm"), "dangling links contribute no relations")
}

func TestConceptGraphLinkUnlink(t *testing.T) {
	cards := graphCards()
	psalm := cards[2]

	assert.True(t, content.Link(psalm, "grace"))
	assert.False(t, content.Link(psalm, "grace"), "duplicate link should be a no-op")

	g := content.BuildConceptGraph(cards)
	related := g.Related("psalm")
	require.Len(t, related, 1)
	assert.Equal(t, "grace", related[0].ID)

	assert.True(t, content.Unlink(psalm, "grace"))
	assert.False(t, content.Unlink(psalm, "grace"))

	g = content.BuildConceptGraph(cards)
	assert.Empty(t, g.Related("psalm"))
}
