package content

import "sort"

// ConceptGraph answers link queries over a concept card set. Relations
// are bidirectional: if card A links B, both A and B report the other as
// related. Rebuild after any Link or Unlink.
type ConceptGraph struct {
	cards   map[string]*ConceptCard
	byItem  map[string][]*ConceptCard
	related map[string]map[string]bool
}

// BuildConceptGraph indexes the given cards.
func BuildConceptGraph(cards []*ConceptCard) *ConceptGraph {
	g := &ConceptGraph{
		cards:   make(map[string]*ConceptCard, len(cards)),
		byItem:  make(map[string][]*ConceptCard),
		related: make(map[string]map[string]bool),
	}
	for _, c := range cards {
		g.cards[c.ID] = c
	}
	for _, c := range cards {
		for _, itemID := range c.Items {
			g.byItem[itemID] = append(g.byItem[itemID], c)
		}
		for _, linkID := range c.Links {
			if _, ok := g.cards[linkID]; !ok {
				continue
			}
			g.addRelated(c.ID, linkID)
			g.addRelated(linkID, c.ID)
		}
	}
	return g
}

func (g *ConceptGraph) addRelated(from, to string) {
	set := g.related[from]
	if set == nil {
		set = make(map[string]bool)
		g.related[from] = set
	}
	set[to] = true
}

// Card returns a card by ID, or nil.
func (g *ConceptGraph) Card(id string) *ConceptCard {
	return g.cards[id]
}

// CardsForItem returns the cards annotating a gallery item.
func (g *ConceptGraph) CardsForItem(itemID string) []*ConceptCard {
	return g.byItem[itemID]
}

// Related returns the cards linked to or from the given card, sorted by
// title for stable rendering.
func (g *ConceptGraph) Related(id string) []*ConceptCard {
	set := g.related[id]
	if len(set) == 0 {
		return nil
	}
	out := make([]*ConceptCard, 0, len(set))
	for other := range set {
		out = append(out, g.cards[other])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Dangling returns link targets that resolve to no card, sorted. The
// loader rejects these in library files; they can still appear after
// runtime unlinking of a card another card points at.
func (g *ConceptGraph) Dangling() []string {
	seen := make(map[string]bool)
	for _, c := range g.cards {
		for _, linkID := range c.Links {
			if _, ok := g.cards[linkID]; !ok && !seen[linkID] {
				seen[linkID] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Link adds a one-way link from a to b if not already present. Returns
// true if the card changed. Rebuild the graph afterwards.
func Link(a *ConceptCard, b string) bool {
	for _, id := range a.Links {
		if id == b {
			return false
		}
	}
	a.Links = append(a.Links, b)
	return true
}

// Unlink removes the link from a to b. Returns true if the card changed.
func Unlink(a *ConceptCard, b string) bool {
	for i, id := range a.Links {
		if id == b {
			a.Links = append(a.Links[:i], a.Links[i+1:]...)
			return true
		}
	}
	return false
}
