package domain

import "strings"

// Kind tags the three bookable catalog categories.
type Kind string

const (
	KindMovie Kind = "movie"
	KindSport Kind = "sport"
	KindEvent Kind = "event"
)

func (k Kind) Valid() bool {
	return k == KindMovie || k == KindSport || k == KindEvent
}

// CatalogItem is a bookable entity shown in the browse screens. Items are
// seeded from static literals at startup and never mutated.
type CatalogItem struct {
	ID     string
	Kind   Kind
	Title  string
	Genre  string
	Rating string
	Image  string

	// Movie-only details, nil for sports and events.
	Details *MovieDetails
}

type MovieDetails struct {
	Duration    string
	Description string
	Cast        []CastMember
	Review      *Review
}

type CastMember struct {
	Name  string
	Role  string
	Image string
}

type Review struct {
	Tags   []string
	Text   string
	Author string
	Score  string
}

// Matches reports whether the item satisfies a search: case-insensitive
// substring match on the title, and on the genre unless the filter is "All".
func (c CatalogItem) Matches(term, genre string) bool {
	if term != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(term)) {
		return false
	}

	if genre != "" && genre != "All" && !strings.Contains(strings.ToLower(c.Genre), strings.ToLower(genre)) {
		return false
	}

	return true
}

// Section groups catalog items under a browse heading such as "Popular Now".
type Section struct {
	Name  string
	Items []CatalogItem
}

type CatalogRepository interface {
	Sections(kind Kind) []Section
	GetById(id string) (*CatalogItem, error)
	Search(term, genre string) []CatalogItem
}
