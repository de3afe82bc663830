// Package catalog holds the static in-memory catalog the browse screens
// render. Items are seeded once at construction and never mutated.
package catalog

import (
	"regexp"
	"strings"

	"github.com/nafees-s/tiket-api/internal/domain"
)

// Genres is the fixed list of genre filters offered by the search screen.
var Genres = []string{"All", "Action", "Drama", "Comedy", "Romance", "Sports", "Fantasy", "Horror"}

type Repository struct {
	movies []domain.Section
	sports []domain.Section
	events []domain.Section

	byId map[string]*domain.CatalogItem
}

func NewRepository() *Repository {
	r := &Repository{
		movies: movieSections(),
		sports: sportSections(),
		events: eventSections(),
		byId:   make(map[string]*domain.CatalogItem),
	}

	for _, sections := range [][]domain.Section{r.movies, r.sports, r.events} {
		for _, section := range sections {
			for i := range section.Items {
				item := section.Items[i]
				if _, ok := r.byId[item.ID]; !ok {
					r.byId[item.ID] = &item
				}
			}
		}
	}

	return r
}

func (r *Repository) Sections(kind domain.Kind) []domain.Section {
	switch kind {
	case domain.KindMovie:
		return r.movies
	case domain.KindSport:
		return r.sports
	case domain.KindEvent:
		return r.events
	default:
		return nil
	}
}

func (r *Repository) GetById(id string) (*domain.CatalogItem, error) {
	item, ok := r.byId[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return item, nil
}

// Search walks the union of all three catalogs in seed order and keeps the
// items matching the term and genre filter. The result is recomputed on
// every call; the catalog is small enough that indexing would buy nothing.
func (r *Repository) Search(term, genre string) []domain.CatalogItem {
	matches := make([]domain.CatalogItem, 0)

	for _, sections := range [][]domain.Section{r.movies, r.sports, r.events} {
		for _, section := range sections {
			for _, item := range section.Items {
				if item.Matches(term, genre) {
					matches = append(matches, item)
				}
			}
		}
	}

	return matches
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

func slug(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")

	return strings.Trim(s, "-")
}

func movie(image, title, genre, rating, duration, description string, cast []domain.CastMember, review *domain.Review) domain.CatalogItem {
	return domain.CatalogItem{
		ID:     slug(title),
		Kind:   domain.KindMovie,
		Title:  title,
		Genre:  genre,
		Rating: rating,
		Image:  image,
		Details: &domain.MovieDetails{
			Duration:    duration,
			Description: description,
			Cast:        cast,
			Review:      review,
		},
	}
}

func sport(image, title, genre, rating string) domain.CatalogItem {
	return domain.CatalogItem{ID: slug(title), Kind: domain.KindSport, Title: title, Genre: genre, Rating: rating, Image: image}
}

func event(image, title, genre, rating string) domain.CatalogItem {
	return domain.CatalogItem{ID: slug(title), Kind: domain.KindEvent, Title: title, Genre: genre, Rating: rating, Image: image}
}

func movieSections() []domain.Section {
	return []domain.Section{
		{
			Name: "Popular Now",
			Items: []domain.CatalogItem{
				movie("meg2", "Meg 2: The Trench", "Action, Crime", "4.5", "1h 56m",
					"An elite research team dives into the depths of the ocean only to face a colossal threat.",
					[]domain.CastMember{
						{Name: "Jason Statham", Role: "Jonas Taylor", Image: "jason"},
						{Name: "Cliff Curtis", Role: "Mac", Image: "cliff"},
					},
					&domain.Review{Tags: []string{"Thrilling", "Shark", "Underwater"}, Text: "A non-stop aquatic thrill ride.", Author: "Collider", Score: "4.3"}),
				movie("nun2", "The Nun II", "Horror, Fantasy", "4.6", "1h 50m",
					"Sister Irene confronts evil as the demon Valak returns in a haunting sequel.",
					[]domain.CastMember{
						{Name: "Taissa Farmiga", Role: "Sister Irene", Image: "taissa"},
						{Name: "Bonnie Aarons", Role: "Valak", Image: "bonnie"},
					},
					&domain.Review{Tags: []string{"Scary", "Haunting", "Sequel"}, Text: "Even scarier than the first.", Author: "IGN", Score: "4.6"}),
				movie("wicked", "Wicked", "Fantasy, Adventure", "4.9", "2h 12m",
					"The untold story of the witches of Oz.",
					[]domain.CastMember{
						{Name: "Ariana Grande", Role: "Glinda", Image: "ariana"},
						{Name: "Cynthia Erivo", Role: "Elphaba", Image: "cynthia"},
					},
					&domain.Review{Tags: []string{"Magical", "Musical", "Wicked"}, Text: "Visually spectacular and emotionally resonant.", Author: "Variety", Score: "4.9"}),
			},
		},
		{
			Name: "Family",
			Items: []domain.CatalogItem{
				movie("brave", "Brave", "Family, Action, Drama", "4.3", "1h 33m",
					"A Scottish princess defies tradition to carve her own path.",
					[]domain.CastMember{
						{Name: "Kelly Macdonald", Role: "Merida", Image: "kelly"},
						{Name: "Emma Thompson", Role: "Queen Elinor", Image: "emma"},
					},
					&domain.Review{Tags: []string{"Empowering", "Family", "Adventure"}, Text: "A heartwarming tale of bravery.", Author: "Screen Rant", Score: "4.2"}),
				movie("tangled", "Tangled", "Family, Romance", "4.9", "1h 40m",
					"A lost princess escapes her tower with a charming thief.",
					[]domain.CastMember{
						{Name: "Mandy Moore", Role: "Rapunzel", Image: "mandy"},
						{Name: "Zachary Levi", Role: "Flynn Rider", Image: "zachary"},
					},
					&domain.Review{Tags: []string{"Romantic", "Adventure", "Musical"}, Text: "A fresh, modern fairy tale.", Author: "The Guardian", Score: "4.8"}),
				movie("elemental", "Elemental", "Family, Drama, Romance", "4.8", "1h 49m",
					"Opposites attract in a city where fire, water, land, and air live together.",
					[]domain.CastMember{
						{Name: "Leah Lewis", Role: "Ember", Image: "leah"},
						{Name: "Mamoudou Athie", Role: "Wade", Image: "mamoudou"},
					},
					&domain.Review{Tags: []string{"Beautiful", "Animated", "Diverse"}, Text: "A bold and emotional Pixar story.", Author: "IndieWire", Score: "4.7"}),
				movie("snowwhite", "Snow White", "Fantasy, Adventure", "2.9", "1h 28m",
					"A princess escapes her evil stepmother and finds refuge with seven dwarves.",
					[]domain.CastMember{
						{Name: "Rachel Zegler", Role: "Snow White", Image: "rachel"},
						{Name: "Gal Gadot", Role: "Evil Queen", Image: "gal"},
					},
					&domain.Review{Tags: []string{"Classic", "Reimagined"}, Text: "A mixed modern retelling of the classic.", Author: "Empire", Score: "2.9"}),
			},
		},
		{
			Name: "Comedy",
			Items: []domain.CatalogItem{
				movie("Minecraft", "A Minecraft Movie", "Adventure, Fantasy, Sci-Fi", "4.9", "1h 42m",
					"A young hero must save the Overworld from a blocky threat.",
					[]domain.CastMember{{Name: "Jason Momoa", Role: "Steve", Image: "momoa"}},
					&domain.Review{Tags: []string{"Fun", "Game Adaptation"}, Text: "Better than expected!", Author: "GamesRadar", Score: "4.5"}),
				movie("homealone", "Home Alone 2", "Comedy, Family", "4.9", "2h 0m",
					"Kevin gets lost in New York and outsmarts two familiar crooks.",
					[]domain.CastMember{
						{Name: "Macaulay Culkin", Role: "Kevin", Image: "culkin"},
						{Name: "Joe Pesci", Role: "Harry", Image: "pesci"},
					},
					&domain.Review{Tags: []string{"Holiday", "Classic", "Laughs"}, Text: "As charming and fun as the first.", Author: "Chicago Tribune", Score: "4.8"}),
				movie("bullettrain", "Bullet Train", "Action, Comedy, Thriller", "4.8", "2h 6m",
					"Assassins on a high-speed train battle it out in Japan.",
					[]domain.CastMember{
						{Name: "Brad Pitt", Role: "Ladybug", Image: "brad"},
						{Name: "Aaron Taylor-Johnson", Role: "Tangerine", Image: "aaron"},
					},
					&domain.Review{Tags: []string{"Stylish", "Violent", "Funny"}, Text: "Slick, stylish, and packed with punchlines.", Author: "The Verge", Score: "4.8"}),
				movie("cruella", "Cruella", "Comedy, Drama", "4.9", "2h 14m",
					"The rebellious early days of the legendary Cruella de Vil.",
					[]domain.CastMember{{Name: "Emma Stone", Role: "Cruella", Image: "emma"}},
					&domain.Review{Tags: []string{"Fashion", "Villain Origin"}, Text: "A bold, punk-rock origin story.", Author: "IndieWire", Score: "4.7"}),
			},
		},
	}
}

func sportSections() []domain.Section {
	football := sport("football", "Champions League Final", "Football, Sports", "4.8")
	basketball := sport("basketball", "NBA All-Star Game", "Basketball, Exhibition", "4.6")
	tennis := sport("tennis", "Wimbledon Semifinals", "Tennis, Singles", "4.7")
	cricket := sport("IPL", "IPL Grand Finale", "Cricket, T20", "4.9")

	return []domain.Section{
		{Name: "Now Showing", Items: []domain.CatalogItem{football, basketball, tennis, cricket}},
		{Name: "Next Week", Items: []domain.CatalogItem{basketball, cricket, tennis, football}},
		{Name: "Next Month", Items: []domain.CatalogItem{cricket, football, basketball, tennis}},
	}
}

func eventSections() []domain.Section {
	saturday := event("comedyevent", "Saturday Night", "Comedy, Family", "4.2")
	concert := event("concert", "Concert Music", "Music, Party", "4.3")
	standup := event("standup", "Stand Up Comedy", "Comedy, Family", "4.1")
	dance := event("dance", "Dance Show", "Fun, Entertainment", "4.0")
	saturday2 := event("comedyevent", "Saturday Night 2", "Comedy, Family", "4.4")

	return []domain.Section{
		{Name: "Now Showing", Items: []domain.CatalogItem{saturday, concert, standup, dance, saturday2}},
		{Name: "Next Week", Items: []domain.CatalogItem{dance, concert, saturday2, standup, saturday}},
		{Name: "Next Month", Items: []domain.CatalogItem{standup, saturday, concert, dance, saturday2}},
	}
}
