package api

type CatalogItem struct {
	Id     string `json:"id"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Rating string `json:"rating"`
	Image  string `json:"image"`
}

type CatalogSection struct {
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}

type CatalogSectionsResponse struct {
	Kind     string           `json:"kind"`
	Sections []CatalogSection `json:"sections"`
}

type CastMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type Review struct {
	Tags   []string `json:"tags"`
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Score  string   `json:"score"`
}

type MovieDetails struct {
	Duration    string       `json:"duration"`
	Description string       `json:"description"`
	Cast        []CastMember `json:"cast"`
	Review      *Review      `json:"review,omitempty"`
}

type CatalogItemResponse struct {
	CatalogItem
	Details *MovieDetails `json:"details,omitempty"`
}

type SearchResponse struct {
	Term   string        `json:"term"`
	Genre  string        `json:"genre"`
	Genres []string      `json:"genres"`
	Items  []CatalogItem `json:"items"`
}
