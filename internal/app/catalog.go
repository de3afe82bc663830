package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/catalog"
	"github.com/nafees-s/tiket-api/internal/domain"
)

func (app *application) GetCatalogSections(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		app.notFoundResponse(w, r)
		return
	}

	sections := app.catalogRepo.Sections(kind)

	resp := api.CatalogSectionsResponse{
		Kind:     string(kind),
		Sections: toApiSections(sections),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCatalogItem(w http.ResponseWriter, r *http.Request) {
	itemId := chi.URLParam(r, "itemID")

	item, err := app.catalogRepo.GetById(itemId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.CatalogItemResponse{
		CatalogItem: toApiCatalogItem(*item),
		Details:     toApiMovieDetails(item.Details),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SearchCatalog filters the union of all three catalogs. The result order
// follows the seed order, so an empty search returns the full catalog as it
// appears in the browse screens.
func (app *application) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	term := qs.Get("term")
	genre := qs.Get("genre")

	items := app.catalogRepo.Search(term, genre)

	apiItems := make([]api.CatalogItem, len(items))
	for i, item := range items {
		apiItems[i] = toApiCatalogItem(item)
	}

	resp := api.SearchResponse{
		Term:   term,
		Genre:  genre,
		Genres: catalog.Genres,
		Items:  apiItems,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSections(sections []domain.Section) []api.CatalogSection {
	apiSections := make([]api.CatalogSection, len(sections))

	for i, section := range sections {
		items := make([]api.CatalogItem, len(section.Items))
		for j, item := range section.Items {
			items[j] = toApiCatalogItem(item)
		}

		apiSections[i] = api.CatalogSection{
			Name:  section.Name,
			Items: items,
		}
	}

	return apiSections
}

func toApiCatalogItem(item domain.CatalogItem) api.CatalogItem {
	return api.CatalogItem{
		Id:     item.ID,
		Kind:   string(item.Kind),
		Title:  item.Title,
		Genre:  item.Genre,
		Rating: item.Rating,
		Image:  item.Image,
	}
}

func toApiMovieDetails(details *domain.MovieDetails) *api.MovieDetails {
	if details == nil {
		return nil
	}

	cast := make([]api.CastMember, len(details.Cast))
	for i, member := range details.Cast {
		cast[i] = api.CastMember(member)
	}

	apiDetails := &api.MovieDetails{
		Duration:    details.Duration,
		Description: details.Description,
		Cast:        cast,
	}

	if details.Review != nil {
		review := api.Review(*details.Review)
		apiDetails.Review = &review
	}

	return apiDetails
}
