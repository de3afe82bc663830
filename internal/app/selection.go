package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
)

const selectionTTL = 30 * time.Minute

func (app *application) CreateSelection(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateSelectionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	item, err := app.catalogRepo.GetById(input.ItemId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("selection attempt for unknown catalog item", "item_id", input.ItemId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format"))
		return
	}

	// A new selection replaces whatever the session held before.
	selection := domain.NewSelection(item, date, input.Time)

	sessionId := app.sessionManager.Token(r.Context())

	err = app.selectionStore.Put(r.Context(), sessionId, selection, selectionTTL)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiSelection(selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ToggleSelectionSeat(w http.ResponseWriter, r *http.Request) {
	seatId := chi.URLParam(r, "seatID")
	if !domain.ValidSeat(seatId) {
		app.badRequestResponse(w, r, domain.ErrUnknownSeat)
		return
	}

	sessionId := app.sessionManager.Token(r.Context())

	selection, err := app.selectionStore.Get(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	selection.ToggleSeat(seatId)

	err = app.selectionStore.Put(r.Context(), sessionId, *selection, selectionTTL)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSelection(*selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetSelection(w http.ResponseWriter, r *http.Request) {
	sessionId := app.sessionManager.Token(r.Context())

	selection, err := app.selectionStore.Get(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiSelection(*selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	sessionId := app.sessionManager.Token(r.Context())

	err := app.selectionStore.Delete(r.Context(), sessionId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiSelection(selection domain.Selection) api.SelectionResponse {
	return api.SelectionResponse{
		ItemId:         selection.ItemID,
		Title:          selection.Title,
		Kind:           string(selection.Kind),
		Date:           selection.Date.Format("2006-01-02"),
		Time:           selection.Time,
		Seats:          selection.Seats,
		PrivateTheatre: len(selection.Seats) == 0,
		Total:          selection.Total(),
		HoldTime:       int(selectionTTL.Seconds()),
	}
}
