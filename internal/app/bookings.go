package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

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

	userId := app.contextGetUserId(r)
	sessionId := app.sessionManager.Token(r.Context())

	selection, err := app.selectionStore.Get(r.Context(), sessionId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionNotFound):
			logger.Warn("booking attempt without an active selection")
			app.badRequestResponse(w, r, fmt.Errorf("no active selection, please choose seats first"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if !domain.ValidShowTime(selection.Time) {
		app.badRequestResponse(w, r, domain.ErrUnknownTimeSlot)
		return
	}

	for _, seat := range selection.Seats {
		if !domain.ValidSeat(seat) {
			app.badRequestResponse(w, r, domain.ErrUnknownSeat)
			return
		}
	}

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	total := selection.Total()

	reference, err := app.paymentProvider.Charge(r.Context(), user, total, input.PaymentMethod)
	if err != nil {
		logger.Error("payment charge failed", "error", err)
		app.errorResponse(w, r, http.StatusBadGateway, "Payment could not be completed")
		return
	}

	now := time.Now()

	payment := domain.Payment{
		UserID:      user.ID,
		Reference:   reference,
		Amount:      total,
		Currency:    "INR",
		Method:      input.PaymentMethod,
		Status:      domain.PaymentStatusCompleted,
		PaymentDate: &now,
	}

	booking := domain.Booking{
		UserID: user.ID,
		ItemID: selection.ItemID,
		Title:  selection.Title,
		Kind:   selection.Kind,
		Date:   selection.Date,
		Time:   selection.Time,
		Seats:  selection.Seats,
		Amount: total,
	}

	err = app.bookingRepo.Create(r.Context(), &booking, &payment)
	if err != nil {
		logger.Error("failed to persist booking", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	// The selection is spent; removal failure only means it lingers until
	// its TTL.
	err = app.selectionStore.Delete(r.Context(), sessionId)
	if err != nil {
		logger.Error("failed to delete spent selection", "error", err)
	}

	resp := api.BookingResponse{
		Booking: toApiBooking(booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBookingsOfUser(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readPagination(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	bookings, metadata, err := app.bookingRepo.GetAllByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiBookings := make([]api.Booking, len(bookings))
	for i, booking := range bookings {
		apiBookings[i] = toApiBooking(booking)
	}

	resp := api.BookingListResponse{
		Bookings: apiBookings,
		Metadata: api.Metadata{
			CurrentPage:  metadata.CurrentPage,
			PageSize:     metadata.PageSize,
			FirstPage:    metadata.FirstPage,
			LastPage:     metadata.LastPage,
			TotalRecords: metadata.TotalRecords,
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(booking domain.Booking) api.Booking {
	return api.Booking{
		Id:             booking.ID,
		ItemId:         booking.ItemID,
		Title:          booking.Title,
		Kind:           string(booking.Kind),
		Date:           booking.Date.Format("2006-01-02"),
		Time:           booking.Time,
		Seats:          booking.Seats,
		PrivateTheatre: booking.PrivateTheatre(),
		Amount:         booking.Amount,
		CreatedAt:      booking.CreatedAt,
	}
}
