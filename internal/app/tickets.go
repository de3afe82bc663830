package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/barcode"
	"github.com/nafees-s/tiket-api/internal/domain"
)

func (app *application) GetTicket(w http.ResponseWriter, r *http.Request) {
	booking, ok := app.bookingFromRequest(w, r)
	if !ok {
		return
	}

	payment, err := app.paymentRepo.GetById(r.Context(), booking.PaymentID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TicketResponse{
		Booking: toApiBooking(*booking),
		Payment: api.PaymentSummary{
			Reference:   payment.Reference,
			Method:      payment.Method,
			Status:      string(payment.Status),
			Amount:      payment.Amount,
			Currency:    payment.Currency,
			PaymentDate: payment.PaymentDate,
		},
		Barcode: domain.BarcodePayload(booking.Seats, booking.Title),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetTicketBarcode(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	booking, ok := app.bookingFromRequest(w, r)
	if !ok {
		return
	}

	payload := domain.BarcodePayload(booking.Seats, booking.Title)

	image, err := barcode.PNG(payload)
	if err != nil {
		// The ticket screen shows a placeholder when the payload cannot be
		// encoded. No retry.
		logger.Warn("barcode encoding failed", "booking_id", booking.ID, "error", err)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Invalid Barcode"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(image)
}

func (app *application) bookingFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Booking, bool) {
	bookingId, err := strconv.Atoi(chi.URLParam(r, "bookingID"))
	if err != nil || bookingId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("invalid booking ID"))
		return nil, false
	}

	userId := app.contextGetUserId(r)

	booking, err := app.bookingRepo.GetByIdAndUserId(r.Context(), bookingId, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return booking, true
}
