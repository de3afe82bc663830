package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/nafees-s/tiket-api/internal/mocks"
	"github.com/shopspring/decimal"
)

func testBookingRepo(booking *domain.Booking) *mocks.MockBookingRepo {
	return &mocks.MockBookingRepo{
		GetByIdAndUserIdFunc: func(ctx context.Context, id, userId int) (*domain.Booking, error) {
			if booking == nil || booking.ID != id || booking.UserID != userId {
				return nil, domain.ErrRecordNotFound
			}

			return booking, nil
		},
	}
}

func testPaymentRepo() *mocks.MockPaymentRepo {
	paymentDate := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	return &mocks.MockPaymentRepo{
		GetByIdFunc: func(ctx context.Context, id int) (*domain.Payment, error) {
			return &domain.Payment{
				ID:          id,
				UserID:      1,
				Reference:   "sim_4a2e7d9f",
				Amount:      decimal.NewFromInt(450),
				Currency:    "INR",
				Method:      "UPI",
				Status:      domain.PaymentStatusCompleted,
				PaymentDate: &paymentDate,
			}, nil
		},
	}
}

func TestGetTicket(t *testing.T) {
	booking := &domain.Booking{
		ID:        1,
		UserID:    1,
		PaymentID: 11,
		ItemID:    "meg-2-the-trench",
		Title:     "Meg 2: The Trench",
		Kind:      domain.KindMovie,
		Date:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:      "7:00 PM",
		Seats:     []string{"A1", "A2", "A3"},
		Amount:    decimal.NewFromInt(450),
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		bookingId      string
		booking        *domain.Booking
		wantStatus     int
		wantErrMessage string
		wantBarcode    string
	}{
		{
			name:        "successful ticket",
			bookingId:   "1",
			booking:     booking,
			wantStatus:  http.StatusOK,
			wantBarcode: "A1A2A3.tiket.Meg2:TheTrench",
		},
		{
			name:           "booking of another user",
			bookingId:      "1",
			booking:        nil,
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:           "malformed booking ID",
			bookingId:      "abc",
			booking:        booking,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid booking ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.bookingRepo = testBookingRepo(tt.booking)
				a.paymentRepo = testPaymentRepo()
			})

			w, r := executeRequest(t, http.MethodGet, "/bookings/"+tt.bookingId+"/ticket", nil)
			r = withUrlParam(r, "bookingID", tt.bookingId)
			r = setupTestSession(t, app, r, 1)

			handler := app.sessionManager.LoadAndSave(app.requireAuthentication(http.HandlerFunc(app.GetTicket)))
			handler.ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetTicket() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var response api.TicketResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if response.Barcode != tt.wantBarcode {
					t.Errorf("Barcode = %q, want %q", response.Barcode, tt.wantBarcode)
				}

				if response.Payment.Reference != "sim_4a2e7d9f" || response.Payment.Method != "UPI" {
					t.Errorf("Unexpected payment summary: %+v", response.Payment)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetTicketBarcode(t *testing.T) {
	tests := []struct {
		name            string
		title           string
		wantContentType string
		wantBody        string
	}{
		{
			name:            "encodable payload yields a PNG",
			title:           "Meg 2: The Trench",
			wantContentType: "image/png",
		},
		{
			name:            "unencodable payload yields the placeholder",
			title:           "Meg 2 \U0001F96B",
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        "Invalid Barcode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &domain.Booking{
				ID:     1,
				UserID: 1,
				Title:  tt.title,
				Kind:   domain.KindMovie,
				Seats:  []string{"A1"},
			}

			app := newTestApplication(func(a *application) {
				a.bookingRepo = testBookingRepo(booking)
			})

			w, r := executeRequest(t, http.MethodGet, "/bookings/1/barcode", nil)
			r = withUrlParam(r, "bookingID", "1")
			r = setupTestSession(t, app, r, 1)

			handler := app.sessionManager.LoadAndSave(app.requireAuthentication(http.HandlerFunc(app.GetTicketBarcode)))
			handler.ServeHTTP(w, r)

			if got := w.Code; got != http.StatusOK {
				t.Fatalf("GetTicketBarcode() status = %v, want %v", got, http.StatusOK)
			}

			if got := w.Header().Get("Content-Type"); got != tt.wantContentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantContentType)
			}

			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("Body = %q, want %q", w.Body.String(), tt.wantBody)
			}

			if tt.wantBody == "" && w.Body.Len() == 0 {
				t.Error("Expected PNG bytes in response body")
			}
		})
	}
}
