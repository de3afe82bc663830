package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/nafees-s/tiket-api/api"
	"github.com/nafees-s/tiket-api/internal/domain"
	"github.com/nafees-s/tiket-api/internal/mocks"
	"github.com/shopspring/decimal"
)

func seatSelection(seats []string) *domain.Selection {
	return &domain.Selection{
		ItemID: "meg-2-the-trench",
		Title:  "Meg 2: The Trench",
		Kind:   domain.KindMovie,
		Date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:   "7:00 PM",
		Seats:  seats,
	}
}

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name           string
		input          api.CreateBookingRequest
		authenticated  bool
		selection      *domain.Selection
		chargeFunc     func(context.Context, *domain.User, decimal.Decimal, string) (string, error)
		createFunc     func(context.Context, *domain.Booking, *domain.Payment) error
		wantStatus     int
		wantErrMessage string
		wantAmount     decimal.Decimal
		wantPrivate    bool
	}{
		{
			name:          "three seats cost three tickets",
			input:         api.CreateBookingRequest{PaymentMethod: "UPI"},
			authenticated: true,
			selection:     seatSelection([]string{"A1", "A2", "A3"}),
			wantStatus:    http.StatusCreated,
			wantAmount:    decimal.NewFromInt(450),
		},
		{
			name:          "empty seats book the private theatre",
			input:         api.CreateBookingRequest{PaymentMethod: "Credit Card"},
			authenticated: true,
			selection:     seatSelection([]string{}),
			wantStatus:    http.StatusCreated,
			wantAmount:    decimal.NewFromInt(40000),
			wantPrivate:   true,
		},
		{
			name:           "unauthenticated request is rejected",
			input:          api.CreateBookingRequest{PaymentMethod: "UPI"},
			authenticated:  false,
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorized,
		},
		{
			name:           "unsupported payment method",
			input:          api.CreateBookingRequest{PaymentMethod: "Cheque"},
			authenticated:  true,
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a supported payment method",
		},
		{
			name:           "no active selection",
			input:          api.CreateBookingRequest{PaymentMethod: "UPI"},
			authenticated:  true,
			selection:      nil,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "no active selection, please choose seats first",
		},
		{
			name:          "payment provider failure",
			input:         api.CreateBookingRequest{PaymentMethod: "UPI"},
			authenticated: true,
			selection:     seatSelection([]string{"A1"}),
			chargeFunc: func(ctx context.Context, u *domain.User, amount decimal.Decimal, method string) (string, error) {
				return "", fmt.Errorf("provider unavailable")
			},
			wantStatus:     http.StatusBadGateway,
			wantErrMessage: "Payment could not be completed",
		},
		{
			name:          "booking write failure fails the request",
			input:         api.CreateBookingRequest{PaymentMethod: "UPI"},
			authenticated: true,
			selection:     seatSelection([]string{"A1"}),
			createFunc: func(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
				return fmt.Errorf("database connection error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var persistedBooking *domain.Booking
			var persistedPayment *domain.Payment
			var chargedAmount decimal.Decimal

			chargeFunc := tt.chargeFunc
			if chargeFunc == nil {
				chargeFunc = func(ctx context.Context, u *domain.User, amount decimal.Decimal, method string) (string, error) {
					return "sim_4a2e7d9f", nil
				}
			}

			createFunc := tt.createFunc
			if createFunc == nil {
				createFunc = func(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
					b.ID = 1
					b.CreatedAt = time.Now()
					return nil
				}
			}

			app := newTestApplication(func(a *application) {
				a.userRepo = &mocks.MockUserRepo{
					GetByIdFunc: func(ctx context.Context, id int) (*domain.User, error) {
						return &domain.User{ID: id, Username: "Nafees"}, nil
					},
				}
				a.selectionStore = &mocks.MockSelectionStore{
					GetFunc: func(ctx context.Context, sessionID string) (*domain.Selection, error) {
						if tt.selection == nil {
							return nil, domain.ErrSelectionNotFound
						}
						return tt.selection, nil
					},
					DeleteFunc: func(ctx context.Context, sessionID string) error {
						return nil
					},
				}
				a.paymentProvider = &mocks.MockPaymentProvider{
					ChargeFunc: func(ctx context.Context, u *domain.User, amount decimal.Decimal, method string) (string, error) {
						chargedAmount = amount
						return chargeFunc(ctx, u, amount, method)
					},
				}
				a.bookingRepo = &mocks.MockBookingRepo{
					CreateFunc: func(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
						persistedBooking = b
						persistedPayment = p
						return createFunc(ctx, b, p)
					},
				}
			})

			w, r := executeRequest(t, http.MethodPost, "/bookings", tt.input)

			if tt.authenticated {
				r = setupTestSession(t, app, r, 1)
			}

			handler := app.sessionManager.LoadAndSave(app.requireAuthentication(http.HandlerFunc(app.CreateBooking)))
			handler.ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateBooking() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusCreated {
				if !chargedAmount.Equal(tt.wantAmount) {
					t.Errorf("Charged amount = %v, want %v", chargedAmount, tt.wantAmount)
				}

				if persistedBooking == nil || persistedPayment == nil {
					t.Fatal("Expected booking and payment to be persisted together")
				}

				if !persistedPayment.Amount.Equal(tt.wantAmount) {
					t.Errorf("Payment amount = %v, want %v", persistedPayment.Amount, tt.wantAmount)
				}

				var response api.BookingResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if !response.Booking.Amount.Equal(tt.wantAmount) {
					t.Errorf("Booking amount = %v, want %v", response.Booking.Amount, tt.wantAmount)
				}
				if response.Booking.Kind != "movie" {
					t.Errorf("Booking kind = %v, want movie", response.Booking.Kind)
				}
				if response.Booking.PrivateTheatre != tt.wantPrivate {
					t.Errorf("PrivateTheatre = %v, want %v", response.Booking.PrivateTheatre, tt.wantPrivate)
				}
				if diff := cmp.Diff(tt.selection.Seats, response.Booking.Seats); diff != "" {
					t.Errorf("Seats mismatch (-want +got):\n%s", diff)
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

func TestGetBookingsOfUser(t *testing.T) {
	bookings := []domain.Booking{
		{
			ID:     2,
			UserID: 1,
			ItemID: "wicked",
			Title:  "Wicked",
			Kind:   domain.KindMovie,
			Date:   time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Time:   "9:30 PM",
			Seats:  []string{},
			Amount: decimal.NewFromInt(40000),
		},
		{
			ID:     1,
			UserID: 1,
			ItemID: "meg-2-the-trench",
			Title:  "Meg 2: The Trench",
			Kind:   domain.KindMovie,
			Date:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Time:   "7:00 PM",
			Seats:  []string{"A1", "A2"},
			Amount: decimal.NewFromInt(300),
		},
	}

	tests := []struct {
		name           string
		url            string
		wantStatus     int
		wantErrMessage string
		wantPage       int
		wantPageSize   int
	}{
		{
			name:         "defaults applied",
			url:          "/users/me/bookings",
			wantStatus:   http.StatusOK,
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "explicit pagination",
			url:          "/users/me/bookings?page=2&pageSize=5",
			wantStatus:   http.StatusOK,
			wantPage:     2,
			wantPageSize: 5,
		},
		{
			name:           "page size above the maximum",
			url:            "/users/me/bookings?pageSize=500",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "pageSize must be between 1 and 100",
		},
		{
			name:           "non-numeric page",
			url:            "/users/me/bookings?page=abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "page must be a positive integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPagination domain.Pagination

			app := newTestApplication(func(a *application) {
				a.bookingRepo = &mocks.MockBookingRepo{
					GetAllByUserIdFunc: func(ctx context.Context, userId int, pagination domain.Pagination) ([]domain.Booking, *domain.Metadata, error) {
						gotPagination = pagination
						return bookings, domain.NewMetadata(2, pagination.Page, pagination.PageSize), nil
					},
				}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)
			r = setupTestSession(t, app, r, 1)

			handler := app.sessionManager.LoadAndSave(app.requireAuthentication(http.HandlerFunc(app.GetBookingsOfUser)))
			handler.ServeHTTP(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetBookingsOfUser() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				if gotPagination.Page != tt.wantPage || gotPagination.PageSize != tt.wantPageSize {
					t.Errorf("Pagination = %+v, want page %d size %d", gotPagination, tt.wantPage, tt.wantPageSize)
				}

				var response api.BookingListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				if err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if len(response.Bookings) != 2 {
					t.Fatalf("Expected 2 bookings, got %d", len(response.Bookings))
				}
				if !response.Bookings[0].PrivateTheatre {
					t.Error("First booking should be a private theatre booking")
				}
				if response.Metadata.TotalRecords != 2 {
					t.Errorf("TotalRecords = %d, want 2", response.Metadata.TotalRecords)
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
