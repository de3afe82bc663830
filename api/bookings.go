package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,payment_method"`
}

type Booking struct {
	Id             int             `json:"id"`
	ItemId         string          `json:"itemId"`
	Title          string          `json:"title"`
	Kind           string          `json:"kind"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Seats          []string        `json:"seats"`
	PrivateTheatre bool            `json:"privateTheatre"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	PageSize     int `json:"pageSize"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	TotalRecords int `json:"totalRecords"`
}

type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
	Metadata Metadata  `json:"metadata"`
}

type PaymentSummary struct {
	Reference   string          `json:"reference"`
	Method      string          `json:"method"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
}

type TicketResponse struct {
	Booking Booking        `json:"booking"`
	Payment PaymentSummary `json:"payment"`
	Barcode string         `json:"barcode"`
}
