package domain

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing is flat across all categories: a fixed per-seat ticket price, or a
// block price when the whole hall is booked as a private theatre.
var (
	TicketPrice         = decimal.NewFromInt(150)
	PrivateTheatrePrice = decimal.NewFromInt(40000)
)

var ShowTimes = []string{"4:00 PM", "7:00 PM", "9:30 PM"}

var (
	seatRows    = "ABCDE"
	seatNumbers = 8
)

// Booking is the persisted result of a confirmed payment. It is written once
// and never updated.
type Booking struct {
	ID        int
	UserID    int
	PaymentID int
	ItemID    string
	Title     string
	Kind      Kind
	Date      time.Time
	Time      string
	Seats     []string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// PrivateTheatre reports whether the booking covers the whole hall. A
// booking's seat list is empty if and only if it is a private-theatre
// booking.
func (b Booking) PrivateTheatre() bool {
	return len(b.Seats) == 0
}

// ComputeTotal derives the booking price from the seat count. An empty seat
// set denotes a private-theatre booking and always costs the block price.
func ComputeTotal(seats []string, perSeat, private decimal.Decimal) decimal.Decimal {
	if len(seats) == 0 {
		return private
	}

	return perSeat.Mul(decimal.NewFromInt(int64(len(seats))))
}

// BarcodePayload derives the string encoded into the ticket barcode: the
// seat identifiers concatenated, a fixed separator token, and the title with
// spaces stripped.
func BarcodePayload(seats []string, title string) string {
	return strings.Join(seats, "") + ".tiket." + strings.ReplaceAll(title, " ", "")
}

// ValidSeat reports whether a seat identifier belongs to the fixed hall
// layout (rows A-E, seats 1-8).
func ValidSeat(id string) bool {
	if len(id) != 2 {
		return false
	}

	if !strings.ContainsRune(seatRows, rune(id[0])) {
		return false
	}

	n := id[1] - '0'

	return n >= 1 && n <= uint8(seatNumbers)
}

// ValidShowTime reports whether the time slot is one of the scheduled show
// times.
func ValidShowTime(t string) bool {
	for _, s := range ShowTimes {
		if s == t {
			return true
		}
	}

	return false
}

type BookingRepository interface {
	// Create persists the booking and its payment in a single transaction.
	Create(ctx context.Context, booking *Booking, payment *Payment) error
	GetByIdAndUserId(ctx context.Context, id, userId int) (*Booking, error)
	GetAllByUserId(ctx context.Context, userId int, pagination Pagination) ([]Booking, *Metadata, error)
}
