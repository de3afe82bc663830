package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Selection is the in-progress, unpersisted choice of item, date, time and
// seats made in the booking screen. It lives in Redis keyed by the session
// until checkout or expiry.
type Selection struct {
	ItemID string    `json:"itemId"`
	Title  string    `json:"title"`
	Kind   Kind      `json:"kind"`
	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Seats  []string  `json:"seats"`
}

func NewSelection(item *CatalogItem, date time.Time, timeSlot string) Selection {
	return Selection{
		ItemID: item.ID,
		Title:  item.Title,
		Kind:   item.Kind,
		Date:   date,
		Time:   timeSlot,
		Seats:  []string{},
	}
}

// ToggleSeat adds the seat if absent and removes it if present. Insertion
// order is preserved for display; it has no effect on price.
func (s *Selection) ToggleSeat(id string) {
	for i, seat := range s.Seats {
		if seat == id {
			s.Seats = append(s.Seats[:i], s.Seats[i+1:]...)
			return
		}
	}

	s.Seats = append(s.Seats, id)
}

// ClearSeats empties the seat set, turning the selection into a
// private-theatre booking intent.
func (s *Selection) ClearSeats() {
	s.Seats = []string{}
}

// Total computes the current price of the selection.
func (s Selection) Total() decimal.Decimal {
	return ComputeTotal(s.Seats, TicketPrice, PrivateTheatrePrice)
}

// SelectionStore keeps in-progress selections keyed by session token until
// they expire. Get returns ErrSelectionNotFound for a missing or expired
// selection.
type SelectionStore interface {
	Get(ctx context.Context, sessionID string) (*Selection, error)
	Put(ctx context.Context, sessionID string, sel Selection, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
