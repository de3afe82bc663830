package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSelection_ToggleSeat(t *testing.T) {
	item := &CatalogItem{ID: "meg-2-the-trench", Kind: KindMovie, Title: "Meg 2: The Trench"}
	sel := NewSelection(item, time.Now(), "7:00 PM")

	sel.ToggleSeat("A1")
	sel.ToggleSeat("B2")
	sel.ToggleSeat("A3")

	if diff := cmp.Diff([]string{"A1", "B2", "A3"}, sel.Seats); diff != "" {
		t.Errorf("seats mismatch (-want +got):\n%s", diff)
	}

	// removing from the middle keeps insertion order of the rest
	sel.ToggleSeat("B2")

	if diff := cmp.Diff([]string{"A1", "A3"}, sel.Seats); diff != "" {
		t.Errorf("seats mismatch (-want +got):\n%s", diff)
	}
}

func TestSelection_ToggleSeatIsItsOwnInverse(t *testing.T) {
	sel := Selection{Seats: []string{"A1", "C4"}}
	before := append([]string(nil), sel.Seats...)

	sel.ToggleSeat("B2")
	sel.ToggleSeat("B2")

	if diff := cmp.Diff(before, sel.Seats); diff != "" {
		t.Errorf("double toggle changed the selection (-want +got):\n%s", diff)
	}

	// same property when the seat was already selected
	sel.ToggleSeat("A1")
	sel.ToggleSeat("A1")

	if diff := cmp.Diff(before, sel.Seats); diff != "" {
		t.Errorf("double toggle changed the selection (-want +got):\n%s", diff)
	}
}

func TestSelection_Total(t *testing.T) {
	sel := Selection{Seats: []string{"A1", "A2"}}

	assert.True(t, sel.Total().Equal(TicketPrice.Mul(decimal.NewFromInt(2))))

	sel.ClearSeats()

	assert.True(t, sel.Total().Equal(PrivateTheatrePrice))
}

func TestCatalogItem_Matches(t *testing.T) {
	item := CatalogItem{Title: "Meg 2: The Trench", Genre: "Action, Crime"}

	tests := []struct {
		name  string
		term  string
		genre string
		want  bool
	}{
		{"empty term and All genre", "", "All", true},
		{"case-insensitive title substring", "trench", "All", true},
		{"case-insensitive genre substring", "", "action", true},
		{"term and genre must both match", "meg", "Horror", false},
		{"non-matching term", "avatar", "All", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, item.Matches(tt.term, tt.genre))
		})
	}
}
