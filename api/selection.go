package api

import "github.com/shopspring/decimal"

type CreateSelectionRequest struct {
	ItemId string `json:"itemId" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"time" validate:"required,show_time"`
}

type SelectionResponse struct {
	ItemId         string          `json:"itemId"`
	Title          string          `json:"title"`
	Kind           string          `json:"kind"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Seats          []string        `json:"seats"`
	PrivateTheatre bool            `json:"privateTheatre"`
	Total          decimal.Decimal `json:"total"`
	HoldTime       int             `json:"holdTime"`
}
