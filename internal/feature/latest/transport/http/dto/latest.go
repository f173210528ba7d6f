// Package dto defines data transfer objects for the latest-price HTTP API.
package dto

// LatestRequest is the JSON body of POST /latest.
// A missing or null "symbols" means every known symbol; an empty array means none.
type LatestRequest struct {
	Symbol  string   `json:"symbol"`
	Symbols []string `json:"symbols"`
}

// QuoteDetailResponse is the single-symbol response shape.
type QuoteDetailResponse struct {
	ID          string    `json:"id"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	History     []float64 `json:"history"`
}

// QuoteItemResponse is one entry of the multi-symbol response array.
type QuoteItemResponse struct {
	ID    string  `json:"id"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
