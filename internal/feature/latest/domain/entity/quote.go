// Package entity defines the per-request quote models of the latest feature.
// Quotes are built fresh for every request and never persisted.
package entity

// QuoteDetail is the single-symbol view: live price, minute history and catalog metadata.
type QuoteDetail struct {
	ID          string
	Price       float64
	Image       string
	Name        string
	Description string
	History     []float64 // minute closes, oldest first
}

// QuoteItem is one entry of the multi-symbol view.
type QuoteItem struct {
	ID    string
	Price float64
	Image string
}
