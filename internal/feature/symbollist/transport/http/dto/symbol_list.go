// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem represents a catalog entry in the API response.
// Description is left out; it is served by the detail view of /latest.
type SymbolItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Initialized bool   `json:"initialized"`
}
