package usecase

import "errors"

var (
	// ErrSymbolStore is returned when the symbol catalog cannot be read.
	ErrSymbolStore = errors.New("symbol store unavailable")

	// ErrProvider is returned when a price or history call to the market-data provider fails.
	ErrProvider = errors.New("market data provider failed")

	// ErrIncompleteMetadata is returned when the provider answers without name, image or description.
	ErrIncompleteMetadata = errors.New("incomplete coin metadata")
)
