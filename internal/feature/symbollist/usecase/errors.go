package usecase

import "errors"

// ErrSymbolNotFound is returned when an update targets a symbol id absent from the catalog.
var ErrSymbolNotFound = errors.New("symbol not found")
