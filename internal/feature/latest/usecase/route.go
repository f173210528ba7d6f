package usecase

import (
	"slices"

	symbolentity "quote_aggregator/internal/feature/symbollist/domain/entity"
)

// Mode selects the response shape.
type Mode int

const (
	// ModeList returns price entries for a set of symbols.
	ModeList Mode = iota
	// ModeDetail returns price, history and metadata for one symbol.
	ModeDetail
)

func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "list"
}

// Request is the decoded body of a latest-price call.
type Request struct {
	Symbol  string
	Symbols []string // nil means every known symbol
}

// Route is the outcome of classifying a Request against the known catalog.
type Route struct {
	Mode    Mode
	Symbols []symbolentity.Symbol // exactly one entry in ModeDetail
}

// Resolve classifies req.
//
// Detail mode is chosen only when req.Symbol names a known symbol. Any other request,
// including an unknown Symbol, is served as a list: Symbols filters the catalog, and a
// nil Symbols keeps every entry. The catalog order is preserved.
func Resolve(known []symbolentity.Symbol, req Request) Route {
	if req.Symbol != "" {
		for _, s := range known {
			if s.ID == req.Symbol {
				return Route{Mode: ModeDetail, Symbols: []symbolentity.Symbol{s}}
			}
		}
	}

	if req.Symbols == nil {
		return Route{Mode: ModeList, Symbols: slices.Clone(known)}
	}
	filtered := make([]symbolentity.Symbol, 0, len(req.Symbols))
	for _, s := range known {
		if slices.Contains(req.Symbols, s.ID) {
			filtered = append(filtered, s)
		}
	}
	return Route{Mode: ModeList, Symbols: filtered}
}
