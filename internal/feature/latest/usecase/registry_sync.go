package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	symbolentity "quote_aggregator/internal/feature/symbollist/domain/entity"

	"golang.org/x/sync/errgroup"
)

// SyncResult reports what a registry sync pass did.
type SyncResult struct {
	Updated []string         // ids initialized during this pass, in catalog order
	Failed  map[string]error // ids left uninitialized and the reason
}

// RegistrySync fills in missing metadata for uninitialized symbols.
type RegistrySync struct {
	repo           SymbolRepository
	meta           MetadataProvider
	maxConcurrency int
}

// NewRegistrySync creates a RegistrySync. maxConcurrency <= 0 issues every fetch at once.
func NewRegistrySync(repo SymbolRepository, meta MetadataProvider, maxConcurrency int) *RegistrySync {
	return &RegistrySync{repo: repo, meta: meta, maxConcurrency: maxConcurrency}
}

// NeedsSync reports whether any symbol is still uninitialized.
func NeedsSync(symbols []symbolentity.Symbol) bool {
	return slices.ContainsFunc(symbols, func(s symbolentity.Symbol) bool { return !s.Initialized })
}

// Sync fetches and persists metadata for every uninitialized symbol concurrently and
// returns a new slice with the successful updates applied. symbols is not modified.
//
// Failures are isolated per symbol: a failed fetch or write is logged, recorded in
// SyncResult.Failed, and the symbol is returned unchanged.
func (s *RegistrySync) Sync(ctx context.Context, symbols []symbolentity.Symbol) ([]symbolentity.Symbol, SyncResult) {
	out := slices.Clone(symbols)
	res := SyncResult{Failed: map[string]error{}}

	type outcome struct {
		attempted bool
		md        symbolentity.Metadata
		err       error
	}
	outcomes := make([]outcome, len(out))

	var g errgroup.Group
	if s.maxConcurrency > 0 {
		g.SetLimit(s.maxConcurrency)
	}
	for i, sym := range out {
		if sym.Initialized {
			continue
		}
		g.Go(func() error {
			md, err := s.syncOne(ctx, sym.ID)
			outcomes[i] = outcome{attempted: true, md: md, err: err}
			// best effort: errors are collected, never returned to the group
			return nil
		})
	}
	_ = g.Wait()

	for i, o := range outcomes {
		if !o.attempted {
			continue
		}
		id := out[i].ID
		if o.err != nil {
			slog.Warn("symbol metadata sync failed", "symbol", id, "error", o.err)
			res.Failed[id] = o.err
			continue
		}
		out[i] = out[i].WithMetadata(o.md)
		res.Updated = append(res.Updated, id)
	}
	if len(res.Updated) > 0 {
		slog.Info("symbol metadata synced", "updated", len(res.Updated), "failed", len(res.Failed))
	}
	return out, res
}

// SyncAll loads the catalog and syncs it. Only a catalog read failure is returned as an error.
func (s *RegistrySync) SyncAll(ctx context.Context) (SyncResult, error) {
	symbols, err := s.repo.ListAll(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: %w", ErrSymbolStore, err)
	}
	_, res := s.Sync(ctx, symbols)
	return res, nil
}

func (s *RegistrySync) syncOne(ctx context.Context, id string) (symbolentity.Metadata, error) {
	md, err := s.meta.CoinInfo(ctx, id)
	if err != nil {
		return symbolentity.Metadata{}, fmt.Errorf("fetch metadata: %w", err)
	}
	if !md.Complete() {
		return symbolentity.Metadata{}, ErrIncompleteMetadata
	}
	if err := s.repo.UpdateMetadata(ctx, id, md); err != nil {
		return symbolentity.Metadata{}, fmt.Errorf("persist metadata: %w", err)
	}
	return md, nil
}
