package usecase_test

import (
	"context"
	"errors"
	"sync"

	symbolentity "quote_aggregator/internal/feature/symbollist/domain/entity"
)

var errNotImplemented = errors.New("not implemented")

// mockSymbolRepository はSymbolRepositoryのモック実装です。同期は並行に呼ぶためロックで保護します。
type mockSymbolRepository struct {
	mu                 sync.Mutex
	ListAllFunc        func(ctx context.Context) ([]symbolentity.Symbol, error)
	UpdateMetadataFunc func(ctx context.Context, id string, md symbolentity.Metadata) error
	Updated            map[string]symbolentity.Metadata
}

func (m *mockSymbolRepository) ListAll(ctx context.Context) ([]symbolentity.Symbol, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errNotImplemented
}

func (m *mockSymbolRepository) UpdateMetadata(ctx context.Context, id string, md symbolentity.Metadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateMetadataFunc != nil {
		if err := m.UpdateMetadataFunc(ctx, id, md); err != nil {
			return err
		}
	}
	if m.Updated == nil {
		m.Updated = map[string]symbolentity.Metadata{}
	}
	m.Updated[id] = md
	return nil
}

func (m *mockSymbolRepository) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Updated)
}

// mockMetadataProvider はMetadataProviderのモック実装です。
type mockMetadataProvider struct {
	mu           sync.Mutex
	CoinInfoFunc func(ctx context.Context, symbol string) (symbolentity.Metadata, error)
	Calls        []string
}

func (m *mockMetadataProvider) CoinInfo(ctx context.Context, symbol string) (symbolentity.Metadata, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, symbol)
	m.mu.Unlock()
	if m.CoinInfoFunc != nil {
		return m.CoinInfoFunc(ctx, symbol)
	}
	return symbolentity.Metadata{}, errNotImplemented
}

func (m *mockMetadataProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// mockQuoteProvider はQuoteProviderのモック実装です。
type mockQuoteProvider struct {
	PriceFunc       func(ctx context.Context, symbol string) (float64, error)
	PriceMultiFunc  func(ctx context.Context, symbols []string) (map[string]float64, error)
	HistoMinuteFunc func(ctx context.Context, symbol string, limit int) ([]float64, error)

	PriceCalls       int
	PriceMultiCalls  int
	HistoMinuteCalls int
}

func (m *mockQuoteProvider) Price(ctx context.Context, symbol string) (float64, error) {
	m.PriceCalls++
	if m.PriceFunc != nil {
		return m.PriceFunc(ctx, symbol)
	}
	return 0, errNotImplemented
}

func (m *mockQuoteProvider) PriceMulti(ctx context.Context, symbols []string) (map[string]float64, error) {
	m.PriceMultiCalls++
	if m.PriceMultiFunc != nil {
		return m.PriceMultiFunc(ctx, symbols)
	}
	return nil, errNotImplemented
}

func (m *mockQuoteProvider) HistoMinute(ctx context.Context, symbol string, limit int) ([]float64, error) {
	m.HistoMinuteCalls++
	if m.HistoMinuteFunc != nil {
		return m.HistoMinuteFunc(ctx, symbol, limit)
	}
	return nil, errNotImplemented
}

// metadataFor はテスト用の完全なメタデータを返します。
func metadataFor(id string) symbolentity.Metadata {
	return symbolentity.Metadata{
		Name:        id + " coin",
		Image:       "https://www.cryptocompare.com/media/" + id + ".png",
		Description: "about " + id,
	}
}

func initialized(id string) symbolentity.Symbol {
	return symbolentity.Symbol{ID: id}.WithMetadata(metadataFor(id))
}
