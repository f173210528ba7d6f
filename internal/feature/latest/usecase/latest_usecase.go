// Package usecase implements the latest-price aggregation: registry sync,
// request routing and quote fetching.
package usecase

import (
	"context"
	"fmt"

	"quote_aggregator/internal/feature/latest/domain/entity"
	symbolentity "quote_aggregator/internal/feature/symbollist/domain/entity"
)

// HistoryLength is the number of minute closes returned in detail mode.
const HistoryLength = 60

// SymbolRepository は銘柄カタログの読み書きを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SymbolRepository interface {
	ListAll(ctx context.Context) ([]symbolentity.Symbol, error)
	UpdateMetadata(ctx context.Context, id string, md symbolentity.Metadata) error
}

// MetadataProvider は外部APIから銘柄の表示用メタデータを取得します。
type MetadataProvider interface {
	CoinInfo(ctx context.Context, symbol string) (symbolentity.Metadata, error)
}

// QuoteProvider は外部APIから価格と分足履歴を取得します。
type QuoteProvider interface {
	Price(ctx context.Context, symbol string) (float64, error)
	PriceMulti(ctx context.Context, symbols []string) (map[string]float64, error)
	HistoMinute(ctx context.Context, symbol string, limit int) ([]float64, error)
}

// Result holds exactly one of the two response shapes, selected by Mode.
type Result struct {
	Mode   Mode
	Detail *entity.QuoteDetail
	Items  []entity.QuoteItem
}

// LatestUsecase は最新価格リクエストを処理します。
type LatestUsecase struct {
	repo   SymbolRepository
	sync   *RegistrySync
	quotes QuoteProvider
}

// NewLatestUsecase はLatestUsecaseの新しいインスタンスを生成します。
func NewLatestUsecase(repo SymbolRepository, sync *RegistrySync, quotes QuoteProvider) *LatestUsecase {
	return &LatestUsecase{repo: repo, sync: sync, quotes: quotes}
}

// Latest はカタログを読み込み、未初期化の銘柄があれば同期してから、
// リクエストの形に応じて詳細または一覧の価格を返します。
func (u *LatestUsecase) Latest(ctx context.Context, req Request) (Result, error) {
	symbols, err := u.repo.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSymbolStore, err)
	}

	if NeedsSync(symbols) {
		symbols, _ = u.sync.Sync(ctx, symbols)
	}

	route := Resolve(symbols, req)
	if route.Mode == ModeDetail {
		d, err := u.detail(ctx, route.Symbols[0])
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: ModeDetail, Detail: d}, nil
	}

	items, err := u.list(ctx, route.Symbols)
	if err != nil {
		return Result{}, err
	}
	return Result{Mode: ModeList, Items: items}, nil
}

func (u *LatestUsecase) detail(ctx context.Context, s symbolentity.Symbol) (*entity.QuoteDetail, error) {
	price, err := u.quotes.Price(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: price %s: %w", ErrProvider, s.ID, err)
	}
	history, err := u.quotes.HistoMinute(ctx, s.ID, HistoryLength)
	if err != nil {
		return nil, fmt.Errorf("%w: history %s: %w", ErrProvider, s.ID, err)
	}
	return &entity.QuoteDetail{
		ID:          s.ID,
		Price:       price,
		Image:       s.Image,
		Name:        s.Name,
		Description: s.Description,
		History:     lastN(history, HistoryLength),
	}, nil
}

// list は1回のバッチ呼び出しで価格を取得し、プロバイダーが価格を返した銘柄のみを返します。
func (u *LatestUsecase) list(ctx context.Context, symbols []symbolentity.Symbol) ([]entity.QuoteItem, error) {
	items := make([]entity.QuoteItem, 0, len(symbols))
	if len(symbols) == 0 {
		return items, nil
	}

	ids := make([]string, 0, len(symbols))
	for _, s := range symbols {
		ids = append(ids, s.ID)
	}
	prices, err := u.quotes.PriceMulti(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: prices: %w", ErrProvider, err)
	}

	for _, s := range symbols {
		p, ok := prices[s.ID]
		if !ok {
			continue
		}
		items = append(items, entity.QuoteItem{ID: s.ID, Price: p, Image: s.Image})
	}
	return items, nil
}

// lastN は末尾n件を返します。histominute は limit+1 件を返すためです。
func lastN(xs []float64, n int) []float64 {
	if len(xs) <= n {
		return xs
	}
	return xs[len(xs)-n:]
}
