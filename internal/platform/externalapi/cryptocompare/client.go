package cryptocompare

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"quote_aggregator/internal/feature/latest/usecase"
	symbolentity "quote_aggregator/internal/feature/symbollist/domain/entity"
	"quote_aggregator/internal/platform/externalapi/cryptocompare/dto"
	"quote_aggregator/internal/shared/ratelimiter"
)

// ErrCoinNotListed is returned when the coin-listing response has no entry for the requested symbol.
var ErrCoinNotListed = errors.New("coin not listed")

// CryptoCompareMarket はCryptoCompare APIから価格・履歴・銘柄情報を取得する実装です。
type CryptoCompareMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// CryptoCompareMarketが各プロバイダーインターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.MetadataProvider = (*CryptoCompareMarket)(nil)
	_ usecase.QuoteProvider    = (*CryptoCompareMarket)(nil)
)

// NewCryptoCompareMarket は指定された設定とHTTPクライアントでCryptoCompareMarketを生成します。
// limiter が nil の場合はレート制限を行いません。
func NewCryptoCompareMarket(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *CryptoCompareMarket {
	return &CryptoCompareMarket{cfg: cfg, client: client, limiter: limiter}
}

// CoinInfo は銘柄の表示名・画像URL・説明文を取得します。
// 画像URLは ImageBaseURL を基点に解決されます。
func (m *CryptoCompareMarket) CoinInfo(ctx context.Context, symbol string) (symbolentity.Metadata, error) {
	q := url.Values{}
	q.Set("fsym", symbol)

	var body dto.CoinListResponse
	if err := m.get(ctx, "/data/all/coinlist", q, &body); err != nil {
		return symbolentity.Metadata{}, err
	}
	info, ok := body.Data[symbol]
	if !ok {
		return symbolentity.Metadata{}, fmt.Errorf("%w: %s", ErrCoinNotListed, symbol)
	}
	return symbolentity.Metadata{
		Name:        info.CoinName,
		Image:       m.resolveImage(info.ImageURL),
		Description: info.Description,
	}, nil
}

// Price は1銘柄の現在のUSD価格を取得します。
func (m *CryptoCompareMarket) Price(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("fsym", symbol)
	q.Set("tsyms", Currency)

	var body map[string]float64
	if err := m.get(ctx, "/data/price", q, &body); err != nil {
		return 0, err
	}
	p, ok := body[Currency]
	if !ok {
		return 0, fmt.Errorf("cryptocompare: no %s price for %s", Currency, symbol)
	}
	return p, nil
}

// PriceMulti は複数銘柄のUSD価格をカンマ区切りの1リクエストで取得します。
// レスポンスに含まれない銘柄は結果のマップにも含まれません。
func (m *CryptoCompareMarket) PriceMulti(ctx context.Context, symbols []string) (map[string]float64, error) {
	q := url.Values{}
	q.Set("fsyms", strings.Join(symbols, ","))
	q.Set("tsyms", Currency)

	var body map[string]json.RawMessage
	if err := m.get(ctx, "/data/pricemulti", q, &body); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(body))
	for sym, raw := range body {
		var prices map[string]float64
		// 警告などオブジェクト以外のメンバーは読み飛ばす
		if err := json.Unmarshal(raw, &prices); err != nil {
			continue
		}
		if p, ok := prices[Currency]; ok {
			out[sym] = p
		}
	}
	return out, nil
}

// HistoMinute は分足の終値を古い順に返します。
// プロバイダーは limit+1 件を返すことがあります。
func (m *CryptoCompareMarket) HistoMinute(ctx context.Context, symbol string, limit int) ([]float64, error) {
	q := url.Values{}
	q.Set("fsym", symbol)
	q.Set("tsym", Currency)
	q.Set("limit", strconv.Itoa(limit))

	var body dto.HistoMinuteResponse
	if err := m.get(ctx, "/data/v2/histominute", q, &body); err != nil {
		return nil, err
	}
	closes := make([]float64, 0, len(body.Data.Data))
	for _, p := range body.Data.Data {
		closes = append(closes, p.Close)
	}
	return closes, nil
}

func (m *CryptoCompareMarket) resolveImage(path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(m.cfg.ImageBaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// get はGETリクエストを発行し、エラーエンベロープを確認してからoutにデコードします。
func (m *CryptoCompareMarket) get(ctx context.Context, path string, q url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", strings.TrimRight(m.cfg.BaseURL, "/"), path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if m.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Apikey "+m.cfg.APIKey)
	}

	if m.limiter != nil {
		m.limiter.WaitIfNeeded()
	}

	res, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("cryptocompare http %d", res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	// 成功時もエラー時もHTTP 200が返るため、先にエンベロープを確認する
	var env dto.Envelope
	if err := json.Unmarshal(b, &env); err == nil && env.Response == "Error" {
		return fmt.Errorf("cryptocompare: %s", env.Message)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
