// Package handler はlatestフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"quote_aggregator/internal/feature/latest/transport/http/dto"
	"quote_aggregator/internal/feature/latest/usecase"

	"github.com/gin-gonic/gin"
)

// LatestUsecase は最新価格取得のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LatestUsecase interface {
	Latest(ctx context.Context, req usecase.Request) (usecase.Result, error)
}

// LatestHandler は最新価格のHTTPリクエストを処理します。
type LatestHandler struct {
	uc LatestUsecase
}

// NewLatestHandler は指定されたusecaseでLatestHandlerの新しいインスタンスを生成します。
func NewLatestHandler(uc LatestUsecase) *LatestHandler {
	return &LatestHandler{uc: uc}
}

// Latest はリクエストボディに応じて詳細または一覧の価格をJSONで返します。
//
// エンドポイント例:
// POST /latest {"symbol":"BTC"}        → 詳細オブジェクト
// POST /latest {"symbols":["BTC","ETH"]} → 一覧配列
// POST /latest {}                       → 全銘柄の一覧配列
func (h *LatestHandler) Latest(c *gin.Context) {
	var body dto.LatestRequest
	// 空ボディは {} と同じ扱い
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("latest: invalid request body", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.uc.Latest(c.Request.Context(), usecase.Request{Symbol: body.Symbol, Symbols: body.Symbols})
	if err != nil {
		status, msg := statusFor(err)
		slog.Error("latest: request failed", "error", err, "status", status)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if res.Mode == usecase.ModeDetail {
		d := res.Detail
		history := d.History
		if history == nil {
			history = []float64{}
		}
		c.JSON(http.StatusOK, dto.QuoteDetailResponse{
			ID:          d.ID,
			Price:       d.Price,
			Image:       d.Image,
			Name:        d.Name,
			Description: d.Description,
			History:     history,
		})
		return
	}

	out := make([]dto.QuoteItemResponse, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, dto.QuoteItemResponse{ID: it.ID, Price: it.Price, Image: it.Image})
	}
	c.JSON(http.StatusOK, out)
}

// statusFor はユースケースのエラーをHTTPステータスと公開メッセージに変換します。
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrProvider):
		return http.StatusBadGateway, usecase.ErrProvider.Error()
	case errors.Is(err, usecase.ErrSymbolStore):
		return http.StatusInternalServerError, usecase.ErrSymbolStore.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
