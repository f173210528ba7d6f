package router

import (
	latesthandler "quote_aggregator/internal/feature/latest/transport/handler"
	symbollisthandler "quote_aggregator/internal/feature/symbollist/transport/handler"
	infrahandler "quote_aggregator/internal/platform/http/handler"
	"quote_aggregator/internal/platform/http/middleware"
	jwtmw "quote_aggregator/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

// NewRouter はアプリケーションのルーティングを構築します。
// jwtSecret が空の場合、クォート系エンドポイントは認証なしで公開されます。
func NewRouter(health *infrahandler.HealthHandler, latest *latesthandler.LatestHandler,
	symbol *symbollisthandler.SymbolHandler, jwtSecret string) *gin.Engine {
	r := gin.Default()

	// 全レスポンスに固定のCORSヘッダーを付与
	r.Use(middleware.CORS())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	// プリフライト
	r.OPTIONS("/", middleware.Preflight)
	r.OPTIONS("/latest", middleware.Preflight)

	api := r.Group("/")
	if jwtSecret != "" {
		// → リクエストヘッダーに JWT が必要になる
		api.Use(jwtmw.AuthRequired(jwtSecret))
	}
	{
		api.POST("/", latest.Latest)
		api.POST("/latest", latest.Latest)
		api.GET("/symbols", symbol.List)
	}

	return r
}
