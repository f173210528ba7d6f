// Package middleware はアプリ全体で共有するGinミドルウェアを提供します。
package middleware

import "github.com/gin-gonic/gin"

const (
	// AllowOrigin は全オリジンを許可します。モバイルクライアントとブラウザの両方から呼ばれます。
	AllowOrigin = "*"
	// AllowHeaders はホスト型プラットフォームのクライアントSDKが送るヘッダーです。
	AllowHeaders = "authorization, x-client-info, apikey"
)

// CORS は全レスポンスに固定のCORSヘッダーを付与します。
// Originヘッダーの有無に関係なく付与する点が gin-contrib/cors と異なります。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", AllowOrigin)
		c.Header("Access-Control-Allow-Headers", AllowHeaders)
		c.Next()
	}
}

// Preflight はOPTIONSリクエストに "ok" を返します。
func Preflight(c *gin.Context) {
	c.String(200, "ok")
}
