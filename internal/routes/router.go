// Package routesはroutingを行います。
package routes

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"graphql-todo/backend/internal/config"
	"graphql-todo/backend/internal/graph"
	"graphql-todo/backend/internal/handlers"
	"graphql-todo/backend/internal/metrics"
	"graphql-todo/backend/internal/requestid"
	"graphql-todo/backend/internal/services"
)

// Dependencies はルーターに注入するコンポーネントです。
// Registry が nil の場合 /metrics は公開しません。
type Dependencies struct {
	TodoService *services.TodoService
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
}

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(cfg config.Config, deps Dependencies) (*gin.Engine, error) {
	schema, err := graph.NewSchema(deps.TodoService, cfg.GraphQLMaxDepth)
	if err != nil {
		return nil, fmt.Errorf("could not parse graphql schema: %w", err)
	}

	r := gin.Default()

	// CORS対策
	if corsConfig, ok := newCORSConfig(cfg.CORSAllowOrigins); ok {
		r.Use(cors.New(corsConfig))
	}
	r.Use(RequestIDMiddleware())
	if deps.Metrics != nil {
		r.Use(MetricsMiddleware(deps.Metrics))
	}

	// ハンドラー
	graphqlHandler := handlers.NewGraphQLHandler(schema)
	healthHandler := handlers.NewHealthHandler(deps.TodoService)

	// ルーティング
	r.GET("/api/health", healthHandler.HealthCheckHandler)
	r.GET("/graphql", graphqlHandler.QueryHandler)
	r.POST("/graphql", graphqlHandler.ExecuteHandler)
	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	return r, nil
}

// newCORSConfig は許可オリジンからCORS設定を作ります。オリジンが空の場合は ok=false です。
func newCORSConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}

	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestid.Header}
	config.ExposeHeaders = []string{requestid.Header}
	for _, o := range origins {
		if o == "*" {
			config.AllowAllOrigins = true
			return config, true
		}
	}
	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config, true
}
