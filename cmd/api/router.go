package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"graphql-todo/backend/internal/config"
	"graphql-todo/backend/internal/metrics"
	"graphql-todo/backend/internal/routes"
	"graphql-todo/backend/internal/services"
	"graphql-todo/backend/internal/todo"
)

// setupServer はストア・サービス・ルーターを組み立て、http.Server を返します。
func setupServer(cfg config.Config) (*http.Server, error) {
	deps := routes.Dependencies{}
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Registry = reg
		deps.Metrics = metrics.New(reg)
	}

	todoRepo := todo.NewSeededRepository()
	deps.TodoService = services.NewTodoService(todoRepo, deps.Metrics)
	log.Printf("Seeded in-memory store with %d todos", todoRepo.Len())

	router, err := routes.SetupRouter(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("could not set up router: %w", err)
	}

	return &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}, nil
}
