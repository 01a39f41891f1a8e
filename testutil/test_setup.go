package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"graphql-todo/backend/internal/config"
	"graphql-todo/backend/internal/metrics"
	"graphql-todo/backend/internal/routes"
	"graphql-todo/backend/internal/services"
	"graphql-todo/backend/internal/todo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GraphQLError はレスポンスの errors 要素です。
type GraphQLError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path"`
	Extensions map[string]interface{} `json:"extensions"`
}

// Code は extensions.code を返します。
func (e GraphQLError) Code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// GraphQLResponse はGraphQLのレスポンスボディです。
type GraphQLResponse struct {
	Data   jsoniter.RawMessage `json:"data"`
	Errors []GraphQLError      `json:"errors"`
}

// DecodeData は data を v にデコードします。
func (r *GraphQLResponse) DecodeData(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v))
}

// TestTodo はレスポンス中の Todo です。
type TestTodo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// SetupTestRouter は初期データ入りの新しいストアでテスト用のGinルーターをセットアップします。
func SetupTestRouter(t *testing.T) (*gin.Engine, *todo.Repository, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	repo := todo.NewSeededRepository()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	router, err := routes.SetupRouter(cfg, routes.Dependencies{
		TodoService: services.NewTodoService(repo, m),
		Metrics:     m,
		Registry:    reg,
	})
	require.NoError(t, err)
	return router, repo, reg
}

// PostGraphQL は POST /graphql にリクエストを送り、レスポンスレコーダーを返します。
func PostGraphQL(t *testing.T, router *gin.Engine, query string, variables map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload := map[string]interface{}{"query": query}
	if variables != nil {
		payload["variables"] = variables
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/graphql", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecGraphQL は PostGraphQL を実行し、200 を確認してレスポンスをデコードします。
func ExecGraphQL(t *testing.T, router *gin.Engine, query string, variables map[string]interface{}) *GraphQLResponse {
	t.Helper()

	w := PostGraphQL(t, router, query, variables)
	require.Equal(t, http.StatusOK, w.Code, "unexpected status: %s", w.Body.String())

	var resp GraphQLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return &resp
}
