// Package requestid はリクエストIDをcontextで受け渡します。
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header はリクエストIDを運ぶHTTPヘッダー名です。
const Header = "X-Request-ID"

type contextKey struct{}

// WithID はリクエストIDを ctx に設定します。
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext は ctx からリクエストIDを取り出します。無い場合は空文字です。
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// New は新しいリクエストIDを生成します。
func New() string {
	return uuid.New().String()
}
