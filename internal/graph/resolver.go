// Package graph はGraphQLスキーマとリゾルバを提供します。
package graph

import (
	"context"
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"

	"graphql-todo/backend/internal/services"
	"graphql-todo/backend/internal/todo"
)

//go:embed schema.graphql
var schemaSDL string

// NewSchema はリゾルバを結び付けたスキーマを作成します。
// maxDepth が 0 以下の場合は深さ制限を設けません。
func NewSchema(todoService *services.TodoService, maxDepth int) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{}
	if maxDepth > 0 {
		opts = append(opts, graphql.MaxDepth(maxDepth))
	}
	return graphql.ParseSchema(schemaSDL, &Resolver{todoService: todoService}, opts...)
}

// Resolver は Query と Mutation のルートリゾルバです。
type Resolver struct {
	todoService *services.TodoService
}

// GetTodoByID は getTodoByID クエリを解決します。
func (r *Resolver) GetTodoByID(ctx context.Context, args struct{ ID int32 }) (*TodoResolver, error) {
	t, err := r.todoService.GetTodoByID(ctx, int(args.ID))
	if err != nil {
		return nil, err
	}
	return &TodoResolver{todo: t}, nil
}

// GetAllTodos は getAllTodos クエリを解決します。
func (r *Resolver) GetAllTodos(ctx context.Context) []*TodoResolver {
	todos := r.todoService.GetAllTodos(ctx)
	resolvers := make([]*TodoResolver, len(todos))
	for i := range todos {
		resolvers[i] = &TodoResolver{todo: todos[i]}
	}
	return resolvers
}

// CreateTodo は createTodo ミューテーションを解決します。
// isCompleted が省略または null の場合は false で作成されます。
func (r *Resolver) CreateTodo(ctx context.Context, args struct {
	Title       string
	IsCompleted *bool
}) *TodoResolver {
	return &TodoResolver{todo: r.todoService.CreateTodo(ctx, args.Title, args.IsCompleted)}
}

// DeleteTodoByID は deleteTodoByID ミューテーションを解決します。
func (r *Resolver) DeleteTodoByID(ctx context.Context, args struct{ ID int32 }) (*TodoResolver, error) {
	t, err := r.todoService.DeleteTodoByID(ctx, int(args.ID))
	if err != nil {
		return nil, err
	}
	return &TodoResolver{todo: t}, nil
}

// UpdateTodoByID は updateTodoByID ミューテーションを解決します。
func (r *Resolver) UpdateTodoByID(ctx context.Context, args struct {
	ID          int32
	Title       *string
	IsCompleted *bool
}) (*TodoResolver, error) {
	patch := todo.Patch{
		Title:       args.Title,
		IsCompleted: args.IsCompleted,
	}
	t, err := r.todoService.UpdateTodoByID(ctx, int(args.ID), patch)
	if err != nil {
		return nil, err
	}
	return &TodoResolver{todo: t}, nil
}

// TodoResolver は Todo 型のフィールドを解決します。
type TodoResolver struct {
	todo todo.Todo
}

func (t *TodoResolver) ID() int32 {
	return int32(t.todo.ID)
}

func (t *TodoResolver) Title() string {
	return t.todo.Title
}

func (t *TodoResolver) IsCompleted() bool {
	return t.todo.IsCompleted
}
