package services

import (
	"context"
	"errors"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"graphql-todo/backend/internal/metrics"
	"graphql-todo/backend/internal/requestid"
	"graphql-todo/backend/internal/todo"
)

const tracerName = "graphql-todo/backend/internal/services"

// TodoService はTodo関連のビジネスロジックを扱います。
type TodoService struct {
	todoRepo *todo.Repository
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

// NewTodoService は新しいTodoServiceを作成します。m は nil でも構いません。
func NewTodoService(todoRepo *todo.Repository, m *metrics.Metrics) *TodoService {
	m.SetTodosStored(todoRepo.Len())
	return &TodoService{
		todoRepo: todoRepo,
		metrics:  m,
		tracer:   otel.Tracer(tracerName),
	}
}

// GetTodoByID は指定IDのTodoを取得します。
func (s *TodoService) GetTodoByID(ctx context.Context, id int) (todo.Todo, error) {
	ctx, span := s.start(ctx, "getTodoByID", attribute.Int("todo.id", id))
	defer span.End()

	t, err := s.todoRepo.FindByID(id)
	if err != nil {
		return todo.Todo{}, s.fail(ctx, span, "getTodoByID", todo.NewNotFoundError(id))
	}
	s.succeed("getTodoByID")
	return t, nil
}

// GetAllTodos はすべてのTodoを取得します。0件の場合は空のスライスです。
func (s *TodoService) GetAllTodos(ctx context.Context) []todo.Todo {
	_, span := s.start(ctx, "getAllTodos")
	defer span.End()

	todos := s.todoRepo.FindAll()
	span.SetAttributes(attribute.Int("todo.count", len(todos)))
	s.succeed("getAllTodos")
	return todos
}

// CreateTodo は新しいTodoを作成します。isCompleted が nil の場合は false です。
func (s *TodoService) CreateTodo(ctx context.Context, title string, isCompleted *bool) todo.Todo {
	_, span := s.start(ctx, "createTodo")
	defer span.End()

	completed := false
	if isCompleted != nil {
		completed = *isCompleted
	}

	created := s.todoRepo.Create(title, completed)
	span.SetAttributes(attribute.Int("todo.id", created.ID))
	s.metrics.SetTodosStored(s.todoRepo.Len())
	s.succeed("createTodo")
	return created
}

// UpdateTodoByID は指定されたフィールドだけを更新します。
// IDが存在しない場合は INVALID_ID、更新フィールドが無い場合は NO_FIELDS_PROVIDED です。
func (s *TodoService) UpdateTodoByID(ctx context.Context, id int, patch todo.Patch) (todo.Todo, error) {
	ctx, span := s.start(ctx, "updateTodoByID", attribute.Int("todo.id", id))
	defer span.End()

	updated, err := s.todoRepo.Update(id, patch)
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return todo.Todo{}, s.fail(ctx, span, "updateTodoByID", todo.NewInvalidIDError(id))
	case errors.Is(err, todo.ErrEmptyPatch):
		return todo.Todo{}, s.fail(ctx, span, "updateTodoByID", todo.NewNoFieldsProvidedError(id))
	case err != nil:
		return todo.Todo{}, s.fail(ctx, span, "updateTodoByID", err)
	}
	s.succeed("updateTodoByID")
	return updated, nil
}

// DeleteTodoByID は指定IDのTodoを削除し、削除したTodoを返します。
func (s *TodoService) DeleteTodoByID(ctx context.Context, id int) (todo.Todo, error) {
	ctx, span := s.start(ctx, "deleteTodoByID", attribute.Int("todo.id", id))
	defer span.End()

	deleted, err := s.todoRepo.Delete(id)
	if err != nil {
		return todo.Todo{}, s.fail(ctx, span, "deleteTodoByID", todo.NewInvalidIDError(id))
	}
	s.metrics.SetTodosStored(s.todoRepo.Len())
	s.succeed("deleteTodoByID")
	return deleted, nil
}

// Count は保持しているTodoの件数を返します。
func (s *TodoService) Count() int {
	return s.todoRepo.Len()
}

func (s *TodoService) start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "todo."+operation, trace.WithAttributes(attrs...))
	if id := requestid.FromContext(ctx); id != "" {
		span.SetAttributes(attribute.String("request.id", id))
	}
	return ctx, span
}

func (s *TodoService) succeed(operation string) {
	s.metrics.RecordOperation(operation, "ok")
}

func (s *TodoService) fail(ctx context.Context, span trace.Span, operation string, err error) error {
	result := "error"
	var coded *todo.Error
	if errors.As(err, &coded) {
		result = string(coded.Code)
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.RecordOperation(operation, result)
	log.Printf("[%s] %s failed: %s (%v)", requestid.FromContext(ctx), operation, result, err)
	return err
}
