package todo

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound は指定IDのTodoが存在しない場合のエラーです。
	ErrNotFound = errors.New("todo not found")

	// ErrEmptyPatch は更新フィールドがひとつも指定されていない場合のエラーです。
	ErrEmptyPatch = errors.New("no fields to update")
)

// Repository はメモリ上のTodoコレクションを保持します。
// 挿入順は保持され、更新・削除で並び替えは行いません。
// 呼び出し側には常にコピーを返します。
type Repository struct {
	mu    sync.RWMutex
	todos []Todo
}

// NewRepository は seed をコピーした新しいRepositoryインスタンスを作成します。
func NewRepository(seed []Todo) *Repository {
	todos := make([]Todo, len(seed))
	copy(todos, seed)
	return &Repository{todos: todos}
}

// NewSeededRepository は初期データ入りのRepositoryを作成します。
func NewSeededRepository() *Repository {
	return NewRepository(SeedTodos())
}

// NextID は次に採番されるIDを返します。空の場合は 1 です。
func (r *Repository) NextID() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nextID()
}

func (r *Repository) nextID() int {
	maxID := 0
	for _, t := range r.todos {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// indexOf は mu を保持した状態で呼び出すこと。
func (r *Repository) indexOf(id int) int {
	for i, t := range r.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Len は現在のTodo件数を返します。
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos)
}

// FindAll はすべてのTodoを挿入順で返します。
func (r *Repository) FindAll() []Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := make([]Todo, len(r.todos))
	copy(todos, r.todos)
	return todos
}

// FindByID は指定されたIDのTodoを返します。
func (r *Repository) FindByID(id int) (Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i == -1 {
		return Todo{}, ErrNotFound
	}
	return r.todos[i], nil
}

// Create は新しいTodoを末尾に追加します。
func (r *Repository) Create(title string, isCompleted bool) Todo {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := Todo{
		ID:          r.nextID(),
		Title:       title,
		IsCompleted: isCompleted,
	}
	r.todos = append(r.todos, t)
	return t
}

// Update は指定IDのTodoに patch を適用し、更新後の値を返します。
// IDの存在確認を先に行い、その後で patch が空かどうかを確認します。
func (r *Repository) Update(id int, patch Patch) (Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return Todo{}, ErrNotFound
	}
	if patch.Empty() {
		return Todo{}, ErrEmptyPatch
	}

	patch.Apply(&r.todos[i])
	return r.todos[i], nil
}

// Delete は指定IDのTodoをコレクションから取り除き、削除したTodoを返します。
func (r *Repository) Delete(id int) (Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i == -1 {
		return Todo{}, ErrNotFound
	}

	deleted := r.todos[i]
	r.todos = append(r.todos[:i], r.todos[i+1:]...)
	return deleted, nil
}
