package todo_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphql-todo/backend/internal/todo"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		seed []todo.Todo
		want int
	}{
		{name: "empty store", seed: nil, want: 1},
		{name: "seeded store", seed: todo.SeedTodos(), want: 11},
		{name: "gaps and unordered ids", seed: []todo.Todo{{ID: 7}, {ID: 3}, {ID: 42}, {ID: 5}}, want: 43},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := todo.NewRepository(tt.seed)
			got := repo.NextID()
			assert.Equal(t, tt.want, got)
			for _, existing := range repo.FindAll() {
				assert.Greater(t, got, existing.ID)
			}
		})
	}
}

func TestNextID_ReusesIDAfterDeletingMax(t *testing.T) {
	repo := todo.NewSeededRepository()

	_, err := repo.Delete(10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.NextID())

	created := repo.Create("Replacement", false)
	assert.Equal(t, 10, created.ID)
}

func TestFindAll_FreshStore(t *testing.T) {
	repo := todo.NewSeededRepository()

	todos := repo.FindAll()
	require.Len(t, todos, 10)
	assert.Equal(t, todo.SeedTodos(), todos)
}

func TestFindAll_EmptyStoreReturnsEmptySlice(t *testing.T) {
	repo := todo.NewRepository(nil)

	todos := repo.FindAll()
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestFindAll_ReturnsCopy(t *testing.T) {
	repo := todo.NewSeededRepository()

	todos := repo.FindAll()
	todos[0].Title = "mutated by caller"

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", got.Title)
}

func TestNewRepository_CopiesSeed(t *testing.T) {
	seed := []todo.Todo{{ID: 1, Title: "original"}}
	repo := todo.NewRepository(seed)
	seed[0].Title = "changed"

	got, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestFindByID(t *testing.T) {
	repo := todo.NewSeededRepository()

	got, err := repo.FindByID(4)
	require.NoError(t, err)
	assert.Equal(t, todo.Todo{ID: 4, Title: "Read a book", IsCompleted: true}, got)

	_, err = repo.FindByID(9999)
	assert.ErrorIs(t, err, todo.ErrNotFound)
}

func TestCreate(t *testing.T) {
	repo := todo.NewSeededRepository()

	created := repo.Create("Buy milk", false)
	assert.Equal(t, todo.Todo{ID: 11, Title: "Buy milk", IsCompleted: false}, created)
	assert.Equal(t, 11, repo.Len())

	all := repo.FindAll()
	assert.Equal(t, created, all[len(all)-1], "new todo should be appended")
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		patch   todo.Patch
		want    todo.Todo
		wantErr error
	}{
		{
			name:  "title only",
			id:    1,
			patch: todo.Patch{Title: strPtr("New title")},
			want:  todo.Todo{ID: 1, Title: "New title", IsCompleted: false},
		},
		{
			name:  "isCompleted only",
			id:    2,
			patch: todo.Patch{IsCompleted: boolPtr(false)},
			want:  todo.Todo{ID: 2, Title: "Complete coding assignment", IsCompleted: false},
		},
		{
			name:  "both fields",
			id:    3,
			patch: todo.Patch{Title: strPtr("Go for a swim"), IsCompleted: boolPtr(true)},
			want:  todo.Todo{ID: 3, Title: "Go for a swim", IsCompleted: true},
		},
		{
			name:    "unknown id",
			id:      9999,
			patch:   todo.Patch{Title: strPtr("x")},
			wantErr: todo.ErrNotFound,
		},
		{
			name:    "empty patch",
			id:      1,
			patch:   todo.Patch{},
			wantErr: todo.ErrEmptyPatch,
		},
		{
			name:    "unknown id is reported before empty patch",
			id:      9999,
			patch:   todo.Patch{},
			wantErr: todo.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := todo.NewSeededRepository()

			got, err := repo.Update(tt.id, tt.patch)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				assert.Equal(t, todo.SeedTodos(), repo.FindAll(), "failed update must not change the store")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			stored, err := repo.FindByID(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored)
		})
	}
}

func TestDelete(t *testing.T) {
	repo := todo.NewSeededRepository()

	deleted, err := repo.Delete(1)
	require.NoError(t, err)
	assert.Equal(t, todo.Todo{ID: 1, Title: "Buy groceries", IsCompleted: false}, deleted)
	assert.Equal(t, 9, repo.Len())

	_, err = repo.FindByID(1)
	assert.ErrorIs(t, err, todo.ErrNotFound)

	// 残りの順序は保持される
	want := todo.SeedTodos()[1:]
	assert.Equal(t, want, repo.FindAll())
}

func TestDelete_UnknownID(t *testing.T) {
	repo := todo.NewSeededRepository()

	_, err := repo.Delete(9999)
	assert.ErrorIs(t, err, todo.ErrNotFound)
	assert.Equal(t, 10, repo.Len())
}

func TestPatch(t *testing.T) {
	assert.True(t, todo.Patch{}.Empty())
	assert.False(t, todo.Patch{Title: strPtr("")}.Empty())
	assert.False(t, todo.Patch{IsCompleted: boolPtr(false)}.Empty())

	item := todo.Todo{ID: 1, Title: "a", IsCompleted: true}
	todo.Patch{Title: strPtr("")}.Apply(&item)
	assert.Equal(t, todo.Todo{ID: 1, Title: "", IsCompleted: true}, item)
}

func TestCreate_ConcurrentCallsGetUniqueIDs(t *testing.T) {
	repo := todo.NewRepository(nil)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			repo.Create("parallel", false)
		}()
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for _, item := range repo.FindAll() {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n+1, repo.NextID())
}
