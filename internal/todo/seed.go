package todo

// SeedTodos は起動時にストアへ投入される初期データです。
func SeedTodos() []Todo {
	return []Todo{
		{ID: 1, Title: "Buy groceries", IsCompleted: false},
		{ID: 2, Title: "Complete coding assignment", IsCompleted: true},
		{ID: 3, Title: "Go for a run", IsCompleted: false},
		{ID: 4, Title: "Read a book", IsCompleted: true},
		{ID: 5, Title: "Write a blog post", IsCompleted: false},
		{ID: 6, Title: "Attend a meeting", IsCompleted: false},
		{ID: 7, Title: "Learn a new programming language", IsCompleted: true},
		{ID: 8, Title: "Cook dinner", IsCompleted: false},
		{ID: 9, Title: "Plan a weekend trip", IsCompleted: true},
		{ID: 10, Title: "Practice mindfulness", IsCompleted: false},
	}
}
