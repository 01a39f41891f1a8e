package todo

// Todo は ToDoタスクを表します。
// JSONタグ: GraphQLレスポンスやログ出力時のフィールド名
type Todo struct {
	// ID: ストアが採番する一意な正の整数
	ID int `json:"id"`

	// Title: タスクのタイトル（必須項目）
	Title string `json:"title"`

	// IsCompleted: 完了状態
	IsCompleted bool `json:"isCompleted"`
}

// Patch は部分更新の入力です。nil のフィールドは「指定なし」を意味します。
type Patch struct {
	Title       *string
	IsCompleted *bool
}

// Empty は更新対象のフィールドがひとつも指定されていない場合に true を返します。
func (p Patch) Empty() bool {
	return p.Title == nil && p.IsCompleted == nil
}

// Apply は指定されたフィールドだけを t に上書きします。
func (p Patch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}
}
