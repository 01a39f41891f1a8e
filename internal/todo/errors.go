package todo

import "fmt"

// Code はクライアントに返す機械可読なエラーコードです。
type Code string

const (
	CodeTodoNotFound     Code = "TODO_NOT_FOUND"
	CodeInvalidID        Code = "INVALID_ID"
	CodeNoFieldsProvided Code = "NO_FIELDS_PROVIDED"
)

// Error はコード付きのエラーです。GraphQLレスポンスでは extensions.code として返されます。
type Error struct {
	Code    Code
	Message string
	ID      int
}

func (e *Error) Error() string {
	return e.Message
}

// Is はコードが一致する場合に true を返します。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Extensions は graphql-go が errors[].extensions に展開する値を返します。
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": string(e.Code),
	}
}

// 比較用のエラー値です。errors.Is(err, todo.ErrInvalidID) のように使います。
var (
	ErrTodoNotFound     = &Error{Code: CodeTodoNotFound}
	ErrInvalidID        = &Error{Code: CodeInvalidID}
	ErrNoFieldsProvided = &Error{Code: CodeNoFieldsProvided}
)

// NewNotFoundError は TODO_NOT_FOUND エラーを作成します。
func NewNotFoundError(id int) *Error {
	return &Error{
		Code:    CodeTodoNotFound,
		Message: fmt.Sprintf("Not found the todo with ID: '%d'", id),
		ID:      id,
	}
}

// NewInvalidIDError は INVALID_ID エラーを作成します。
func NewInvalidIDError(id int) *Error {
	return &Error{
		Code:    CodeInvalidID,
		Message: "The provided ID is invalid",
		ID:      id,
	}
}

// NewNoFieldsProvidedError は NO_FIELDS_PROVIDED エラーを作成します。
func NewNoFieldsProvidedError(id int) *Error {
	return &Error{
		Code:    CodeNoFieldsProvided,
		Message: "At least one field should be provided for update",
		ID:      id,
	}
}
