package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// MaxBodySize はGraphQLリクエストボディの上限です。
const MaxBodySize = 1 << 20

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GraphQLRequest はGraphQL over HTTP のリクエストです。
type GraphQLRequest struct {
	Query         string                 `json:"query" form:"query"`
	OperationName string                 `json:"operationName" form:"operationName"`
	Variables     map[string]interface{} `json:"variables" form:"-"`
}

// GraphQLHandler はGraphQLエンドポイントを管理します。
type GraphQLHandler struct {
	schema *graphql.Schema
}

// NewGraphQLHandler は新しいGraphQLHandlerを作成します。
func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{schema: schema}
}

// QueryHandler は GET /graphql を処理します。variables はJSON文字列で受け取ります。
// GET で実行できるのは query 操作のみです。
func (h *GraphQLHandler) QueryHandler(c *gin.Context) {
	var req GraphQLRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	if op, ok := operationType(req.Query, req.OperationName); ok && op != ast.Query {
		c.Header("Allow", http.MethodPost)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"errors": []gin.H{{
			"message":    "Can only perform a " + string(op) + " operation from a POST request",
			"extensions": gin.H{"code": "BAD_REQUEST"},
		}}})
		return
	}
	if raw := c.Query("variables"); raw != "" {
		if err := json.UnmarshalFromString(raw, &req.Variables); err != nil {
			badRequest(c, "Invalid variables", err)
			return
		}
	}
	h.execute(c, &req)
}

// ExecuteHandler は POST /graphql を処理します。
func (h *GraphQLHandler) ExecuteHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodySize)

	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload", err)
		return
	}
	h.execute(c, &req)
}

func (h *GraphQLHandler) execute(c *gin.Context, req *GraphQLRequest) {
	if req.Query == "" {
		badRequest(c, "Must provide query string", nil)
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}

// operationType は実行される操作の種類を返します。
// 構文エラーや操作を特定できない場合は ok=false で、判定は実行時のエラーに任せます。
func operationType(query, operationName string) (ast.Operation, bool) {
	if query == "" {
		return "", false
	}
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return "", false
	}
	op := doc.Operations.ForName(operationName)
	if op == nil {
		return "", false
	}
	return op.Operation, true
}

// badRequest はGraphQLのエラー形式で 400 を返します。
func badRequest(c *gin.Context, message string, err error) {
	e := gin.H{"message": message}
	if err != nil {
		e["extensions"] = gin.H{"code": "BAD_REQUEST", "details": err.Error()}
	} else {
		e["extensions"] = gin.H{"code": "BAD_REQUEST"}
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{e}})
}
