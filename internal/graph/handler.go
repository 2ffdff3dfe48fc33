package graph

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewHandler returns the gin handler serving the graph over POST with a
// JSON body. Execution errors travel inside the GraphQL response body;
// the HTTP status stays 200 (partial-result semantics). Only an
// unreadable request body is an HTTP-level error.
func NewHandler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graphqlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": []gin.H{{"message": "invalid request body"}},
			})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			// The request context carries the caller's identity and
			// cancellation signal down to the store calls.
			Context: c.Request.Context(),
		})

		c.JSON(http.StatusOK, result)
	}
}
