package graph

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g := newTestGraph(t)
	authorID := g.seedAuthor(t, "Harper Lee", "1926-04-28")
	g.seedBook(t, "To Kill a Mockingbird", authorID)

	router := gin.New()
	router.POST("/graphql", NewHandler(g.schema))
	return router
}

func postGraphQL(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_Query(t *testing.T) {
	router := newTestRouter(t)

	recorder := postGraphQL(t, router, `{"query": "{ books { title } }"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Data struct {
			Books []struct {
				Title string `json:"title"`
			} `json:"books"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response.Data.Books, 1)
	assert.Equal(t, "To Kill a Mockingbird", response.Data.Books[0].Title)
}

func TestHandler_Variables(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"query": "query List($limit: Int) { authors(limit: $limit) { name } }",
		"variables": {"limit": 1}
	}`
	recorder := postGraphQL(t, router, body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Harper Lee")
}

func TestHandler_ExecutionErrorsKeepStatus200(t *testing.T) {
	router := newTestRouter(t)

	recorder := postGraphQL(t, router, `{"query": "mutation { deleteReview(id: \"zzz\") }"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Errors []struct {
			Message    string                 `json:"message"`
			Extensions map[string]interface{} `json:"extensions"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotEmpty(t, response.Errors)
	assert.Equal(t, "VALIDATION_ERROR", response.Errors[0].Extensions["code"])
}

func TestHandler_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	recorder := postGraphQL(t, router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
