package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var res Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "body: %s", w.Body.String())
	return res
}

func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"id": "cus_Z0"})

	assert.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.True(t, res.Success)
	assert.Nil(t, res.Error)
	assert.Equal(t, "cus_Z0", res.Data.(map[string]any)["id"])
}

func TestCreated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, gin.H{"id": "usr_abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestErrorHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		name   string
		send   func(c *gin.Context)
		status int
		code   string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "nope") }, http.StatusBadRequest, "BAD_REQUEST"},
		{"not found", func(c *gin.Context) { NotFound(c, "nope") }, http.StatusNotFound, "NOT_FOUND"},
		{"unprocessable", func(c *gin.Context) { UnprocessableEntity(c, "nope") }, http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY"},
		{"internal", func(c *gin.Context) { InternalError(c, "nope") }, http.StatusInternalServerError, "INTERNAL_ERROR"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.send(c)

			assert.Equal(t, tc.status, w.Code)
			res := decode(t, w)
			assert.False(t, res.Success)
			require.NotNil(t, res.Error)
			assert.Equal(t, tc.code, res.Error.Code)
			assert.Equal(t, "nope", res.Error.Message)
		})
	}
}
