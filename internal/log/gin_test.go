package log

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiddlewareRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.New(buf)

	r := gin.New()
	r.Use(GinMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestGinMiddlewareGeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newMiddlewareRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	reqID := w.Header().Get(headerRequestID)
	require.NotEmpty(t, reqID)
	_, err := uuid.Parse(reqID)
	assert.NoError(t, err, "generated request id %q", reqID)

	out := buf.String()
	assert.Contains(t, out, `"`+FieldRequestID+`":"`+reqID+`"`)
	assert.Contains(t, out, `"`+FieldPath+`":"/ping"`)
	assert.Contains(t, out, `"`+FieldStatus+`":200`)
	assert.Contains(t, out, "request completed")
}

func TestGinMiddlewareKeepsProvidedRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newMiddlewareRouter(&buf)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "req-1234")
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-1234", w.Header().Get(headerRequestID))
	assert.Contains(t, buf.String(), `"`+FieldRequestID+`":"req-1234"`)
}
