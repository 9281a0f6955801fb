package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrobakowski/humanoid/internal/generator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := map[string]generator.Generator{
		"customer": generator.NewCrockfordGenerator("cus"),
		"user":     generator.NewCuid2Generator("usr"),
	}

	r := gin.New()
	New(registry).Register(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return w, body
}

func TestMintSingle(t *testing.T) {
	r := newTestRouter(t)
	w, body := doRequest(t, r, http.MethodPost, "/v1/ids/customer")

	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]any)
	id := data["id"].(string)
	assert.True(t, strings.HasPrefix(id, "cus_"), "id %q", id)
}

func TestMintBatch(t *testing.T) {
	r := newTestRouter(t)
	w, body := doRequest(t, r, http.MethodPost, "/v1/ids/user?count=5")

	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]any)
	ids := data["ids"].([]any)
	require.Len(t, ids, 5)
	for _, id := range ids {
		assert.True(t, strings.HasPrefix(id.(string), "usr_"))
	}
}

func TestMintBadCount(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/v1/ids/customer?count=0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/v1/ids/customer?count=1001")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/v1/ids/customer?count=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownEntity(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doRequest(t, r, http.MethodPost, "/v1/ids/widget")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidate(t *testing.T) {
	r := newTestRouter(t)

	w, body := doRequest(t, r, http.MethodGet, "/v1/ids/customer/validate?id="+url.QueryEscape("cus_Z0"))
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.True(t, data["valid"].(bool))

	w, body = doRequest(t, r, http.MethodGet, "/v1/ids/customer/validate?id="+url.QueryEscape("ord_Z0"))
	require.Equal(t, http.StatusOK, w.Code)
	data = body["data"].(map[string]any)
	assert.False(t, data["valid"].(bool))

	w, _ = doRequest(t, r, http.MethodGet, "/v1/ids/customer/validate")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParse(t *testing.T) {
	r := newTestRouter(t)

	w, body := doRequest(t, r, http.MethodGet, "/v1/ids/customer/parse?id="+url.QueryEscape("cus_Z0"))
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "cus", data["prefix"])
	assert.Equal(t, "Z0", data["body"])
	assert.Equal(t, "992", data["decimal_value"])
	assert.Equal(t, "cus_Z0", data["canonical"])

	w, _ = doRequest(t, r, http.MethodGet, "/v1/ids/customer/parse?id="+url.QueryEscape("cus_42069*"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doRequest(t, r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}
