package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/middlewares"
	"github.com/mdmahfuzahmedony/Garments-Order-Production-Tracker-System-Server/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")
}

// newRequest builds a JSON request, attaching a session cookie for
// email when one is given.
func newRequest(t *testing.T, method, target string, body any, email string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	if email != "" {
		token, err := utils.GenerateToken(email)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middlewares.CookieName, Value: token})
	}
	return req
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func testAuth() gin.HandlerFunc {
	return middlewares.AuthMiddleware(utils.NewMemoryTokenStore())
}
