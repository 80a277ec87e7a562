package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Wekraft-001/admin-hub/pkg/errors"
)

type fakeAuthenticator struct {
	tokens map[string]string
	err    error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	sid, ok := f.tokens[token]
	if !ok {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "session is not authenticated")
	}
	return sid, nil
}

func newSessionRouter(mw gin.HandlerFunc) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.GET("/admin/modules", mw, func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, SessionID(c))
	})
	return r, &reached
}

func TestRequireSessionRejectsMissingToken(t *testing.T) {
	r, reached := newSessionRouter(RequireSession(&fakeAuthenticator{}, ""))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/modules", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, appErrors.ErrUnauthorized.Code, body.Error.Code)
	assert.Equal(t, LoginPath, body.Meta["redirect"])
}

func TestRequireSessionAcceptsBearerAndCookie(t *testing.T) {
	auth := &fakeAuthenticator{tokens: map[string]string{"tok": "sid-1"}}
	r, reached := newSessionRouter(RequireSession(auth, "admin_session"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/modules", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sid-1", rec.Body.String())
	assert.True(t, *reached)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/modules", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "tok"})
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSessionRejectsSignedOutToken(t *testing.T) {
	r, reached := newSessionRouter(RequireSession(&fakeAuthenticator{tokens: map[string]string{}}, ""))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/modules", nil)
	req.Header.Set("Authorization", "Bearer stale")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/admin/login"`)
	assert.False(t, *reached)
}

func TestRequireSessionSurfacesStoreFailures(t *testing.T) {
	r, _ := newSessionRouter(RequireSession(&fakeAuthenticator{err: appErrors.ErrInternal}, ""))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/modules", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "redirect")
}

func TestOptionalSessionNeverBlocks(t *testing.T) {
	r, reached := newSessionRouter(OptionalSession(&fakeAuthenticator{tokens: map[string]string{}}, ""))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/modules", nil)
	req.Header.Set("Authorization", "Bearer unknown")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.True(t, *reached)
}
