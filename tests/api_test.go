package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"baupanel/internal/adapter/api/middleware"
	"baupanel/internal/adapter/api/router"
)

// newServer wires the full route table. The middlewares carry no backing
// clients, so only unauthenticated paths are exercised here; everything
// behind Authenticate is rejected before a client would be touched.
func newServer() *echo.Echo {
	e := echo.New()
	router.Setup(e, middleware.NewAuthMiddleware(nil), middleware.NewAdminMiddleware(nil))
	return e
}

func TestHealthCheck(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	e := newServer()

	for _, target := range []string{
		"/v1/folders",
		"/v1/projects/p1/files",
		"/v1/admin/projects",
		"/v1/admin/customers",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestDeletionRoutesRegistered(t *testing.T) {
	e := newServer()

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"DELETE /v1/admin/folders/:id",
		"DELETE /v1/admin/projects/:id",
		"DELETE /v1/admin/projects/:id/files/:fileId",
		"DELETE /v1/admin/customers/:id",
	} {
		assert.True(t, registered[route], route)
	}
}
