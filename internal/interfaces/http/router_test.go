package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/swiftticket/swiftticket/internal/interfaces/http/handlers"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

func newTestRouter(ready error) *Router {
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()
	health := handlers.NewHealthHandler(log, handlers.Check{
		Name: "discord",
		Run:  func(context.Context) error { return ready },
	})
	r := NewRouter(health, log)
	r.SetupRoutes()
	return r
}

func get(r *Router, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.GetEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(nil)

	assert.Equal(t, http.StatusOK, get(r, "/healthz").Code)
	assert.JSONEq(t, `{"status":"ok"}`, get(r, "/healthz").Body.String())
	assert.Equal(t, http.StatusOK, get(r, "/readyz").Code)
	assert.Equal(t, http.StatusOK, get(r, "/version").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/tickets").Code)
}

func TestRouter_NotReady(t *testing.T) {
	r := newTestRouter(errors.New("gateway not connected"))

	w := get(r, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"check":"discord"`)
	assert.Equal(t, http.StatusOK, get(r, "/healthz").Code)
}

func TestRouter_RecoversPanics(t *testing.T) {
	r := newTestRouter(nil)
	r.GetEngine().GET("/panic", func(*gin.Context) { panic("boom") })

	w := get(r, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
