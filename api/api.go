package api

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wearloom/storefront-api/catalog"
	"github.com/wearloom/storefront-api/store"
	"github.com/wearloom/storefront-api/tryon"
)

// Handler carries the service dependencies for the HTTP surface.
type Handler struct {
	Catalog  *catalog.Catalog
	Sessions *store.Manager
	Pipeline *tryon.Pipeline
	Fetcher  *tryon.RelayFetcher
	Logger   *zap.Logger
}

const sessionCookie = "session_id"

// sessionID returns the request's session id, minting one if absent.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

// HealthHandler reports liveness.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
