// Package httpapi exposes the remote control over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/micro-ha/remotectl/internal/http/handlers"
)

// NewRouter builds the full HTTP routing tree for the control API.
func NewRouter(api *handlers.API) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RecoverJSON)
	r.Use(RequestLogger(api))

	r.Get("/healthz", api.Health)

	// The event stream stays outside the timeout group: websocket
	// sessions are long-lived.
	r.Get("/api/events", api.Events)

	r.Group(func(g chi.Router) {
		g.Use(middleware.Timeout(20 * time.Second))
		g.Route("/api", func(apiRouter chi.Router) {
			apiRouter.Get("/layout", api.GetLayout)
			apiRouter.Get("/families", api.ListFamilies)
			apiRouter.Get("/devices", api.ListDevices)
			apiRouter.Put("/slots/{slot}", withSlot(api.BindSlot))
			apiRouter.Post("/slots/{slot}/on", withSlot(api.PressOn))
			apiRouter.Post("/slots/{slot}/off", withSlot(api.PressOff))
			apiRouter.Post("/undo", api.Undo)
		})
	})

	return r
}

func withSlot(h func(http.ResponseWriter, *http.Request, int)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, err := strconv.Atoi(chi.URLParam(r, "slot"))
		if err != nil {
			handlers.WriteError(w, http.StatusBadRequest, "invalid_slot", "slot must be an integer")
			return
		}
		h(w, r, slot)
	}
}

// RunServer starts and gracefully stops the HTTP server with context
// cancellation.
func RunServer(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
