package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/micro-ha/remotectl/internal/domain/command"
	"github.com/micro-ha/remotectl/internal/domain/device"
	"github.com/micro-ha/remotectl/internal/events"
	"github.com/micro-ha/remotectl/internal/invoker"
	"github.com/micro-ha/remotectl/internal/service"
)

// API groups HTTP handlers and dependencies.
type API struct {
	control *service.Service
	hub     *events.Hub
	logger  *slog.Logger
}

// New creates HTTP handlers with explicit dependencies.
func New(control *service.Service, hub *events.Hub, logger *slog.Logger) *API {
	return &API{control: control, hub: hub, logger: logger}
}

// Logger returns the request logger used by HTTP middleware.
func (a *API) Logger() *slog.Logger {
	return a.logger
}

// Health reports service liveness.
func (a *API) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// ListFamilies returns selectable command families.
func (a *API) ListFamilies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": command.Families()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}

// WriteError exposes the error envelope for router-level helpers.
func WriteError(w http.ResponseWriter, status int, code string, message string) {
	writeError(w, status, code, message)
}

// writeDomainError maps known domain errors onto status codes.
func writeDomainError(w http.ResponseWriter, err error, fallbackCode string) {
	switch {
	case errors.Is(err, invoker.ErrSlotOutOfRange):
		writeError(w, http.StatusBadRequest, "slot_out_of_range", err.Error())
	case errors.Is(err, command.ErrUnknownFamily):
		writeError(w, http.StatusBadRequest, "unknown_family", err.Error())
	case errors.Is(err, command.ErrFamilyMismatch):
		writeError(w, http.StatusBadRequest, "family_mismatch", err.Error())
	case errors.Is(err, device.ErrDeviceNotFound):
		writeError(w, http.StatusNotFound, "device_not_found", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, fallbackCode, err.Error())
	}
}
