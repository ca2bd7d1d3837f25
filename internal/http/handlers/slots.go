package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// BindInput is the bind request payload.
type BindInput struct {
	Device string `json:"device"`
	Family string `json:"family"`
}

// GetLayout returns the current slot listing.
func (a *API) GetLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.control.Layout())
}

// BindSlot binds a device/family pair to a slot.
func (a *API) BindSlot(w http.ResponseWriter, r *http.Request, slot int) {
	var payload BindInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_payload", "Invalid JSON payload")
		return
	}
	payload.Device = strings.TrimSpace(payload.Device)
	payload.Family = strings.TrimSpace(payload.Family)
	if payload.Device == "" || payload.Family == "" {
		writeError(w, http.StatusBadRequest, "invalid_payload", "device and family are required")
		return
	}
	if err := a.control.BindSlot(r.Context(), slot, payload.Device, payload.Family); err != nil {
		writeDomainError(w, err, "bind_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// PressOn triggers a slot's on command.
func (a *API) PressOn(w http.ResponseWriter, r *http.Request, slot int) {
	if err := a.control.PressOn(r.Context(), slot); err != nil {
		writeDomainError(w, err, "press_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// PressOff triggers a slot's off command.
func (a *API) PressOff(w http.ResponseWriter, r *http.Request, slot int) {
	if err := a.control.PressOff(r.Context(), slot); err != nil {
		writeDomainError(w, err, "press_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// Undo reverses the last triggered command.
func (a *API) Undo(w http.ResponseWriter, r *http.Request) {
	if err := a.control.Undo(r.Context()); err != nil {
		writeDomainError(w, err, "undo_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
