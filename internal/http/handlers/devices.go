package handlers

import "net/http"

// ListDevices returns all registered devices with current state.
func (a *API) ListDevices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": a.control.Devices()})
}
