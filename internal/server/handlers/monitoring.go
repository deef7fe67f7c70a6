package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/server/responses"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/version"
)

// MonitoringHandlers contains health endpoints.
type MonitoringHandlers struct {
	current      *site.Current
	start        time.Time
	errorAdapter *errors.HTTPErrorAdapter
}

func NewMonitoringHandlers(current *site.Current) *MonitoringHandlers {
	return &MonitoringHandlers{
		current:      current,
		start:        time.Now(),
		errorAdapter: errors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleHealthCheck reports liveness and when the served configuration was loaded.
func (h *MonitoringHandlers) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.current.Load() == nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			errors.NewError(errors.CategoryRuntime, "no configuration loaded").Build())
		return
	}
	health := &responses.HealthResponse{
		Status:         "healthy",
		Version:        version.Resolved(),
		Timestamp:      time.Now().UTC(),
		Uptime:         time.Since(h.start).Seconds(),
		ConfigLoadedAt: h.current.LoadedAt().UTC(),
	}
	if err := writeJSONPretty(w, r, http.StatusOK, health, false); err != nil {
		internalErr := errors.WrapError(err, errors.CategoryInternal, "failed to write health response").
			Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}
