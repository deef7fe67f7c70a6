package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"git.home.luguber.info/inful/docsite/internal/export"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/server/responses"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// SiteHandlers serve the configuration surface. Every handler loads the
// current site once and answers from that value.
type SiteHandlers struct {
	current      *site.Current
	recorder     metrics.Recorder
	errorAdapter *errors.HTTPErrorAdapter
	pretty       bool
}

// NewSiteHandlers creates the handlers; a nil recorder records nothing.
func NewSiteHandlers(current *site.Current, recorder metrics.Recorder, pretty bool) *SiteHandlers {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &SiteHandlers{
		current:      current,
		recorder:     recorder,
		errorAdapter: errors.NewHTTPErrorAdapter(slog.Default()),
		pretty:       pretty,
	}
}

// HandleSite returns the whole configuration as the export document.
func (h *SiteHandlers) HandleSite(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, export.New(h.current.Load()), "site")
}

// HandleSidebar resolves ?path= and returns the tree, the matched prefix and
// the neighbouring pages. A missing path resolves as "/".
func (h *SiteHandlers) HandleSidebar(w http.ResponseWriter, r *http.Request) {
	s := h.current.Load()
	path := r.URL.Query().Get("path")

	start := time.Now()
	m := s.SidebarMatch(path)
	h.recorder.ObserveResolve(m.Prefix, time.Since(start))
	slog.Debug("Resolved sidebar", logfields.Path(path), logfields.Normalized(m.Path), logfields.Prefix(m.Prefix))

	pager := s.PagerFor(path)
	h.write(w, r, &responses.SidebarResponse{
		Path:       path,
		Normalized: m.Path,
		Prefix:     m.Prefix,
		CatchAll:   m.CatchAll,
		Sidebar:    m.Tree,
		Prev:       pager.Prev,
		Next:       pager.Next,
	}, "sidebar")
}

// HandleNav returns the navigation bar with typed items.
func (h *SiteHandlers) HandleNav(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.current.Load().Nav, "nav")
}

// HandleHead returns the rendered <head> fragment as HTML.
func (h *SiteHandlers) HandleHead(w http.ResponseWriter, r *http.Request) {
	out, err := h.current.Load().Head.Render()
	if err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			errors.InternalError(err, "failed to render head").Build())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

func (h *SiteHandlers) write(w http.ResponseWriter, r *http.Request, v any, what string) {
	if err := writeJSONPretty(w, r, http.StatusOK, v, h.pretty); err != nil {
		internalErr := errors.WrapError(err, errors.CategoryInternal, "failed to write "+what+" response").
			Build()
		h.errorAdapter.WriteErrorResponse(w, r, internalErr)
	}
}
