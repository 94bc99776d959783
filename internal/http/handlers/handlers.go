package handlers

import (
	"bytes"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/preston-bernstein/money-dungeon-web/internal/loader"
	"github.com/preston-bernstein/money-dungeon-web/internal/logging"
	"github.com/preston-bernstein/money-dungeon-web/internal/metrics"
	"github.com/preston-bernstein/money-dungeon-web/internal/render"
	"github.com/preston-bernstein/money-dungeon-web/internal/timeutil"
)

type nowFunc func() time.Time

// Handler holds the landing page, health and not-found endpoints. NewRouter mounts them.
type Handler struct {
	loader   *loader.Loader
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      nowFunc
	page     func(render.View) templ.Component
}

// NewHandler constructs a Handler with defaults.
func NewHandler(l *loader.Loader, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		loader:   l,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
		page:     render.Page,
	}
}

// Home renders the landing page for GET and HEAD.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	start := h.now()

	result := h.loader.Load(r.Context())
	locale := timeutil.MatchLocale(r.Header.Get("Accept-Language"))
	stat := metrics.PageRender{Locale: locale.String(), Fallback: !result.HasMessage()}

	view, err := render.NewView(result, locale)
	var buf bytes.Buffer
	if err == nil {
		err = h.page(view).Render(r.Context(), &buf)
	}
	stat.Duration = h.now().Sub(start)
	stat.Err = err
	stat.Bytes = buf.Len()
	h.recorder.RecordPageRender(stat)

	if err != nil {
		logging.Error(logger, "render page failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
		return
	}

	logging.Info(logger, "rendered page",
		logging.FieldSections, view.SectionCount(),
		logging.FieldBytes, stat.Bytes,
		logging.FieldLocale, stat.Locale,
		logging.FieldFallback, stat.Fallback,
	)
	w.Header().Set("Cache-Control", "no-store")
	writeHTML(w, r, nethttp.StatusOK, buf.Bytes(), h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// NotFound answers unknown paths with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}
