package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/learn-atlas/pkg/adapters"
	"github.com/de-tools/learn-atlas/pkg/models/api"
	"github.com/de-tools/learn-atlas/pkg/models/domain"
	"github.com/de-tools/learn-atlas/pkg/render"
	reportsvc "github.com/de-tools/learn-atlas/pkg/services/report"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
)

type Handler struct {
	registry  templates.Registry
	generator reportsvc.Generator
}

func NewHandler(registry templates.Registry, generator reportsvc.Generator) *Handler {
	return &Handler{
		registry:  registry,
		generator: generator,
	}
}

// ListTemplates returns the templates visible to the role given in the
// query string. The role is trusted input; authorization lives outside
// the engine.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	role := domain.Role(r.URL.Query().Get("role"))
	if role == "" {
		http.Error(w, "missing 'role' query parameter", http.StatusBadRequest)
		return
	}

	response := make([]api.ReportTemplate, 0)
	for _, t := range h.registry.ListFor(role) {
		response = append(response, adapters.MapTemplateDomainToApi(t))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode templates")
	}
}

// GenerateReport assembles a report and returns it as JSON.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	templateID := chi.URLParam(r, "template")

	var req api.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.generator.Generate(ctx, templateID, adapters.MapApiFilterToDomainRaw(req.Filter), req.RequestedBy)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(data)); err != nil {
		logger.Error().Err(err).Str("template", templateID).Msg("failed to encode report")
	}
}

// ExportReport assembles a report and streams it in the requested
// format. pdf and print route through the HTML renderer; excel and csv
// through the export renderer.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	templateID := chi.URLParam(r, "template")

	format := render.Format(r.URL.Query().Get("format"))
	switch format {
	case render.FormatPDF, render.FormatPrint, render.FormatCSV, render.FormatExcel, render.FormatText:
	default:
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
		return
	}

	var req api.ExportReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	data, err := h.generator.Generate(ctx, templateID, adapters.MapApiFilterToDomainRaw(req.Filter), req.RequestedBy)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	artifact, err := render.Render(data, format, adapters.MapApiConfigToDomain(req.Config))
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	if _, err := w.Write(artifact.Content); err != nil {
		logger.Error().Err(err).Str("template", templateID).Msg("failed to write artifact")
	}
}

// writeDomainError maps the error taxonomy onto HTTP statuses with one
// stable message per kind; internal error text never reaches the client.
func writeDomainError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var invalidFilter *domain.InvalidFilterError
	var notFound *domain.TemplateNotFoundError
	var dataSource *domain.DataSourceError
	var noSurface *domain.RenderSurfaceError

	switch {
	case errors.As(err, &invalidFilter):
		http.Error(w, invalidFilter.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &dataSource):
		logger.Error().Err(err).Msg("data source failure")
		http.Error(w, "report data source unavailable", http.StatusBadGateway)
	case errors.As(err, &noSurface):
		logger.Error().Err(err).Msg("render surface unavailable")
		http.Error(w, "output surface unavailable", http.StatusServiceUnavailable)
	default:
		logger.Error().Err(err).Msg("report request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
