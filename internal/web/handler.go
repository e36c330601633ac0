package web

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pmurley/link-tracker/internal/analysis"
	"github.com/pmurley/link-tracker/internal/cache"
	"github.com/pmurley/link-tracker/internal/models"
	"github.com/pmurley/link-tracker/pkg/logger"
)

// Pipeline is the part of tracker.Service the handlers need.
type Pipeline interface {
	Links(ctx context.Context) ([]models.Link, error)
	Report(ctx context.Context) (analysis.Report, error)
}

const fetchFailedMessage = "Failed to fetch data from Google Sheets"

type Handler struct {
	pipeline Pipeline
	sessions *cache.Cache
	logger   *logger.Logger
}

func NewHandler(pipeline Pipeline, sessions *cache.Cache, log *logger.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		sessions: sessions,
		logger:   log,
	}
}

type linksResponse struct {
	Links []models.Link `json:"links"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// numberedLink is a decorated link with its absolute position in the sequence.
type numberedLink struct {
	Number int `json:"number"`
	analysis.DecoratedLink
}

type reportResponse struct {
	Total          int                        `json:"total"`
	Page           int                        `json:"page"`
	TotalPages     int                        `json:"totalPages"`
	PageSize       int                        `json:"pageSize"`
	DuplicateCount int                        `json:"duplicateCount"`
	Links          []numberedLink             `json:"links"`
	Duplicates     []analysis.DuplicateRecord `json:"duplicates"`
}

// HandleSheets returns the normalized links straight from the sheet.
func (h *Handler) HandleSheets(w http.ResponseWriter, r *http.Request) {
	setNoCache(w)

	links, err := h.pipeline.Links(r.Context())
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, linksResponse{Links: links})
}

// HandleReport returns one page of decorated links plus the full duplicate report.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	setNoCache(w)

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page must be an integer"})
			return
		}
		page = n
	}

	report, err := h.pipeline.Report(r.Context())
	if err != nil {
		h.writeFetchError(w, err)
		return
	}

	page = report.ClampPage(page)
	start := report.PageStart(page)
	pageLinks := report.Page(page)

	links := make([]numberedLink, len(pageLinks))
	for i, l := range pageLinks {
		links[i] = numberedLink{Number: start + i + 1, DecoratedLink: l}
	}

	h.writeJSON(w, http.StatusOK, reportResponse{
		Total:          report.Total(),
		Page:           page,
		TotalPages:     report.DisplayPages(),
		PageSize:       report.PageSize,
		DuplicateCount: report.DuplicateCount(),
		Links:          links,
		Duplicates:     report.Duplicates,
	})
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeFetchError(w http.ResponseWriter, err error) {
	h.logger.Error("Error fetching sheets", "error", err)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   fetchFailedMessage,
		Details: err.Error(),
	})
}

func setNoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to write JSON response", "error", err)
	}
}
