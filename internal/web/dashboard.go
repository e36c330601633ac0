package web

import (
	"bytes"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"html/template"
	"net/http"
	"strconv"

	"github.com/pmurley/link-tracker/internal/analysis"
	"github.com/pmurley/link-tracker/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

const sessionCookie = "lt_session"

type occurrenceView struct {
	Page     int
	Position int
	Number   int
}

type duplicateView struct {
	Original    analysis.Original
	Occurrences []occurrenceView
}

type rowView struct {
	Number      int
	URL         string
	Title       string
	IsDuplicate bool
	Original    *analysis.DuplicateInfo
}

type dashboardData struct {
	Loading        bool
	Err            string
	ShowContent    bool
	Total          int
	CurrentPage    int
	DisplayPages   int
	TotalPages     int
	PageCount      int
	DuplicateCount int
	Duplicates     []duplicateView
	Rows           []rowView
	HasPrev        bool
	HasNext        bool
}

func newDashboardData(s view.State) dashboardData {
	report := s.Report
	pageLinks := s.PageLinks()
	start := report.PageStart(s.CurrentPage)

	data := dashboardData{
		Loading:        s.Loading,
		Err:            s.Err,
		ShowContent:    s.ShowContent(),
		Total:          report.Total(),
		CurrentPage:    s.CurrentPage,
		DisplayPages:   report.DisplayPages(),
		TotalPages:     report.TotalPages(),
		PageCount:      len(pageLinks),
		DuplicateCount: report.DuplicateCount(),
		HasPrev:        s.HasPrev(),
		HasNext:        s.HasNext(),
	}

	for _, rec := range report.Duplicates {
		dv := duplicateView{Original: rec.Original}
		for _, occ := range rec.Duplicates {
			dv.Occurrences = append(dv.Occurrences, occurrenceView{
				Page:     occ.Page,
				Position: occ.Position,
				Number:   report.Absolute(occ.Page, occ.Position),
			})
		}
		data.Duplicates = append(data.Duplicates, dv)
	}

	for i, l := range pageLinks {
		data.Rows = append(data.Rows, rowView{
			Number:      start + i + 1,
			URL:         l.URL,
			Title:       l.Title,
			IsDuplicate: l.IsDuplicate,
			Original:    l.DuplicateInfo,
		})
	}

	return data
}

// session returns the viewer's dashboard store, issuing a cookie on first visit.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*view.Store, error) {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		id = c.Value
	} else {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		id = hex.EncodeToString(buf)
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	store, _ := h.sessions.Store(id)
	return store, nil
}

// HandleDashboard renders the viewer's current state. The sheet is only
// read on first visit and on refresh; paging works on the loaded result.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	store, err := h.session(w, r)
	if err != nil {
		h.logger.Error("Failed to create session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	state := store.State()
	if !state.Loaded && !state.Loading && state.Err == "" {
		state = store.Refresh(r.Context(), h.pipeline.Report)
		if state.Err != "" {
			h.logger.Error("Error fetching sheets", "error", state.Err)
		}
	}

	q := r.URL.Query()
	switch q.Get("nav") {
	case "next":
		state = store.Dispatch(view.NextPage{})
	case "prev":
		state = store.Dispatch(view.PrevPage{})
	}
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			state = store.Dispatch(view.PageChanged{Page: n})
		}
	}

	h.render(w, state)
}

// HandleRefresh reloads the sheet for the viewer and sends them back to page 1.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	store, err := h.session(w, r)
	if err != nil {
		h.logger.Error("Failed to create session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	state := store.Refresh(r.Context(), h.pipeline.Report)
	if state.Err != "" {
		h.logger.Error("Error fetching sheets", "error", state.Err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, state view.State) {
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, newDashboardData(state)); err != nil {
		h.logger.Error("Failed to render dashboard", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
