package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)
	mux.HandleFunc("GET /api/sheets", h.HandleSheets)
	mux.HandleFunc("GET /api/report", h.HandleReport)
	mux.HandleFunc("GET /{$}", h.HandleDashboard)
	mux.HandleFunc("POST /refresh", h.HandleRefresh)

	mux.Handle("GET /metrics", promhttp.Handler())

	var chained http.Handler = mux
	chained = Metrics(chained)
	chained = Logging(h.logger)(chained)

	return chained
}
