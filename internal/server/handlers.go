// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pdiddy/paper-explorer/internal/chart"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

type datasetResponse struct {
	Source    string `json:"source"`
	Total     int    `json:"total"`
	LoadError string `json:"load_error,omitempty"`
	Banner    string `json:"banner,omitempty"`
}

type papersResponse struct {
	Total   int            `json:"total"`
	Records []types.Record `json:"records"`
}

type searchResponse struct {
	types.SearchOutcome
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDataset(w http.ResponseWriter, _ *http.Request) {
	resp := datasetResponse{
		Source: s.exp.Source(),
		Total:  s.exp.Total(),
		Banner: s.exp.Banner(),
	}
	if err := s.exp.LoadErr(); err != nil {
		resp.LoadError = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	limit := clampInt(r.URL.Query().Get("limit"), s.exp.Config().SampleRows, maxPageRows)
	writeJSON(w, http.StatusOK, papersResponse{
		Total:   s.exp.Total(),
		Records: s.exp.Sample(limit),
	})
}

func (s *Server) handlePapersPerYear(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.exp.PapersPerYear())
}

func (s *Server) handleTopJournals(w http.ResponseWriter, r *http.Request) {
	k := clampInt(r.URL.Query().Get("k"), s.exp.Config().TopJournals, maxPageRows)
	writeJSON(w, http.StatusOK, s.exp.TopJournals(k))
}

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	format, err := chart.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	cfg := s.chartCfg
	cfg.Format = format

	var buf bytes.Buffer
	switch chi.URLParam(r, "name") {
	case "papers-per-year":
		err = chart.RenderPapersPerYear(&buf, s.exp.PapersPerYear(), cfg)
	case "top-journals":
		err = chart.RenderTopJournals(&buf, s.exp.TopJournals(0), cfg)
	default:
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown chart"})
		return
	}

	switch {
	case errors.Is(err, chart.ErrNoData):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	case err != nil:
		s.log.Error().Err(err).Msg("rendering chart")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", chart.ContentType(format))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleSearch uses q verbatim: surrounding whitespace is part of the keyword.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	out := s.exp.Search(r.URL.Query().Get("q"))
	s.metrics.ObserveSearch(out.Status)

	limit := clampInt(r.URL.Query().Get("limit"), s.exp.Config().ResultRows, maxPageRows)
	out = out.Limit(limit)
	writeJSON(w, http.StatusOK, searchResponse{SearchOutcome: out, Message: out.Message()})
}

func clampInt(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	if value > max {
		return max
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
