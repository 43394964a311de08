package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"QuoteBalance/internal/domain"
	"QuoteBalance/internal/usecase"
)

type detectRequest struct {
	ArticleText string `json:"article_text"`
}

type detectResponse struct {
	Perspectives []domain.QuotedIndividual `json:"perspectives_data"`
	Location     domain.Location           `json:"location"`
	Error        *string                   `json:"error"`
}

type searchRequest struct {
	Location       string `json:"location"`
	JobTitle       string `json:"job_title"`
	MinorityGender string `json:"minority_gender"`
}

// resultsView feeds the server-rendered candidate table fragment.
type resultsView struct {
	Location       string
	JobTitle       string
	MinorityGender string
	Candidates     []domain.CandidateProfile
	Error          string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", nil); err != nil {
		s.errorLog("render index", "error", err)
	}
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetectError(w, http.StatusBadRequest, "request body must be JSON with article_text")
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req.ArticleText)
	if errors.Is(err, usecase.ErrEmptyArticle) {
		writeDetectError(w, http.StatusBadRequest, "article text is required")
		return
	}
	if err != nil {
		// Upstream trouble degrades to an empty result; the user sees the
		// neutral "no sources detected" outcome, never a stack trace.
		s.errorLog("analysis failed", "error", err)
		analysis = domain.Analysis{Individuals: []domain.QuotedIndividual{}}
	}

	writeJSON(w, http.StatusOK, detectResponse{
		Perspectives: analysis.Individuals,
		Location:     analysis.Location,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.JobTitle == "" {
		s.renderResults(w, http.StatusBadRequest, resultsView{Error: "a job title is required"})
		return
	}

	minority := domain.NormalizeGender(req.MinorityGender)
	profiles, err := s.suggester.Suggest(r.Context(), req.Location, req.JobTitle, minority)
	if err != nil {
		s.errorLog("suggestion failed", "job_title", req.JobTitle, "error", err)
		s.renderResults(w, http.StatusInternalServerError, resultsView{
			Error: "We could not search for matching profiles right now. Please try again later.",
		})
		return
	}

	// An empty body tells the frontend there is nothing to link for this
	// job title.
	if len(profiles) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	s.renderResults(w, http.StatusOK, resultsView{
		Location:       req.Location,
		JobTitle:       req.JobTitle,
		MinorityGender: minority.Display(),
		Candidates:     profiles,
	})
}

func (s *Server) renderResults(w http.ResponseWriter, status int, view resultsView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.templates.ExecuteTemplate(w, "results.html", view); err != nil {
		s.errorLog("render results", "error", err)
	}
}

func writeDetectError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, detectResponse{
		Perspectives: []domain.QuotedIndividual{},
		Error:        &message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
