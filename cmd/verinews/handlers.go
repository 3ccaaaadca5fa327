// cmd/verinews/handlers.go
package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// handleVerify verifies a news claim.
// POST /api/news/verify {"text": "..."}
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, DefaultMaxPayload)).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		respondWithError(w, http.StatusBadRequest, "News text is required")
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			Logger().Error("Panic during verification: %v", rec)
			s.errors.Record(NewError(ErrorTypeVerify, ErrVerifyScoring, "panic during verification", nil), "verify")
			respondWithError(w, http.StatusInternalServerError, "Failed to verify news")
		}
	}()

	resp := s.verifier.Verify(r.Context(), body.Text)
	respondWithJSON(w, http.StatusOK, resp)
}

// handleSearch searches news articles for a query.
// GET /api/news/search?q=...
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	articles, fromCache := s.verifier.Search(r.Context(), query)
	respondWithJSON(w, http.StatusOK, SearchResponse{
		Articles:  articles,
		Query:     query,
		FromCache: fromCache,
	})
}

// handleArticle returns a placeholder article detail record.
// GET /api/news/article/{id}
func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":          vars["id"],
		"title":       "Sample Article",
		"content":     "Article content would be fetched here",
		"source":      "News Source",
		"publishedAt": time.Now().Format(time.RFC3339),
	})
}

// handleTranslate translates arbitrary text through the AI adapter.
// POST /api/translate {"text": "...", "targetLang": "HI"}
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text       string `json:"text"`
		TargetLang string `json:"targetLang"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, DefaultMaxPayload)).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(body.Text) == "" || strings.TrimSpace(body.TargetLang) == "" {
		respondWithError(w, http.StatusBadRequest, "text and targetLang are required")
		return
	}

	translated, err := s.ai.Translate(r.Context(), body.Text, body.TargetLang)
	if err != nil {
		s.errors.Record(err, "translate")
		if ve, ok := err.(*VeriError); ok && ve.Code == ErrAIUnavailable {
			respondWithError(w, http.StatusServiceUnavailable, "Translation service not configured")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Translation failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"translated": translated,
		"targetLang": body.TargetLang,
	})
}
