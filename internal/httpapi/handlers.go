package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/internmatch/internmatch/internal/match"
)

// recommendRequest is the profile payload shared by both endpoints.
// Skills and interests are free text: a delimited string works the same
// as it does on the CLI.
type recommendRequest struct {
	Education string `json:"education"`
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Location  string `json:"location"`
	Age       *int   `json:"age"`
	Limit     int    `json:"limit"`
}

func (r recommendRequest) profile() match.Profile {
	return match.Profile{
		Education: r.Education,
		Skills:    []string{r.Skills},
		Interests: []string{r.Interests},
		Location:  r.Location,
		Age:       r.Age,
	}
}

type recommendHandler struct {
	deps Deps
}

// Recommend serves the rule-based internship short-list.
func (h recommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.deps.DefaultLimit
	}

	recs := h.deps.Recommender.Recommend(req.profile(), limit)
	writeJSON(w, http.StatusOK, recs)
}

// Careers serves the hybrid career suggestions.
func (h recommendHandler) Careers(w http.ResponseWriter, r *http.Request) {
	if h.deps.Hybrid == nil {
		writeError(w, http.StatusServiceUnavailable, "career classification is not configured")
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	suggestions, err := h.deps.Hybrid.Recommend(r.Context(), req.profile())
	if err != nil {
		writeError(w, http.StatusBadGateway, "classification failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
