package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/internmatch/internmatch/internal/catalog"
	"github.com/internmatch/internmatch/internal/classifier"
	"github.com/internmatch/internmatch/internal/match"
)

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	items := []catalog.Internship{
		{
			ID:        "int-001",
			Title:     "Data Analyst Intern",
			Skills:    []string{"python", "sql"},
			Interests: []string{"ai"},
		},
		{
			ID:     "int-002",
			Title:  "Carpentry Apprentice",
			Skills: []string{"woodwork"},
		},
	}

	careersCSV := "CandidateID,Name,Age,Education,Skills,Interests,Recommended_Career,Recommendation_Score\n" +
		"c-1,Amina,23,Bachelor's,python; sql,ai,Data Scientist,0.9\n"
	careers, err := catalog.ParseCareers(strings.NewReader(careersCSV))
	if err != nil {
		t.Fatal(err)
	}

	cls := classifier.NewStatic(
		[]string{"Data Scientist"},
		map[string]float64{"Data Scientist": 0.8},
	)
	hybrid, err := match.NewHybridRecommender(cls, careers, match.HybridConfig{
		TopN:  3,
		Boost: match.DefaultBoostWeights(),
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	return NewMux(Deps{
		Recommender:  match.NewRecommender(items, match.NewScorer(match.DefaultWeights()), nil),
		Hybrid:       hybrid,
		DefaultLimit: 5,
	})
}

func TestRecommendEndpoint(t *testing.T) {
	handler := testHandler(t)

	body := `{"education": "Bachelor's", "skills": "python, sql", "interests": "ai"}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var recs []match.Recommendation
	if err := json.Unmarshal(rr.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Internship.ID != "int-001" {
		t.Errorf("top recommendation = %s, want int-001", recs[0].Internship.ID)
	}
}

func TestRecommendEndpoint_BadJSON(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestRecommendEndpoint_MethodNotAllowed(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/recommend", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestCareersEndpoint(t *testing.T) {
	handler := testHandler(t)

	body := `{"education": "Bachelor's", "skills": "python", "interests": "ai"}`
	req := httptest.NewRequest(http.MethodPost, "/api/careers", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var suggestions []match.CareerSuggestion
	if err := json.Unmarshal(rr.Body.Bytes(), &suggestions); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Career != "Data Scientist" {
		t.Errorf("suggestions = %v", suggestions)
	}
	if !strings.Contains(suggestions[0].Rationale, "Model score: 0.80") {
		t.Errorf("Rationale = %q", suggestions[0].Rationale)
	}
}

func TestCareersEndpoint_Unconfigured(t *testing.T) {
	handler := NewMux(Deps{
		Recommender:  match.NewRecommender(nil, match.NewScorer(match.DefaultWeights()), nil),
		DefaultLimit: 5,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/careers", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rr.Code)
	}
}

func TestHealthz(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Error("missing X-Request-ID header")
	}
}
