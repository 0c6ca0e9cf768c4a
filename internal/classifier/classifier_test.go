package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestPrediction_Ranked(t *testing.T) {
	tests := []struct {
		name string
		pred Prediction
		want []string
	}{
		{
			name: "descending by probability",
			pred: Prediction{
				Labels: []string{"a", "b", "c"},
				Probs:  map[string]float64{"a": 0.2, "b": 0.5, "c": 0.3},
			},
			want: []string{"b", "c", "a"},
		},
		{
			name: "ties keep classifier label order",
			pred: Prediction{
				Labels: []string{"x", "y", "z"},
				Probs:  map[string]float64{"x": 0.3, "y": 0.3, "z": 0.4},
			},
			want: []string{"z", "x", "y"},
		},
		{
			name: "empty prediction",
			pred: Prediction{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pred.Ranked()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ranked() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatic_ReturnsCopy(t *testing.T) {
	s := NewStatic([]string{"a", "b"}, map[string]float64{"a": 0.6, "b": 0.4})

	first, err := s.Probabilities(context.Background(), Features{})
	if err != nil {
		t.Fatal(err)
	}
	first.Labels[0] = "mutated"
	first.Probs["a"] = 0

	second, err := s.Probabilities(context.Background(), Features{})
	if err != nil {
		t.Fatal(err)
	}
	if second.Labels[0] != "a" || second.Probs["a"] != 0.6 {
		t.Error("Probabilities should not share state between calls")
	}
}

func TestClient_Probabilities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var f Features
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			t.Errorf("decode features: %v", err)
		}
		if f.Skills != "python, sql" {
			t.Errorf("Skills = %q", f.Skills)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"labels":        []string{"Data Scientist", "Web Designer"},
			"probabilities": []float64{0.7, 0.3},
		})
	}))
	defer srv.Close()

	pred, err := New(srv.URL).Probabilities(context.Background(), Features{
		Skills: "python, sql",
	})
	if err != nil {
		t.Fatalf("Probabilities: %v", err)
	}

	if pred.Probs["Data Scientist"] != 0.7 {
		t.Errorf("Probs = %v", pred.Probs)
	}
	if got := pred.Ranked(); got[0] != "Data Scientist" {
		t.Errorf("Ranked() = %v", got)
	}
}

func TestClient_MalformedPrediction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"labels":        []string{"a", "b"},
			"probabilities": []float64{0.5},
		})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Probabilities(context.Background(), Features{}); err == nil {
		t.Error("Probabilities with mismatched arrays = nil error")
	}
}

func TestClient_EnsureRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok", ModelLoaded: true})
	}))
	defer srv.Close()

	if err := New(srv.URL).EnsureRunning(context.Background()); err != nil {
		t.Errorf("EnsureRunning against healthy service = %v", err)
	}

	srv.Close()
	if err := New(srv.URL).EnsureRunning(context.Background()); err == nil {
		t.Error("EnsureRunning against closed service = nil error")
	}
}
