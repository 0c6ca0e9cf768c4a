package httpapi

import "net/http"

// NewMux builds the API routing table.
func NewMux(d Deps) http.Handler {
	mux := http.NewServeMux()

	rh := recommendHandler{deps: d}
	mux.HandleFunc("/api/recommend", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Recommend,
	}))
	mux.HandleFunc("/api/careers", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Careers,
	}))

	mux.HandleFunc("/healthz", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: healthHandler,
	}))

	return withRequestLogging(d.Logger, mux)
}

// methodMux dispatches by HTTP method, answering 405 for anything not
// in the table.
func methodMux(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h(w, r)
			return
		}
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
