package codegen

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jask/tkdraft/internal/layout"
)

// Payload is the wire format shared by the service and the editor client:
// one entry per widget in insertion order.
type Payload struct {
	Widgets []layout.Widget `json:"widgets"`
}

type codeResponse struct {
	Code string `json:"code"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Server exposes the generator over HTTP. The editor is the only expected
// client, but CORS stays permissive so a browser frontend can talk to it too.
type Server struct {
	logger *log.Logger
}

// NewServer returns a Server logging to logger (log.Default() when nil).
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{logger: logger}
}

// Handler returns the HTTP handler for the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/generate_code", s.handleGenerate)
	return withCORS(mux)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	if r.Method != http.MethodPost {
		s.logger.Printf("[%s] %s %s rejected: method not allowed", reqID, r.Method, r.URL.Path)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "method not allowed"})
		return
	}

	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.logger.Printf("[%s] bad payload: %v", reqID, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON payload"})
		return
	}

	code, err := Generate(payload.Widgets)
	if err != nil {
		s.logger.Printf("[%s] generate failed: %v", reqID, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	s.logger.Printf("[%s] generated script for %d widgets", reqID, len(payload.Widgets))
	writeJSON(w, http.StatusOK, codeResponse{Code: code})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
