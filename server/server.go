// Package server binds the executor to HTTP: a single /graphql endpoint
// for queries and mutations, /subscriptions for WebSocket subscriptions,
// and /healthz for liveness.
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/cartforge/shopql/auth"
	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/exec"
	"github.com/cartforge/shopql/lexer"
	"github.com/cartforge/shopql/parser"
	"github.com/cartforge/shopql/schema"
)

// Request is the standard GraphQL HTTP request body.
type Request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Server dispatches GraphQL requests to an injected executor.
type Server struct {
	exec   *exec.Executor
	tokens *auth.Tokens
	log    *zap.Logger
}

// New returns a Server. A nil logger is replaced with a no-op one.
func New(e *exec.Executor, tokens *auth.Tokens, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{exec: e, tokens: tokens, log: log}
}

// Handler returns the full route table wrapped in the auth middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", s.GraphQL)
	mux.HandleFunc("/subscriptions", s.Subscriptions)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return s.tokens.Middleware(mux)
}

// GraphQL serves POSTed operation documents. GET returns the SDL so
// clients can discover the contract.
func (s *Server) GraphQL(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, schema.SDL())
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST a GraphQL request", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Variables == nil {
		req.Variables = make(map[string]interface{})
	}

	doc := parser.New(lexer.New(req.Query)).ParseDocument()
	data, err := s.exec.Execute(r.Context(), doc, req.Variables)

	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		s.log.Warn("operation failed",
			zap.String("code", string(errs.CodeOf(err))),
			zap.Error(err))
		writeErrors(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

// writeErrors emits the GraphQL error shape with the taxonomy code in
// extensions. Failed operations are still HTTP 200; only malformed
// requests get non-200 statuses.
func writeErrors(w http.ResponseWriter, err error) {
	resp := map[string]interface{}{
		"data": nil,
		"errors": []map[string]interface{}{{
			"message": errs.MessageOf(err),
			"extensions": map[string]interface{}{
				"code": errs.CodeOf(err),
			},
		}},
	}
	_ = json.NewEncoder(w).Encode(resp)
}
