package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cartforge/shopql/ast"
	"github.com/cartforge/shopql/exec"
	"github.com/cartforge/shopql/lexer"
	"github.com/cartforge/shopql/parser"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Subscriptions upgrades the connection, reads a single subscription
// request, and streams resolver events back as JSON messages until the
// client disconnects.
func (s *Server) Subscriptions(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client on failure.
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	_, msg, err := conn.ReadMessage()
	if err != nil {
		return
	}

	var req Request
	if err := json.Unmarshal(msg, &req); err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte("invalid subscription JSON"))
		return
	}

	field, fail := subscriptionField(req.Query)
	if fail != "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(fail))
		return
	}

	// After the upgrade the connection is hijacked, so r.Context() no
	// longer tracks the client. Drain reads in the background and cancel
	// on the first read error; canceling unsubscribes and closes the
	// event channel, which unblocks the write loop below.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	events, err := s.exec.Subscribe(ctx, field, req.Variables)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(err.Error()))
		return
	}

	for ev := range events {
		if err := conn.WriteJSON(exec.Project(ev, field.Selection)); err != nil {
			s.log.Debug("subscription write failed", zap.Error(err))
			return
		}
	}
}

// subscriptionField extracts the single subscribed field from a request
// document, or describes what was wrong with it.
func subscriptionField(query string) (*ast.Field, string) {
	doc := parser.New(lexer.New(query)).ParseDocument()
	op := doc.First()
	if op == nil {
		return nil, "no subscription operation found"
	}
	if op.Kind != ast.Subscription {
		return nil, "provided operation is not a subscription"
	}
	if op.Selection == nil || len(op.Selection.Fields) == 0 {
		return nil, "subscription selection set is empty"
	}
	return op.Selection.Fields[0], ""
}
