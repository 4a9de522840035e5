// Package playground serves the scanner over a WebSocket. Every text message
// is one complete source buffer and is answered with its token stream.
package playground

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/agenthands/minijava/pkg/compiler/lexer"
	"github.com/agenthands/minijava/pkg/logger"
)

// TokenJSON is the wire form of a lexer.Token.
type TokenJSON struct {
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Offset int    `json:"offset"`
}

// Reply is sent for every source message.
type Reply struct {
	Tokens []TokenJSON `json:"tokens"`
	Errors int         `json:"errors"`
}

// NewReply converts a token stream into its wire form.
func NewReply(toks []lexer.Token) Reply {
	r := Reply{Tokens: make([]TokenJSON, len(toks))}
	for i, tok := range toks {
		r.Tokens[i] = TokenJSON{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Line,
			Column: tok.Column,
			Offset: tok.Offset,
		}
		if tok.Kind == lexer.KindError {
			r.Errors++
		}
	}
	return r
}

// Handler upgrades requests to WebSocket connections and tokenizes what the
// peer sends.
type Handler struct {
	cfg      Config
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewHandler creates a handler using cfg.
func NewHandler(cfg Config, log *logger.Logger) *Handler {
	return &Handler{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// NewMux wires the handler at /ws next to a /healthz probe.
func NewMux(cfg Config, log *logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", NewHandler(cfg, log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed: " + err.Error())
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go h.pingLoop(conn, done)

	h.readLoop(conn, r.RemoteAddr)
}

func (h *Handler) readLoop(conn *websocket.Conn, peer string) {
	conn.SetReadLimit(h.cfg.MaxSourceBytes)
	conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
		return nil
	})

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("connection %s closed: %v", peer, err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
		if mt != websocket.TextMessage {
			h.logger.Warn("ignoring non-text message from " + peer)
			continue
		}

		s := lexer.GetScanner(string(msg))
		toks := s.Tokenize()
		lexer.PutScanner(s)

		reply := NewReply(toks)
		h.logger.Scan(peer, len(toks), reply.Errors)

		conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			h.logger.Errorf("write to %s failed: %v", peer, err)
			return
		}
	}
}

func (h *Handler) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(h.cfg.PingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(h.cfg.WriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
