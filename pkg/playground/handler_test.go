package playground_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/minijava/pkg/compiler/lexer"
	"github.com/agenthands/minijava/pkg/logger"
	"github.com/agenthands/minijava/pkg/playground"
)

func startServer(t *testing.T, cfg playground.Config) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(playground.NewMux(cfg, logger.Discard()))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestTokenizeOverWebSocket(t *testing.T) {
	t.Parallel()
	conn := dial(t, startServer(t, playground.DefaultConfig()))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("if(x<10){}")))

	var reply playground.Reply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, 0, reply.Errors)
	require.Len(t, reply.Tokens, 9)
	assert.Equal(t, playground.TokenJSON{Kind: "IF", Text: "if", Line: 1, Column: 1, Offset: 0}, reply.Tokens[0])
	assert.Equal(t, playground.TokenJSON{Kind: "INTEGER_LITERAL", Text: "10", Line: 1, Column: 6, Offset: 5}, reply.Tokens[4])
	assert.Equal(t, "EOF", reply.Tokens[8].Kind)
}

func TestMessagesAreIndependent(t *testing.T) {
	t.Parallel()
	conn := dial(t, startServer(t, playground.DefaultConfig()))

	for _, src := range []string{"a & b", "\n\n42"} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(src)))
		var reply playground.Reply
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, playground.NewReply(lexer.Tokenize(src)), reply)
	}
}

func TestErrorsCounted(t *testing.T) {
	t.Parallel()

	reply := playground.NewReply(lexer.Tokenize("@ # x"))
	assert.Equal(t, 2, reply.Errors)
	assert.Equal(t, "ERROR", reply.Tokens[0].Kind)
	assert.Equal(t, "@", reply.Tokens[0].Text)
}

func TestOversizedSourceClosesConnection(t *testing.T) {
	t.Parallel()
	cfg := playground.DefaultConfig()
	cfg.MaxSourceBytes = 16
	conn := dial(t, startServer(t, cfg))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(strings.Repeat("x ", 64))))

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	srv := startServer(t, playground.DefaultConfig())

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}
