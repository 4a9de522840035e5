package playground

import "time"

// Config holds the tunables of the WebSocket endpoint.
type Config struct {
	// Largest source buffer accepted in one message.
	MaxSourceBytes int64

	ReadBufferSize  int
	WriteBufferSize int

	// Time allowed to write a reply to the peer.
	WriteWait time.Duration
	// Time allowed to read the next message or pong from the peer.
	PongWait time.Duration
	// Ping period, must be less than PongWait.
	PingPeriod time.Duration
}

// DefaultConfig returns the settings used by `minijava-lex serve`.
func DefaultConfig() Config {
	pongWait := 60 * time.Second
	return Config{
		MaxSourceBytes:  1 << 20,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		WriteWait:       10 * time.Second,
		PongWait:        pongWait,
		PingPeriod:      (pongWait * 9) / 10,
	}
}
