package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Command lines are tiny; anything bigger than this is not a client.
const wsReadLimit = 4 << 10

type WebSocket struct {
	Upgrader  websocket.Upgrader
	ReadLimit int64
}

func NewWebSocket() (*WebSocket, error) {
	return &WebSocket{
		Upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ReadLimit: wsReadLimit,
	}, nil
}
