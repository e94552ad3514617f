// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package publish

import (
	"bytes"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"gitlab.com/postmarketOS/gnss_nmea/internal/pool"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocket is an http.Handler streaming every record broadcast on the pool
// to the connected browser, one text message per record.
type WebSocket struct {
	connPool *pool.Pool
}

func NewWebSocket(connPool *pool.Pool) *WebSocket {
	return &WebSocket{connPool: connPool}
}

func (ws *WebSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v\n", err)
		return
	}
	defer conn.Close()

	client := pool.NewClient("ws")
	ws.connPool.Register <- client
	defer func() {
		ws.connPool.Unregister <- client
	}()

	// control frames are only processed while reading
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("websocket error: %v\n", err)
				}
				ws.connPool.Unregister <- client
				return
			}
		}
	}()

	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, bytes.TrimRight(msg, "\n")); err != nil {
			return
		}
	}
}
