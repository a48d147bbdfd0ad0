/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendQueueSize  = 64
)

const idleRoomMessage = "Room closed due to inactivity"

type Client struct {
	conn    *websocket.Conn
	send    chan any
	id      string
	limiter *rate.Limiter
}

type inboundMessage struct {
	client *Client
	msg    ClientMessage
}

// Hub owns all game state. Its run loop is the only goroutine that touches
// the registry, the rooms and the gateway's client table.
type Hub struct {
	cfg      *Config
	registry *Registry
	gateway  *Gateway
	game     *Game

	register chan *Client
	unreg    chan *Client
	inbound  chan inboundMessage
	done     chan struct{}
}

func newHub(cfg *Config) *Hub {
	rnd := fastSource{}
	registry := newRegistry(rnd)
	gateway := newGateway(cfg, registry)

	return &Hub{
		cfg:      cfg,
		registry: registry,
		gateway:  gateway,
		game:     newGame(cfg, registry, gateway, rnd),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		inbound:  make(chan inboundMessage),
		done:     make(chan struct{}),
	}
}

func (h *Hub) run(ctx context.Context) error {
	defer close(h.done)

	var reap <-chan time.Time
	if h.cfg.sessionTimeout > 0 {
		ticker := time.NewTicker(h.cfg.sessionTimeout / 2)
		defer ticker.Stop()
		reap = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return nil

		case c := <-h.register:
			h.gateway.add(c)
			debugf(h.cfg, "SERVE: Connection %s opened", c.id)

		case c := <-h.unreg:
			h.gateway.remove(c.id)
			h.game.Leave(c.id)
			debugf(h.cfg, "SERVE: Connection %s closed", c.id)

		case in := <-h.inbound:
			h.game.Dispatch(in.client.id, in.msg)

		case now := <-reap:
			h.reapIdle(now.Add(-h.cfg.sessionTimeout))
		}
	}
}

// reapIdle closes every room that has seen no activity since cutoff. Its
// players are told why, disconnected and removed.
func (h *Hub) reapIdle(cutoff time.Time) {
	for _, code := range h.registry.IdleRooms(cutoff) {
		room, ok := h.registry.Room(code)
		if !ok {
			continue
		}

		players := room.Players()

		h.gateway.SendToRoom(code, EventError, ErrorMessage{Message: idleRoomMessage})

		for _, p := range players {
			h.gateway.remove(p.ID)
		}
		for _, p := range players {
			h.game.Leave(p.ID)
		}

		logf(h.cfg, "GAMES: Closed idle room %s", code)
	}
}

func (h *Hub) closeAll() {
	for id, c := range h.gateway.clients {
		h.gateway.remove(id)
		_ = c.conn.Close()
	}
}

// forward hands a message to the run loop unless the hub has stopped.
func forward[T any](h *Hub, ch chan T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-h.done:
		return false
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, h *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			debugf(cfg, "SERVE: Upgrade failed for %s: %v", realIP(r), err)
			return
		}

		client := &Client{
			conn:    conn,
			send:    make(chan any, sendQueueSize),
			id:      uuid.NewString(),
			limiter: rate.NewLimiter(rate.Limit(cfg.messageRate), cfg.messageBurst),
		}

		if !forward(h, h.register, client) {
			_ = conn.Close()
			return
		}

		logf(cfg, "SERVE: Websocket %s opened by %s", client.id, realIP(r))

		go client.writePump()
		client.readPump(cfg, h)
	}
}

func (c *Client) readPump(cfg *Config, h *Hub) {
	defer func() {
		forward(h, h.unreg, c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				debugf(cfg, "SERVE: Websocket %s read error: %v", c.id, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			debugf(cfg, "SERVE: Malformed frame from %s: %v", c.id, err)
			continue
		}

		if !c.limiter.Allow() {
			debugf(cfg, "SERVE: Rate limited %q from %s", msg.Event, c.id)
			continue
		}

		if !forward(h, h.inbound, inboundMessage{client: c, msg: msg}) {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
