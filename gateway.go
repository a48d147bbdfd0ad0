/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

// Notifier delivers events to connections. Delivery is best effort: there is
// no buffering beyond a connection's own queue and no retry.
type Notifier interface {
	SendToConnection(id, event string, payload any)
	SendToRoom(code, event string, payload any)
	SendToRoomExcept(code, excludeID, event string, payload any)
}

// Gateway addresses connected websocket clients by connection ID or by the
// room they sit in. Like the registry it is only touched from the hub
// goroutine.
type Gateway struct {
	cfg      *Config
	registry *Registry
	clients  map[string]*Client
}

var _ Notifier = (*Gateway)(nil)

func newGateway(cfg *Config, registry *Registry) *Gateway {
	return &Gateway{
		cfg:      cfg,
		registry: registry,
		clients:  make(map[string]*Client),
	}
}

func (g *Gateway) add(c *Client) {
	g.clients[c.id] = c
}

// remove forgets the client and closes its send queue, which ends its write
// pump. It reports whether the client was still registered.
func (g *Gateway) remove(id string) bool {
	c, ok := g.clients[id]
	if !ok {
		return false
	}

	delete(g.clients, id)
	close(c.send)

	return true
}

func (g *Gateway) SendToConnection(id, event string, payload any) {
	c, ok := g.clients[id]
	if !ok {
		return
	}

	select {
	case c.send <- ServerMessage{Event: event, Data: payload}:
	default:
		debugf(g.cfg, "GAMES: Dropping slow connection %s", id)
		g.remove(id)
	}
}

func (g *Gateway) SendToRoom(code, event string, payload any) {
	g.SendToRoomExcept(code, "", event, payload)
}

func (g *Gateway) SendToRoomExcept(code, excludeID, event string, payload any) {
	room, ok := g.registry.Room(code)
	if !ok {
		return
	}

	for _, p := range room.Players() {
		if p.ID == excludeID {
			continue
		}
		g.SendToConnection(p.ID, event, payload)
	}
}
