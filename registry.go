/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	roomCodeLength = 4
	// Letters only, without I and O.
	roomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// Registry tracks live rooms by code and which room each connection sits in.
// It is owned by the hub goroutine and is not safe for concurrent use.
type Registry struct {
	rooms map[string]*Room
	conns map[string]string // connection ID -> room code

	rnd randSource
	now func() time.Time
}

func newRegistry(rnd randSource) *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		conns: make(map[string]string),
		rnd:   rnd,
		now:   time.Now,
	}
}

func (reg *Registry) newRoomCode() string {
	for {
		out := make([]byte, roomCodeLength)
		for i := range out {
			out[i] = roomCodeChars[reg.rnd.Intn(len(roomCodeChars))]
		}
		code := string(out)

		if _, exists := reg.rooms[code]; !exists {
			return code
		}
	}
}

func validRoomCode(code string) bool {
	if len(code) != roomCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(roomCodeChars, code[i]) < 0 {
			return false
		}
	}
	return true
}

func normalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)

	switch {
	case name == "":
		return "", ErrNameRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		return "", ErrNameTooLong
	}

	return name, nil
}

// CreateRoom opens a new room with conn as its only player and host.
func (reg *Registry) CreateRoom(conn, name string) (*Room, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	code := reg.newRoomCode()
	room := newRoom(code, newPlayer(conn, name, true), reg.now())

	reg.rooms[code] = room
	reg.conns[conn] = code

	return room, nil
}

// checkJoin reports whether name could join the room with the given code
// without changing anything. It returns the room and the normalized name.
func (reg *Registry) checkJoin(code, name string) (*Room, string, error) {
	room, ok := reg.rooms[normalizeRoomCode(code)]
	if !ok {
		return nil, "", ErrRoomNotFound
	}

	name, err := normalizeName(name)
	if err != nil {
		return nil, "", err
	}

	switch {
	case room.Phase != PhaseLobby:
		return nil, "", ErrGameInProgress
	case room.Len() >= maxPlayers:
		return nil, "", ErrRoomFull
	case room.nameTaken(name):
		return nil, "", ErrNameTaken
	}

	return room, name, nil
}

// JoinRoom seats conn in the room with the given code as a regular player.
func (reg *Registry) JoinRoom(conn, code, name string) (*Room, *Player, error) {
	room, name, err := reg.checkJoin(code, name)
	if err != nil {
		return nil, nil, err
	}

	player := newPlayer(conn, name, false)
	room.add(player)
	room.touch(reg.now())

	reg.conns[conn] = room.Code

	return room, player, nil
}

// RemoveConnection takes conn out of its room. The returned room is nil if
// conn was not seated anywhere or if the room was deleted because it
// became empty. newHostID is set when the host changed.
func (reg *Registry) RemoveConnection(conn string) (room *Room, newHostID string) {
	code, ok := reg.conns[conn]
	if !ok {
		return nil, ""
	}

	delete(reg.conns, conn)

	room, ok = reg.rooms[code]
	if !ok {
		return nil, ""
	}

	newHostID, _ = room.remove(conn)

	if room.Len() == 0 {
		delete(reg.rooms, code)
		return nil, ""
	}

	room.touch(reg.now())

	return room, newHostID
}

// Resolve finds the room and player behind a connection.
func (reg *Registry) Resolve(conn string) (*Room, *Player, bool) {
	code, ok := reg.conns[conn]
	if !ok {
		return nil, nil, false
	}

	room, ok := reg.rooms[code]
	if !ok {
		return nil, nil, false
	}

	player, ok := room.Player(conn)
	if !ok {
		return nil, nil, false
	}

	return room, player, true
}

func (reg *Registry) Room(code string) (*Room, bool) {
	room, ok := reg.rooms[code]
	return room, ok
}

func (reg *Registry) Len() int {
	return len(reg.rooms)
}

// IdleRooms returns the codes of rooms with no activity since cutoff.
func (reg *Registry) IdleRooms(cutoff time.Time) []string {
	var codes []string
	for code, room := range reg.rooms {
		if room.lastActive.Before(cutoff) {
			codes = append(codes, code)
		}
	}
	return codes
}
