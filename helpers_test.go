/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		bind:         "127.0.0.1",
		port:         8080,
		messageRate:  100,
		messageBurst: 100,
		qrCacheSize:  8,
	}
}

// seqSource replays vals in order, wrapping around.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

type sentEvent struct {
	to      string // connection ID, empty for room broadcasts
	room    string
	except  string
	event   string
	payload any
}

type recordingNotifier struct {
	events []sentEvent
}

var _ Notifier = (*recordingNotifier)(nil)

func (n *recordingNotifier) SendToConnection(id, event string, payload any) {
	n.events = append(n.events, sentEvent{to: id, event: event, payload: payload})
}

func (n *recordingNotifier) SendToRoom(code, event string, payload any) {
	n.events = append(n.events, sentEvent{room: code, event: event, payload: payload})
}

func (n *recordingNotifier) SendToRoomExcept(code, excludeID, event string, payload any) {
	n.events = append(n.events, sentEvent{room: code, except: excludeID, event: event, payload: payload})
}

func (n *recordingNotifier) named(event string) []sentEvent {
	var out []sentEvent
	for _, e := range n.events {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (n *recordingNotifier) last(t *testing.T, event string) sentEvent {
	t.Helper()

	events := n.named(event)
	require.NotEmpty(t, events, "no %q event sent", event)

	return events[len(events)-1]
}

func (n *recordingNotifier) reset() {
	n.events = nil
}

type testGame struct {
	*Game
	notify *recordingNotifier
}

func newTestGame(rnd randSource) testGame {
	if rnd == nil {
		rnd = fastSource{}
	}

	n := &recordingNotifier{}
	registry := newRegistry(rnd)

	return testGame{
		Game:   newGame(testConfig(), registry, n, rnd),
		notify: n,
	}
}

// seat creates a room hosted by the first name and joins the rest. Each
// player's connection ID is their name.
func (tg testGame) seat(t *testing.T, names ...string) *Room {
	t.Helper()

	require.NoError(t, tg.CreateRoom(names[0], names[0]))

	room, _, ok := tg.registry.Resolve(names[0])
	require.True(t, ok)

	for _, name := range names[1:] {
		require.NoError(t, tg.JoinRoom(name, room.Code, name))
	}

	return room
}

// answerAll submits an answer for every player in the room.
func (tg testGame) answerAll(room *Room) {
	for _, p := range room.Players() {
		tg.SubmitAnswer(p.ID, "answer from "+p.Name)
	}
}

// voteAll submits an empty ballot for every player who has not voted.
func (tg testGame) voteAll(room *Room) {
	for _, p := range room.Players() {
		tg.SubmitVotes(p.ID, nil)
	}
}
