/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import "encoding/json"

// Dispatch routes one client message to the matching game operation.
// Validation errors go back to the sender as an error event; malformed or
// unknown messages are logged and dropped.
func (g *Game) Dispatch(conn string, msg ClientMessage) {
	var err error

	switch msg.Event {
	case ActionCreateRoom:
		var req CreateRoomRequest
		if !g.decode(conn, msg, &req) {
			return
		}
		err = g.CreateRoom(conn, req.PlayerName)

	case ActionJoinRoom:
		var req JoinRoomRequest
		if !g.decode(conn, msg, &req) {
			return
		}
		err = g.JoinRoom(conn, req.RoomCode, req.PlayerName)

	case ActionStartGame:
		err = g.StartGame(conn)

	case ActionSubmitAnswer:
		var req SubmitAnswerRequest
		if !g.decode(conn, msg, &req) {
			return
		}
		g.SubmitAnswer(conn, req.Answer)

	case ActionSubmitVotes:
		var req SubmitVotesRequest
		if !g.decode(conn, msg, &req) {
			return
		}
		g.SubmitVotes(conn, req.Votes)

	case ActionNextReveal:
		g.NextReveal(conn)

	case ActionNextRound:
		g.NextRound(conn)

	case ActionPlayAgain:
		err = g.PlayAgain(conn)

	case ActionReturnToLobby:
		g.ReturnToLobby(conn)

	default:
		debugf(g.cfg, "GAMES: Ignoring unknown event %q from %s", msg.Event, conn)
		return
	}

	if err != nil {
		g.notify.SendToConnection(conn, EventError, ErrorMessage{Message: err.Error()})
	}
}

func (g *Game) decode(conn string, msg ClientMessage, v any) bool {
	if len(msg.Data) == 0 {
		return true
	}

	if err := json.Unmarshal(msg.Data, v); err != nil {
		debugf(g.cfg, "GAMES: Malformed %q payload from %s: %v", msg.Event, conn, err)
		return false
	}

	return true
}
