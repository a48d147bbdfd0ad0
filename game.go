/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import "time"

// Game applies player actions to rooms and tells clients what changed.
// Every method runs to completion, broadcasts included, on the hub
// goroutine, so rooms need no locking.
type Game struct {
	cfg      *Config
	registry *Registry
	notify   Notifier
	prompts  []string
	rnd      randSource
	now      func() time.Time
}

func newGame(cfg *Config, registry *Registry, notify Notifier, rnd randSource) *Game {
	return &Game{
		cfg:      cfg,
		registry: registry,
		notify:   notify,
		prompts:  defaultPrompts,
		rnd:      rnd,
		now:      time.Now,
	}
}

// resolve looks up the acting player and marks their room as active.
func (g *Game) resolve(conn string) (*Room, *Player, bool) {
	room, player, ok := g.registry.Resolve(conn)
	if !ok {
		return nil, nil, false
	}

	room.touch(g.now())

	return room, player, true
}

func (g *Game) CreateRoom(conn, name string) error {
	if _, err := normalizeName(name); err != nil {
		return err
	}

	g.Leave(conn)

	room, err := g.registry.CreateRoom(conn, name)
	if err != nil {
		return err
	}

	player, _ := room.Player(conn)

	g.notify.SendToConnection(conn, EventRoomCreated, RoomCreatedMessage{RoomCode: room.Code})
	g.notify.SendToConnection(conn, EventRoomJoined, RoomJoinedMessage{
		RoomCode: room.Code,
		Player:   player.data(),
		Players:  room.playersData(),
	})

	logf(g.cfg, "GAMES: Room %s created by %q", room.Code, player.Name)

	return nil
}

func (g *Game) JoinRoom(conn, code, name string) error {
	if current, _, ok := g.registry.Resolve(conn); ok {
		if current.Code == normalizeRoomCode(code) {
			return nil
		}

		// A failed join keeps the player where they are.
		if _, _, err := g.registry.checkJoin(code, name); err != nil {
			return err
		}
		g.Leave(conn)
	}

	room, player, err := g.registry.JoinRoom(conn, code, name)
	if err != nil {
		return err
	}

	players := room.playersData()

	g.notify.SendToConnection(conn, EventRoomJoined, RoomJoinedMessage{
		RoomCode: room.Code,
		Player:   player.data(),
		Players:  players,
	})
	g.notify.SendToRoomExcept(room.Code, conn, EventPlayerJoined, PlayerJoinedMessage{
		Player:  player.data(),
		Players: players,
	})

	logf(g.cfg, "GAMES: Player %q joined %s", player.Name, room.Code)

	return nil
}

// Leave removes the connection from whatever room it is in. It is the
// handler for disconnects.
func (g *Game) Leave(conn string) {
	room, newHostID := g.registry.RemoveConnection(conn)
	if room == nil {
		return
	}

	g.notify.SendToRoom(room.Code, EventPlayerLeft, PlayerLeftMessage{
		PlayerID:  conn,
		Players:   room.playersData(),
		NewHostID: newHostID,
	})

	logf(g.cfg, "GAMES: Connection %s left %s", conn, room.Code)

	// The remaining players may now all have acted.
	switch room.Phase {
	case PhaseAnswering:
		if room.answered() == room.Len() {
			g.startVoting(room)
		}
	case PhaseVoting:
		if room.voted() == room.Len() {
			g.startReveal(room)
		}
	}
}

func (g *Game) StartGame(conn string) error {
	room, _, ok := g.resolve(conn)
	if !ok || room.Phase != PhaseLobby {
		return nil
	}

	if !room.IsHost(conn) {
		return ErrNotHost
	}

	if room.Len() < minPlayers {
		return ErrNotEnoughPlayers
	}

	g.startFirstRound(room)

	logf(g.cfg, "GAMES: Game started in %s", room.Code)

	return nil
}

func (g *Game) SubmitAnswer(conn, answer string) {
	room, player, ok := g.resolve(conn)
	if !ok || room.Phase != PhaseAnswering || player.HasAnswered {
		return
	}

	player.Answer = answer
	player.HasAnswered = true

	answered := room.answered()

	g.notify.SendToRoom(room.Code, EventAnswerProgress, AnswerProgressMessage{
		Answered: answered,
		Total:    room.Len(),
	})

	if answered == room.Len() {
		g.startVoting(room)
	}
}

// SubmitVotes records the players conn calls liars. Unknown IDs, repeats
// and votes for oneself are dropped.
func (g *Game) SubmitVotes(conn string, votes []string) {
	room, player, ok := g.resolve(conn)
	if !ok || room.Phase != PhaseVoting || player.HasVoted {
		return
	}

	for _, id := range votes {
		if id == conn {
			continue
		}
		if _, ok := room.Player(id); ok {
			player.Votes[id] = true
		}
	}
	player.HasVoted = true

	voted := room.voted()

	g.notify.SendToRoom(room.Code, EventVoteProgress, VoteProgressMessage{
		Voted: voted,
		Total: room.Len(),
	})

	if voted == room.Len() {
		g.startReveal(room)
	}
}

func (g *Game) NextReveal(conn string) {
	room, _, ok := g.resolve(conn)
	if !ok || room.Phase != PhaseRevealing || !room.IsHost(conn) {
		return
	}

	room.RevealIndex++

	if room.RevealIndex < len(room.roundResults) {
		g.sendReveal(room)
		return
	}

	room.Phase = PhaseScoreboard

	g.notify.SendToRoom(room.Code, EventRoundScoreboard, RoundScoreboardMessage{
		Players:     room.standings(),
		RoundScores: room.RoundScores,
	})
}

func (g *Game) NextRound(conn string) {
	room, _, ok := g.resolve(conn)
	if !ok || room.Phase != PhaseScoreboard || !room.IsHost(conn) {
		return
	}

	if room.Round >= room.MaxRounds {
		room.Phase = PhaseGameOver

		g.notify.SendToRoom(room.Code, EventGameOver, GameOverMessage{
			Players: room.standings(),
		})

		logf(g.cfg, "GAMES: Game over in %s", room.Code)

		return
	}

	room.Round++
	g.beginRound(room)
}

// PlayAgain restarts a finished (or abandoned) game with the same players.
func (g *Game) PlayAgain(conn string) error {
	room, _, ok := g.resolve(conn)
	if !ok || room.Phase == PhaseLobby || !room.IsHost(conn) {
		return nil
	}

	if room.Len() < minPlayers {
		return ErrNotEnoughPlayers
	}

	for _, p := range room.Players() {
		p.Score = 0
	}
	room.UsedPrompts = nil

	g.startFirstRound(room)

	logf(g.cfg, "GAMES: Game restarted in %s", room.Code)

	return nil
}

func (g *Game) ReturnToLobby(conn string) {
	room, _, ok := g.resolve(conn)
	if !ok || !room.IsHost(conn) {
		return
	}

	for _, p := range room.Players() {
		p.Score = 0
		p.Assignment = AssignmentNone
		p.resetRound()
	}

	room.Phase = PhaseLobby
	room.Round = 0
	room.Prompt = ""
	room.UsedPrompts = nil
	room.RevealIndex = 0
	room.RoundScores = make(map[string]int)
	room.roundResults = nil

	g.notify.SendToRoom(room.Code, EventReturnedToLobby, ReturnedToLobbyMessage{
		Players: room.playersData(),
	})
}

func (g *Game) startFirstRound(room *Room) {
	room.Round = 1

	g.notify.SendToRoom(room.Code, EventGameStarted, GameStartedMessage{
		Round:     room.Round,
		MaxRounds: room.MaxRounds,
	})

	g.beginRound(room)
}

// beginRound draws a prompt, deals roles and sends each player their own
// round brief.
func (g *Game) beginRound(room *Room) {
	room.Phase = PhaseAnswering
	room.Prompt = nextPrompt(g.rnd, g.prompts, room)
	room.RevealIndex = 0
	room.roundResults = nil

	g.assignRoles(room)

	for _, p := range room.Players() {
		g.notify.SendToConnection(p.ID, EventNewRound, NewRoundMessage{
			Round:      room.Round,
			Prompt:     room.Prompt,
			Assignment: p.Assignment,
			TimeLimit:  room.AnswerLimit,
		})
	}
}

// assignRoles shuffles the roster and makes the first half (rounded up)
// truth-tellers and the rest liars.
func (g *Game) assignRoles(room *Room) {
	players := room.Players()
	shuffle(g.rnd, players)

	half := (len(players) + 1) / 2

	for i, p := range players {
		p.resetRound()

		if i < half {
			p.Assignment = AssignmentTruth
		} else {
			p.Assignment = AssignmentLie
		}
	}
}

func (g *Game) startVoting(room *Room) {
	room.Phase = PhaseVoting

	answers := make([]AnswerData, 0, room.Len())
	for _, p := range room.Players() {
		answer := p.Answer
		if answer == "" {
			answer = noAnswer
		}

		answers = append(answers, AnswerData{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Answer:     answer,
		})
	}

	shuffle(g.rnd, answers)

	g.notify.SendToRoom(room.Code, EventVotingPhase, VotingPhaseMessage{
		Answers:   answers,
		TimeLimit: room.VoteLimit,
	})
}

func (g *Game) startReveal(room *Room) {
	players := room.Players()

	room.Phase = PhaseRevealing
	room.RevealIndex = 0
	room.RoundScores = ScoreRound(players)

	for _, p := range players {
		p.Score += room.RoundScores[p.ID]
	}

	room.roundResults = RoundResults(players, room.RoundScores)

	g.sendReveal(room)
}

func (g *Game) sendReveal(room *Room) {
	g.notify.SendToRoom(room.Code, EventRevealAnswer, RevealAnswerMessage{
		Result: room.roundResults[room.RevealIndex],
		Index:  room.RevealIndex,
		Total:  len(room.roundResults),
	})
}
