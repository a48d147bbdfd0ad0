/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import "encoding/json"

// Actions sent by clients.
const (
	ActionCreateRoom    = "createRoom"
	ActionJoinRoom      = "joinRoom"
	ActionStartGame     = "startGame"
	ActionSubmitAnswer  = "submitAnswer"
	ActionSubmitVotes   = "submitVotes"
	ActionNextReveal    = "nextReveal"
	ActionNextRound     = "nextRound"
	ActionPlayAgain     = "playAgain"
	ActionReturnToLobby = "returnToLobby"
)

// Events sent to clients.
const (
	EventRoomCreated     = "roomCreated"
	EventRoomJoined      = "roomJoined"
	EventPlayerJoined    = "playerJoined"
	EventPlayerLeft      = "playerLeft"
	EventGameStarted     = "gameStarted"
	EventNewRound        = "newRound"
	EventAnswerProgress  = "answerProgress"
	EventVotingPhase     = "votingPhase"
	EventVoteProgress    = "voteProgress"
	EventRevealAnswer    = "revealAnswer"
	EventRoundScoreboard = "roundScoreboard"
	EventGameOver        = "gameOver"
	EventReturnedToLobby = "returnedToLobby"
	EventError           = "error"
)

// ClientMessage is a single inbound frame. Data is decoded according to
// Event once the message reaches the hub.
type ClientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ServerMessage is a single outbound frame.
type ServerMessage struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type SubmitVotesRequest struct {
	Votes []string `json:"votes"`
}

// PlayerData is the public view of a player.
type PlayerData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsHost      bool   `json:"isHost"`
	Score       int    `json:"score"`
	HasAnswered bool   `json:"hasAnswered"`
	HasVoted    bool   `json:"hasVoted"`
}

// AnswerData is shown during voting, so it never carries the assignment.
type AnswerData struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Answer     string `json:"answer"`
}

type RoundResult struct {
	PlayerID           string     `json:"playerId"`
	PlayerName         string     `json:"playerName"`
	Answer             string     `json:"answer"`
	Assignment         Assignment `json:"assignment"`
	VotersWhoCalledLie []string   `json:"votersWhoCalledLie"`
	PointsEarned       int        `json:"pointsEarned"`
}

type RoomCreatedMessage struct {
	RoomCode string `json:"roomCode"`
}

type RoomJoinedMessage struct {
	RoomCode string       `json:"roomCode"`
	Player   PlayerData   `json:"player"`
	Players  []PlayerData `json:"players"`
}

type PlayerJoinedMessage struct {
	Player  PlayerData   `json:"player"`
	Players []PlayerData `json:"players"`
}

type PlayerLeftMessage struct {
	PlayerID  string       `json:"playerId"`
	Players   []PlayerData `json:"players"`
	NewHostID string       `json:"newHostId,omitempty"`
}

type GameStartedMessage struct {
	Round     int `json:"round"`
	MaxRounds int `json:"maxRounds"`
}

// NewRoundMessage is personalised: each player only sees their own
// assignment.
type NewRoundMessage struct {
	Round      int        `json:"round"`
	Prompt     string     `json:"prompt"`
	Assignment Assignment `json:"assignment"`
	TimeLimit  int        `json:"timeLimit"`
}

type AnswerProgressMessage struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

type VotingPhaseMessage struct {
	Answers   []AnswerData `json:"answers"`
	TimeLimit int          `json:"timeLimit"`
}

type VoteProgressMessage struct {
	Voted int `json:"voted"`
	Total int `json:"total"`
}

type RevealAnswerMessage struct {
	Result RoundResult `json:"result"`
	Index  int         `json:"index"`
	Total  int         `json:"total"`
}

type RoundScoreboardMessage struct {
	Players     []PlayerData   `json:"players"`
	RoundScores map[string]int `json:"roundScores"`
}

type GameOverMessage struct {
	Players []PlayerData `json:"players"`
}

type ReturnedToLobbyMessage struct {
	Players []PlayerData `json:"players"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}
