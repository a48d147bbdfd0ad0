/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"sort"
	"strings"
	"time"
)

const (
	maxPlayers      = 8
	minPlayers      = 3
	maxRounds       = 5
	maxNameLength   = 20
	answerTimeLimit = 60
	voteTimeLimit   = 45
	noAnswer        = "(No answer)"
)

// Phase is the stage of the round lifecycle a room is in.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseAnswering  Phase = "answering"
	PhaseVoting     Phase = "voting"
	PhaseRevealing  Phase = "revealing"
	PhaseScoreboard Phase = "scoreboard"
	PhaseGameOver   Phase = "gameOver"
)

// Assignment is a player's role for one round.
type Assignment string

const (
	AssignmentNone  Assignment = ""
	AssignmentTruth Assignment = "TRUTH"
	AssignmentLie   Assignment = "LIE"
)

type Player struct {
	ID     string
	Name   string
	IsHost bool
	Score  int

	Assignment  Assignment
	Answer      string
	HasAnswered bool
	HasVoted    bool
	Votes       map[string]bool // player IDs called out as liars
}

func newPlayer(id, name string, host bool) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		IsHost: host,
		Votes:  make(map[string]bool),
	}
}

// resetRound clears everything a player submitted for the current round.
func (p *Player) resetRound() {
	p.Answer = ""
	p.HasAnswered = false
	p.HasVoted = false
	p.Votes = make(map[string]bool)
}

func (p *Player) data() PlayerData {
	return PlayerData{
		ID:          p.ID,
		Name:        p.Name,
		IsHost:      p.IsHost,
		Score:       p.Score,
		HasAnswered: p.HasAnswered,
		HasVoted:    p.HasVoted,
	}
}

type Room struct {
	Code   string
	HostID string
	Phase  Phase

	Round        int
	MaxRounds    int
	Prompt       string
	UsedPrompts  []string
	AnswerLimit  int
	VoteLimit    int
	RevealIndex  int
	RoundScores  map[string]int
	roundResults []RoundResult
	players      map[string]*Player
	order        []string // player IDs in join order
	lastActive   time.Time
}

func newRoom(code string, host *Player, now time.Time) *Room {
	r := &Room{
		Code:        code,
		HostID:      host.ID,
		Phase:       PhaseLobby,
		MaxRounds:   maxRounds,
		AnswerLimit: answerTimeLimit,
		VoteLimit:   voteTimeLimit,
		RoundScores: make(map[string]int),
		players:     make(map[string]*Player),
		lastActive:  now,
	}

	r.add(host)

	return r
}

func (r *Room) add(p *Player) {
	r.players[p.ID] = p
	r.order = append(r.order, p.ID)
}

// remove drops the player and, if they were host, promotes the
// earliest-joined remaining player. It returns the new host's ID when the
// host changed.
func (r *Room) remove(id string) (newHostID string, ok bool) {
	if _, ok := r.players[id]; !ok {
		return "", false
	}

	delete(r.players, id)

	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	if r.HostID == id && len(r.order) > 0 {
		next := r.players[r.order[0]]
		next.IsHost = true
		r.HostID = next.ID

		return next.ID, true
	}

	return "", true
}

func (r *Room) Player(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// Players returns the roster in join order.
func (r *Room) Players() []*Player {
	players := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, r.players[id])
	}
	return players
}

func (r *Room) Len() int {
	return len(r.order)
}

func (r *Room) IsHost(id string) bool {
	return r.HostID == id
}

func (r *Room) nameTaken(name string) bool {
	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

func (r *Room) answered() int {
	n := 0
	for _, p := range r.players {
		if p.HasAnswered {
			n++
		}
	}
	return n
}

func (r *Room) voted() int {
	n := 0
	for _, p := range r.players {
		if p.HasVoted {
			n++
		}
	}
	return n
}

func (r *Room) playersData() []PlayerData {
	players := r.Players()

	data := make([]PlayerData, 0, len(players))
	for _, p := range players {
		data = append(data, p.data())
	}
	return data
}

// standings returns the roster sorted by cumulative score, highest first.
// Ties keep join order.
func (r *Room) standings() []PlayerData {
	data := r.playersData()

	sort.SliceStable(data, func(i, j int) bool {
		return data[i].Score > data[j].Score
	})

	return data
}

func (r *Room) touch(now time.Time) {
	r.lastActive = now
}
