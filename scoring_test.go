/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoringPlayer(id string, a Assignment, votes ...string) *Player {
	p := newPlayer(id, id, false)
	p.Assignment = a
	for _, v := range votes {
		p.Votes[v] = true
	}
	return p
}

func TestScoreRound(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		players  []*Player
		expected map[string]int
	}{
		{
			desc: "mixed accusations",
			players: []*Player{
				scoringPlayer("a", AssignmentTruth, "b"),
				scoringPlayer("b", AssignmentLie, "a"),
				scoringPlayer("c", AssignmentTruth),
			},
			expected: map[string]int{"a": 4, "b": 2, "c": 3},
		},
		{
			desc: "nobody votes",
			players: []*Player{
				scoringPlayer("a", AssignmentTruth),
				scoringPlayer("b", AssignmentTruth),
				scoringPlayer("c", AssignmentLie),
			},
			expected: map[string]int{"a": 3, "b": 3, "c": 4},
		},
		{
			desc: "everyone accuses the liar",
			players: []*Player{
				scoringPlayer("a", AssignmentTruth, "c"),
				scoringPlayer("b", AssignmentTruth, "c"),
				scoringPlayer("c", AssignmentLie),
			},
			// a: 2 believers + 2 for the liar + 1 for trusting b
			// c: 0 believers + 2 truths trusted
			expected: map[string]int{"a": 5, "b": 5, "c": 2},
		},
		{
			desc: "self votes and unknown ids are ignored",
			players: []*Player{
				scoringPlayer("a", AssignmentTruth, "a", "ghost"),
				scoringPlayer("b", AssignmentTruth),
				scoringPlayer("c", AssignmentLie),
			},
			expected: map[string]int{"a": 3, "b": 3, "c": 4},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, ScoreRound(tc.players))
		})
	}
}

func TestScoreRound_IsPure(t *testing.T) {
	t.Parallel()

	players := []*Player{
		scoringPlayer("a", AssignmentLie, "b", "c"),
		scoringPlayer("b", AssignmentTruth, "a"),
		scoringPlayer("c", AssignmentLie),
		scoringPlayer("d", AssignmentTruth, "c"),
	}

	first := ScoreRound(players)

	reversed := []*Player{players[3], players[2], players[1], players[0]}
	assert.Equal(t, first, ScoreRound(reversed))
	assert.Equal(t, first, ScoreRound(players))

	assert.Equal(t, map[string]bool{"b": true, "c": true}, players[0].Votes)
	assert.Zero(t, players[0].Score)
}

func TestRoundResults(t *testing.T) {
	t.Parallel()

	a := scoringPlayer("a", AssignmentTruth, "b")
	a.Answer = "pineapple"
	b := scoringPlayer("b", AssignmentLie, "a")
	c := scoringPlayer("c", AssignmentTruth, "b")
	c.Answer = "karaoke"

	players := []*Player{a, b, c}
	results := RoundResults(players, ScoreRound(players))

	assert.Len(t, results, 3)

	assert.Equal(t, "a", results[0].PlayerID)
	assert.Equal(t, "pineapple", results[0].Answer)
	assert.Equal(t, []string{"b"}, results[0].VotersWhoCalledLie)

	assert.Equal(t, noAnswer, results[1].Answer)
	assert.Equal(t, AssignmentLie, results[1].Assignment)
	assert.Equal(t, []string{"a", "c"}, results[1].VotersWhoCalledLie)

	assert.Empty(t, results[2].VotersWhoCalledLie)
	assert.Equal(t, ScoreRound(players)["c"], results[2].PointsEarned)
}
