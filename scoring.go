/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

// ScoreRound computes each player's points for a finished round.
//
// Every player earns one point per other player who did not call them a
// liar, whatever their assignment. Voters additionally earn two points for
// each liar they called out and one point for each truth-teller they let
// pass. Accusing a truth-teller or trusting a liar earns nothing.
//
// Only votes naming another player in players are counted.
func ScoreRound(players []*Player) map[string]int {
	scores := make(map[string]int, len(players))

	for _, p := range players {
		scores[p.ID] = 0
	}

	for _, p := range players {
		others := 0
		accusers := 0

		for _, v := range players {
			if v.ID == p.ID {
				continue
			}
			others++
			if v.Votes[p.ID] {
				accusers++
			}
		}

		scores[p.ID] += others - accusers
	}

	for _, voter := range players {
		for _, q := range players {
			if q.ID == voter.ID {
				continue
			}

			accused := voter.Votes[q.ID]

			switch {
			case accused && q.Assignment == AssignmentLie:
				scores[voter.ID] += 2
			case !accused && q.Assignment == AssignmentTruth:
				scores[voter.ID]++
			}
		}
	}

	return scores
}

// RoundResults lists every player's answer, role and accusers in join order,
// along with the points they earned this round.
func RoundResults(players []*Player, scores map[string]int) []RoundResult {
	results := make([]RoundResult, 0, len(players))

	for _, p := range players {
		voters := make([]string, 0, len(players))
		for _, v := range players {
			if v.ID != p.ID && v.Votes[p.ID] {
				voters = append(voters, v.Name)
			}
		}

		answer := p.Answer
		if answer == "" {
			answer = noAnswer
		}

		results = append(results, RoundResult{
			PlayerID:           p.ID,
			PlayerName:         p.Name,
			Answer:             answer,
			Assignment:         p.Assignment,
			VotersWhoCalledLie: voters,
			PointsEarned:       scores[p.ID],
		})
	}

	return results
}
