/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import "slices"

var defaultPrompts = []string{
	"What's a food you secretly hate?",
	"What's the most embarrassing song on your playlist?",
	"What's a movie everyone loves that you think is overrated?",
	"What's a weird habit you have?",
	"What were you afraid of as a kid?",
	"What's the strangest thing you've ever eaten?",
	"What's the most trouble you got into as a kid?",
	"What's an unusual skill you have?",
	"What's the worst job you've ever had?",
	"What's something you've done that you'd never do again?",
	"What's an unpopular opinion you have?",
	"What's something everyone should try at least once?",
	"What trend do you not understand?",
	"What's the best advice you've ever received?",
	"What's something you pretend to understand but don't?",
	"If you could have dinner with anyone, who would it be?",
	"What would you do if you won the lottery tomorrow?",
	"What's your go-to karaoke song?",
	"What's the last thing you searched on Google?",
	"What's a hill you're willing to die on?",
	"What's something you've never told anyone in this room?",
	"What's the pettiest thing you've ever done?",
	"What rule do you always break?",
	"What's something you're embarrassingly bad at?",
	"What's a lie you've told that you got away with?",
	"What's something you'd do for $1 million?",
	"What's a conspiracy theory you kind of believe?",
	"What's the worst fashion choice you've ever made?",
	"What TV show are you embarrassed to admit you love?",
	"What's something you wish you could tell your younger self?",
}

// nextPrompt picks a prompt the room has not seen this game and records it.
// Once every prompt has been used the history starts over.
func nextPrompt(rnd randSource, prompts []string, room *Room) string {
	available := make([]string, 0, len(prompts))
	for _, p := range prompts {
		if !slices.Contains(room.UsedPrompts, p) {
			available = append(available, p)
		}
	}

	if len(available) == 0 {
		room.UsedPrompts = nil
		available = prompts
	}

	prompt := available[rnd.Intn(len(available))]
	room.UsedPrompts = append(room.UsedPrompts, prompt)

	return prompt
}
