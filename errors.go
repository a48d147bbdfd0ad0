/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned to the acting player as an error event. Their text is
// shown to the user as-is.
var (
	ErrRoomNotFound     = errors.New("Room not found")
	ErrGameInProgress   = errors.New("Game already in progress")
	ErrRoomFull         = errors.New("Room is full")
	ErrNameTaken        = errors.New("Name already taken")
	ErrNameRequired     = errors.New("Name is required")
	ErrNameTooLong      = fmt.Errorf("Name must be at most %d characters", maxNameLength)
	ErrNotHost          = errors.New("Only the host can start the game")
	ErrNotEnoughPlayers = fmt.Errorf("Need at least %d players", minPlayers)
)

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
