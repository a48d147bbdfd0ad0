/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import "github.com/valyala/fastrand"

type randSource interface {
	// Intn returns a value in [0, n). n is always greater than zero.
	Intn(n int) int
}

type fastSource struct{}

func (fastSource) Intn(n int) int {
	return int(fastrand.Uint32n(uint32(n)))
}

// shuffle performs a Fisher-Yates shuffle in place.
func shuffle[T any](rnd randSource, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
