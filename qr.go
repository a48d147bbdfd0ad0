/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

const qrSize = 320 // mobile-friendly size

// qrCache renders join links as PNG QR codes and keeps the most used ones.
type qrCache struct {
	cache *lru.ARCCache
}

func newQRCache(size int) (*qrCache, error) {
	c, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("creating qr cache: %w", err)
	}

	return &qrCache{cache: c}, nil
}

func (q *qrCache) png(url string) ([]byte, error) {
	if v, ok := q.cache.Get(url); ok {
		return v.([]byte), nil
	}

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}

	q.cache.Add(url, png)

	return png, nil
}

// joinURL is the link a phone camera should open to join the room.
func joinURL(cfg *Config, r *http.Request, code string) string {
	// Respect TLS and X-Forwarded-Proto if present.
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host + cfg.prefix + "/?room=" + code
}

func serveQR(cfg *Config, q *qrCache, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		code := strings.ToUpper(ps.ByName("code"))
		if !validRoomCode(code) {
			http.Error(w, "invalid room code", http.StatusBadRequest)
			return
		}

		png, err := q.png(joinURL(cfg, r, code))
		if err != nil {
			errorf(cfg, "SERVE: QR code for %s: %v", code, err)
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		securityHeaders(cfg, w)

		if _, err := w.Write(png); err != nil {
			errs <- err
		}
	}
}
