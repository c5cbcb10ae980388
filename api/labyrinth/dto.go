// Package labyrinthapi serves generation and retrieval of labyrinths.
package labyrinthapi

import (
	"time"

	dmn "github.com/cbs4385/labyrinth-api/domain"
)

// GenerateRequest carries the generation parameters. A nil Seed lets the
// server pick one; the response always reports the seed actually used.
type GenerateRequest struct {
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
	Entrances int    `json:"entrances" binding:"required"`
	Seed      *int64 `json:"seed"`
}

// LabyrinthResponse is the JSON form of a stored labyrinth record.
type LabyrinthResponse struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Entrances int       `json:"entrances"`
	Seed      int64     `json:"seed"`
	Layout    string    `json:"layout"`
	CreatedAt time.Time `json:"created_at"`
}

func newLabyrinthResponse(l *dmn.Labyrinth) *LabyrinthResponse {
	return &LabyrinthResponse{
		ID:        l.ID.String(),
		Width:     l.Width,
		Height:    l.Height,
		Entrances: l.Entrances,
		Seed:      l.Seed,
		Layout:    l.Layout,
		CreatedAt: l.CreatedAt,
	}
}

// RecentResponse lists the most recently generated labyrinth IDs,
// newest first.
type RecentResponse struct {
	IDs []string `json:"ids"`
}
