package models

import (
	"time"
)

// GameRecord represents a single past game from a player's game log.
// Records are immutable once parsed and ordered by date ascending.
type GameRecord struct {
	Date      time.Time `json:"date"`
	Opponent  string    `json:"opponent,omitempty"`
	Away      bool      `json:"away"`
	Points    float64   `json:"points"`
	Minutes   float64   `json:"minutes"`
	FGMade    float64   `json:"fg_made"`
	FGAttempt float64   `json:"fg_attempt"`
	FTAttempt float64   `json:"ft_attempt"`
	Assists   float64   `json:"assists"`
	Turnovers float64   `json:"turnovers"`
	PlusMinus float64   `json:"plus_minus"`
	GameScore float64   `json:"game_score"`
}

// GameLog is an ordered sequence of game records plus parse diagnostics.
type GameLog struct {
	Games    []GameRecord `json:"games"`
	Warnings int          `json:"warnings"`
}

// Len returns the number of games in the log.
func (gl *GameLog) Len() int {
	return len(gl.Games)
}

// Points returns the points column in game order.
func (gl *GameLog) Points() []float64 {
	pts := make([]float64, len(gl.Games))
	for i, g := range gl.Games {
		pts[i] = g.Points
	}
	return pts
}

// Tail returns the last n games, or all games when fewer exist.
func (gl *GameLog) Tail(n int) []GameRecord {
	if n >= len(gl.Games) {
		return gl.Games
	}
	return gl.Games[len(gl.Games)-n:]
}

// PlayerStats is a summary computed directly from game records,
// independent of any model output.
type PlayerStats struct {
	SeasonAverage float64 `json:"avg_points_season"`
	Last10Average float64 `json:"avg_points_last_10"`
	MaxPoints     float64 `json:"max_points"`
	MinPoints     float64 `json:"min_points"`
	StdDev        float64 `json:"std_points"`
}
