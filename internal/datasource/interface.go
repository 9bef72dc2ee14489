// Package datasource fetches player game logs from the upstream stats site.
package datasource

import (
	"context"
)

// FetchResult is a fetched game log in the same CSV shape the ingest
// pipeline accepts, so fetched and manually supplied data follow one path.
type FetchResult struct {
	CSV        string `json:"csv"`
	PlayerName string `json:"player_name"`
	Games      int    `json:"games"`
	Season     string `json:"season"`
}

// GameLogSource supplies raw game-log CSV text for a player season. The
// prediction core makes no assumption about freshness or availability and
// works identically on manually supplied CSV.
type GameLogSource interface {
	FetchGameLog(ctx context.Context, slug, season string) (*FetchResult, error)
}
