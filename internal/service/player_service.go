package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/datasource"
	"github.com/yourusername/courtside/internal/players"
)

// PlayerService resolves players against the registry and fetches their
// game logs from the upstream source.
type PlayerService struct {
	registry *players.Registry
	source   datasource.GameLogSource
	logger   *logrus.Logger
}

// NewPlayerService creates a player service.
func NewPlayerService(registry *players.Registry, source datasource.GameLogSource, logger *logrus.Logger) *PlayerService {
	return &PlayerService{
		registry: registry,
		source:   source,
		logger:   logger,
	}
}

// Search finds registry players matching the query.
func (s *PlayerService) Search(query string) []players.Player {
	return s.registry.Search(query)
}

// FetchGameLog resolves the slug against the registry and downloads the
// season game log as CSV.
func (s *PlayerService) FetchGameLog(ctx context.Context, slug, season string) (*datasource.FetchResult, error) {
	player, err := s.registry.BySlug(slug)
	if err != nil {
		return nil, err
	}

	result, err := s.source.FetchGameLog(ctx, player.Slug, season)
	if err != nil {
		return nil, err
	}
	// Registry name is canonical; the scraped page title can differ.
	result.PlayerName = player.Name
	return result, nil
}
