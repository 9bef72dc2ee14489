// Package api exposes the prediction, staking and project services over
// HTTP.
package api

import (
	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/service"
)

// MaxBodySize limits request bodies to 1MB; game-log CSVs are small.
const MaxBodySize = 1048576

// Config carries the handler dependencies.
type Config struct {
	Prediction    *service.PredictionService
	Staking       *service.StakingService
	Projects      *service.ProjectService
	Players       *service.PlayerService
	DefaultSeason string
	Logger        *logrus.Logger
}

// Handler serves the HTTP API.
type Handler struct {
	prediction    *service.PredictionService
	staking       *service.StakingService
	projects      *service.ProjectService
	players       *service.PlayerService
	defaultSeason string
	logger        *logrus.Logger
}

// New creates an API handler.
func New(cfg Config) *Handler {
	return &Handler{
		prediction:    cfg.Prediction,
		staking:       cfg.Staking,
		projects:      cfg.Projects,
		players:       cfg.Players,
		defaultSeason: cfg.DefaultSeason,
		logger:        cfg.Logger,
	}
}
