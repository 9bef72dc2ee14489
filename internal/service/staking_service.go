package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/metrics"
	"github.com/yourusername/courtside/internal/models"
	"github.com/yourusername/courtside/internal/staking"
)

// StakingService evaluates stake recommendations and records the outcome.
type StakingService struct {
	engine *staking.Engine
	logger *logrus.Logger
}

// NewStakingService creates a staking service.
func NewStakingService(engine *staking.Engine, logger *logrus.Logger) *StakingService {
	return &StakingService{engine: engine, logger: logger}
}

// Evaluate computes a stake recommendation for the given edge and bankroll
// state.
func (s *StakingService) Evaluate(ctx context.Context, in staking.Input) (*models.StakeRecommendation, error) {
	rec, err := s.engine.Evaluate(in)
	if err != nil {
		return nil, err
	}

	metrics.RecordStakeEvaluation(rec.Recommended)
	return rec, nil
}

// Simulate runs a Monte Carlo projection of the bankroll under the staking
// policy.
func (s *StakingService) Simulate(ctx context.Context, in staking.SimulationInput) (*staking.SimulationResult, error) {
	result, err := s.engine.Simulate(ctx, in)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"iterations":     result.Iterations,
		"mean_return":    result.MeanReturn,
		"prob_of_profit": result.ProbabilityOfProfit,
	}).Debug("Bankroll simulation completed")
	return result, nil
}
