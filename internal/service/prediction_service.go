// Package service wires the parsing, prediction, staking and project
// pipelines behind transport-agnostic interfaces.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/courtside/internal/cache"
	"github.com/yourusername/courtside/internal/ensemble"
	"github.com/yourusername/courtside/internal/gamelog"
	"github.com/yourusername/courtside/internal/metrics"
	"github.com/yourusername/courtside/internal/models"
)

// PredictionOutcome is the full result of running a game log through the
// prediction pipeline: per-threshold probabilities plus the summary stats
// computed from the same records.
type PredictionOutcome struct {
	PlayerStats models.PlayerStats         `json:"player_stats"`
	SampleSize  int                        `json:"sample_size"`
	Warnings    int                        `json:"warnings"`
	Results     []*models.PredictionResult `json:"results"`
}

// PredictionService runs raw CSV through parse, feature extraction and the
// ensemble, with a digest-keyed cache in front of single-threshold requests.
type PredictionService struct {
	parser    *gamelog.Parser
	predictor *ensemble.Predictor
	cache     *cache.PredictionCache
	logger    *logrus.Logger
}

// NewPredictionService creates a prediction service.
func NewPredictionService(parser *gamelog.Parser, predictor *ensemble.Predictor, predCache *cache.PredictionCache, logger *logrus.Logger) *PredictionService {
	return &PredictionService{
		parser:    parser,
		predictor: predictor,
		cache:     predCache,
		logger:    logger,
	}
}

// Predict parses csvText once and scores every threshold against it.
//
// The cache is consulted only for single-threshold requests: batch results
// carry the monotonicity correction, which depends on the whole batch, so
// mixing cached and fresh entries could break the ordering guarantee.
func (s *PredictionService) Predict(ctx context.Context, csvText string, thresholds []float64) (*PredictionOutcome, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: no thresholds supplied", models.ErrParse)
	}
	start := time.Now()

	digest := cache.DigestCSV(csvText)
	if len(thresholds) == 1 {
		if cached := s.cache.Get(cache.Key{LogDigest: digest, Threshold: thresholds[0]}); cached != nil {
			log, err := s.parser.Parse(csvText)
			if err != nil {
				return nil, err
			}
			return &PredictionOutcome{
				PlayerStats: gamelog.Summarize(log),
				SampleSize:  cached.SampleSize,
				Warnings:    log.Warnings,
				Results:     []*models.PredictionResult{cached},
			}, nil
		}
	}

	log, err := s.parser.Parse(csvText)
	if err != nil {
		return nil, err
	}

	results, err := s.predictor.PredictBatch(log, thresholds)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start).Seconds()
	for _, res := range results {
		metrics.RecordPrediction(res.MethodUsed, elapsed)
		if res.Adjusted {
			metrics.MonotonicityAdjustmentsTotal.Inc()
		}
		switch res.MethodUsed {
		case models.MethodEmpiricalFrequency, models.MethodExtremeThreshold:
			metrics.PredictionFallbacksTotal.Inc()
		}
	}

	if len(thresholds) == 1 {
		s.cache.Set(cache.Key{LogDigest: digest, Threshold: thresholds[0]}, results[0])
	}

	s.logger.WithFields(logrus.Fields{
		"thresholds":  len(thresholds),
		"sample_size": log.Len(),
		"warnings":    log.Warnings,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Prediction pipeline completed")

	return &PredictionOutcome{
		PlayerStats: gamelog.Summarize(log),
		SampleSize:  log.Len(),
		Warnings:    log.Warnings,
		Results:     results,
	}, nil
}
