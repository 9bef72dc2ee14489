// Package cache provides in-memory caching for prediction results.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/courtside/internal/metrics"
	"github.com/yourusername/courtside/internal/models"
)

// Key identifies a cached prediction: the digest of the raw game-log text
// plus the threshold. The digest makes manually supplied and fetched CSVs
// hit the same entries.
type Key struct {
	LogDigest string
	Threshold float64
}

// String returns the string representation of the cache key
func (k Key) String() string {
	return fmt.Sprintf("%s:%.2f", k.LogDigest, k.Threshold)
}

// DigestCSV computes the digest of a raw game-log CSV blob.
func DigestCSV(csvText string) string {
	sum := sha256.Sum256([]byte(csvText))
	return hex.EncodeToString(sum[:16])
}

// PredictionCache provides in-memory caching for prediction results
type PredictionCache struct {
	cache   *gocache.Cache
	ttl     time.Duration
	maxSize int
	mu      sync.Mutex
}

// NewPredictionCache creates a new prediction cache
func NewPredictionCache(ttl time.Duration, maxSize int) *PredictionCache {
	return &PredictionCache{
		cache:   gocache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves a cached prediction, nil on miss.
func (pc *PredictionCache) Get(key Key) *models.PredictionResult {
	if result, found := pc.cache.Get(key.String()); found {
		if pred, ok := result.(*models.PredictionResult); ok {
			metrics.CacheHitsTotal.Inc()
			// Copy so callers can mutate freely.
			out := *pred
			return &out
		}
	}

	metrics.CacheMissesTotal.Inc()
	return nil
}

// Set stores a prediction in cache
func (pc *PredictionCache) Set(key Key, prediction *models.PredictionResult) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.cache.ItemCount() >= pc.maxSize {
		pc.cache.DeleteExpired()
	}

	stored := *prediction
	pc.cache.Set(key.String(), &stored, pc.ttl)
}

// Flush drops every cached entry.
func (pc *PredictionCache) Flush() {
	pc.cache.Flush()
}
