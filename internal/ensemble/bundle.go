package ensemble

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed artifact.json
var defaultArtifact []byte

// artifact is the on-disk layout of a trained model bundle.
type artifact struct {
	Version       string             `json:"version"`
	MemberWeights map[string]float64 `json:"member_weights"`
	Linear        *LinearModel       `json:"linear"`
	Forest        *ForestModel       `json:"forest"`
	Boosted       *BoostedModel      `json:"boosted"`
}

// Bundle is an immutable set of pre-fit ensemble members plus their
// combination weights. Construct once at startup and share freely: a bundle
// is never mutated after loading, so concurrent use needs no locking.
type Bundle struct {
	version string
	members []Member
	weights map[string]float64
}

// LoadDefaultBundle loads the model bundle embedded in the binary.
func LoadDefaultBundle() (*Bundle, error) {
	return loadBundle(defaultArtifact)
}

// LoadBundleFromFile loads a model bundle from an external artifact,
// allowing retrained models to ship without a rebuild.
func LoadBundleFromFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	return loadBundle(data)
}

func loadBundle(data []byte) (*Bundle, error) {
	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	// Linear and forest members are mandatory; a missing boosted member
	// degrades the ensemble instead of failing (the remaining members are
	// averaged and MethodUsed reports the degraded mode).
	if art.Linear == nil || len(art.Linear.Weights) == 0 {
		return nil, fmt.Errorf("model artifact missing linear member")
	}
	if art.Forest == nil || len(art.Forest.Trees) == 0 {
		return nil, fmt.Errorf("model artifact missing forest member")
	}

	b := &Bundle{
		version: art.Version,
		weights: art.MemberWeights,
		members: []Member{art.Linear, art.Forest},
	}
	if art.Boosted != nil && len(art.Boosted.Trees) > 0 {
		b.members = append(b.members, art.Boosted)
	}
	if b.weights == nil {
		b.weights = map[string]float64{}
	}
	return b, nil
}

// Version returns the artifact version string.
func (b *Bundle) Version() string { return b.version }

// Members returns the loaded members.
func (b *Bundle) Members() []Member { return b.members }

// Degraded reports whether the boosted member is unavailable.
func (b *Bundle) Degraded() bool { return len(b.members) < 3 }

// Combine produces the weighted-average probability across members along
// with each member's individual probability, for agreement measurement.
func (b *Bundle) Combine(feats map[string]float64) (float64, []float64) {
	probs := make([]float64, len(b.members))
	var weighted, totalWeight float64
	for i, m := range b.members {
		probs[i] = m.PredictProba(feats)
		w := b.weights[m.Name()]
		if w <= 0 {
			w = 1
		}
		weighted += w * probs[i]
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0.5, probs
	}
	return clamp01(weighted / totalWeight), probs
}
