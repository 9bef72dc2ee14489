// Package ensemble combines pre-fit classifiers into a single OVER
// probability with a post-hoc monotonicity guarantee.
package ensemble

import (
	"math"
)

// Member is a single pre-fit classifier scoring a named feature map.
type Member interface {
	Name() string
	PredictProba(feats map[string]float64) float64
}

// LinearModel is a logistic regression over raw-scale features.
type LinearModel struct {
	Intercept float64            `json:"intercept"`
	Weights   map[string]float64 `json:"weights"`
}

// Name implements Member.
func (m *LinearModel) Name() string { return "linear" }

// PredictProba implements Member.
func (m *LinearModel) PredictProba(feats map[string]float64) float64 {
	score := m.Intercept
	for feat, w := range m.Weights {
		score += w * feats[feat]
	}
	return sigmoid(score)
}

// TreeNode is a binary decision tree node. Leaves carry a value; internal
// nodes route on feature <= split.
type TreeNode struct {
	Feature string    `json:"feature,omitempty"`
	Split   float64   `json:"split,omitempty"`
	Left    *TreeNode `json:"left,omitempty"`
	Right   *TreeNode `json:"right,omitempty"`
	Leaf    bool      `json:"leaf,omitempty"`
	Value   float64   `json:"value,omitempty"`
}

// Eval walks the tree for the given features and returns the leaf value.
func (n *TreeNode) Eval(feats map[string]float64) float64 {
	node := n
	for node != nil && !node.Leaf {
		if feats[node.Feature] <= node.Split {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	if node == nil {
		return 0
	}
	return node.Value
}

// ForestModel is a bagged-tree classifier; leaves hold probabilities and the
// forest prediction is their mean.
type ForestModel struct {
	Trees []*TreeNode `json:"trees"`
}

// Name implements Member.
func (m *ForestModel) Name() string { return "forest" }

// PredictProba implements Member.
func (m *ForestModel) PredictProba(feats map[string]float64) float64 {
	if len(m.Trees) == 0 {
		return 0.5
	}
	var sum float64
	for _, t := range m.Trees {
		sum += t.Eval(feats)
	}
	return clamp01(sum / float64(len(m.Trees)))
}

// BoostedModel is a boosted-tree classifier; leaves hold log-odds
// contributions summed, scaled by the learning rate and squashed.
type BoostedModel struct {
	Bias         float64     `json:"bias"`
	LearningRate float64     `json:"learning_rate"`
	Trees        []*TreeNode `json:"trees"`
}

// Name implements Member.
func (m *BoostedModel) Name() string { return "boosted" }

// PredictProba implements Member.
func (m *BoostedModel) PredictProba(feats map[string]float64) float64 {
	score := m.Bias
	var sum float64
	for _, t := range m.Trees {
		sum += t.Eval(feats)
	}
	score += m.LearningRate * sum
	return sigmoid(score)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
