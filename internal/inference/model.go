// Scorecast - Student Performance Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/scorecast

// Package inference loads the trained regression artifact and scores feature
// vectors with it.
//
// The artifact is a JSON document produced by the offline training job. Two
// model types are supported:
//
//   - linear: score = intercept + sum(coefficients[i] * x[i])
//   - random_forest: the mean of every tree's leaf value. Trees use the
//     scikit-learn export layout: a node whose left and right children are
//     both -1 is a leaf, otherwise go left when x[feature] <= threshold.
//
// A *Model never changes after Load and can be shared by all requests.
package inference

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/scorecast/internal/models"
)

// Model types.
const (
	TypeLinear       = "linear"
	TypeRandomForest = "random_forest"
)

const leaf = -1

// Regressor scores feature vectors. *Model is the production implementation.
type Regressor interface {
	Predict(features []float64) (float64, error)
	Info() models.ModelInfo
}

// Artifact mirrors the on-disk JSON document.
type Artifact struct {
	FormatVersion int       `json:"format_version"`
	Name          string    `json:"name"`
	Version       string    `json:"version"`
	TrainedAt     string    `json:"trained_at,omitempty"`
	Features      []string  `json:"features"`
	Model         ModelSpec `json:"model"`
}

// ModelSpec holds either linear or forest parameters, selected by Type.
type ModelSpec struct {
	Type         string    `json:"type"`
	Intercept    float64   `json:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Trees        []Tree    `json:"trees,omitempty"`
}

// Tree is a flattened decision tree; Nodes[0] is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is one decision tree node.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

func (n Node) isLeaf() bool {
	return n.Left == leaf && n.Right == leaf
}

// Model is a loaded, validated regression artifact.
type Model struct {
	artifact Artifact
	info     models.ModelInfo
}

// Load reads, validates and compiles the artifact at path. Any failure is
// returned as *ArtifactLoadError.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &ArtifactLoadError{Path: path, Err: err}
	}
	m, err := Parse(data)
	if err != nil {
		return nil, &ArtifactLoadError{Path: path, Err: err}
	}
	m.info.Path = path
	return m, nil
}

// Parse builds a Model from artifact bytes.
func Parse(data []byte) (*Model, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if err := checkFeatures(a.Features); err != nil {
		return nil, err
	}

	info := models.ModelInfo{
		Name:     a.Name,
		Version:  a.Version,
		Type:     a.Model.Type,
		Features: append([]string(nil), a.Features...),
		LoadedAt: time.Now().UTC().Format(time.RFC3339),
	}
	sum := sha256.Sum256(data)
	info.SHA256 = hex.EncodeToString(sum[:])

	switch a.Model.Type {
	case TypeLinear:
		if len(a.Model.Coefficients) != len(a.Features) {
			return nil, fmt.Errorf("linear model has %d coefficients for %d features",
				len(a.Model.Coefficients), len(a.Features))
		}
	case TypeRandomForest:
		for i, t := range a.Model.Trees {
			depth, err := checkTree(t, len(a.Features))
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
			info.MaxDepth = max(info.MaxDepth, depth)
		}
		info.Trees = len(a.Model.Trees)
	default:
		return nil, fmt.Errorf("%w: unknown model type %q", ErrSchema, a.Model.Type)
	}

	return &Model{artifact: a, info: info}, nil
}

func checkFeatures(features []string) error {
	if len(features) != len(models.FeatureNames) {
		return fmt.Errorf("%w: got %v, want %v", ErrFeatureMismatch, features, models.FeatureNames)
	}
	for i, name := range models.FeatureNames {
		if features[i] != name {
			return fmt.Errorf("%w: position %d is %q, want %q", ErrFeatureMismatch, i, features[i], name)
		}
	}
	return nil
}

// checkTree verifies node references and returns the tree depth. Children
// must point forward, which guarantees traversal terminates.
func checkTree(t Tree, numFeatures int) (int, error) {
	depth := make([]int, len(t.Nodes))
	maxDepth := 0
	for i, n := range t.Nodes {
		if n.isLeaf() {
			continue
		}
		if n.Left == leaf || n.Right == leaf {
			return 0, fmt.Errorf("%w: node %d has a single child", ErrMalformedTree, i)
		}
		if n.Feature < 0 || n.Feature >= numFeatures {
			return 0, fmt.Errorf("%w: node %d splits on feature %d", ErrMalformedTree, i, n.Feature)
		}
		for _, child := range []int{n.Left, n.Right} {
			if child <= i || child >= len(t.Nodes) {
				return 0, fmt.Errorf("%w: node %d points to node %d", ErrMalformedTree, i, child)
			}
			depth[child] = depth[i] + 1
			maxDepth = max(maxDepth, depth[child])
		}
	}
	return maxDepth, nil
}

// Predict scores one feature vector in models.FeatureNames order.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != len(m.artifact.Features) {
		return 0, &InferenceError{Reason: fmt.Sprintf("expected %d features, got %d", len(m.artifact.Features), len(features))}
	}
	for i, x := range features {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, &InferenceError{Reason: fmt.Sprintf("feature %s is not finite", m.artifact.Features[i])}
		}
	}

	var score float64
	switch m.artifact.Model.Type {
	case TypeLinear:
		score = m.artifact.Model.Intercept
		for i, c := range m.artifact.Model.Coefficients {
			score += c * features[i]
		}
	case TypeRandomForest:
		var total float64
		for _, t := range m.artifact.Model.Trees {
			total += t.predict(features)
		}
		score = total / float64(len(m.artifact.Model.Trees))
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, &InferenceError{Reason: "model produced a non-finite score"}
	}
	return score, nil
}

func (t Tree) predict(x []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Info describes the loaded artifact.
func (m *Model) Info() models.ModelInfo {
	info := m.info
	info.Features = append([]string(nil), m.info.Features...)
	return info
}
