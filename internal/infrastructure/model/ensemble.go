package model

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var ErrInvalidEnsemble = errors.New("invalid tree ensemble")

//nolint:gochecknoglobals
var binaryObjectives = []string{"binary", "binary:logistic"}

// ensembleSchema is the JSON layout of a gradient-boosted tree ensemble
// exported from training.
type ensembleSchema struct {
	Name         string       `json:"name"`
	Objective    string       `json:"objective"`
	NumFeatures  int          `json:"num_features"`
	BaseScore    float64      `json:"base_score"`
	FeatureNames []string     `json:"feature_names"`
	Trees        []treeSchema `json:"trees"`
}

type treeSchema struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode is one node of a flat tree. Children always follow their parent.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf"`
	Value     float64 `json:"value"`
}

// Ensemble sums leaf values of every tree on top of the base score and maps
// the raw score through the logistic function.
type Ensemble struct {
	name         string
	numFeatures  int
	baseScore    float64
	featureNames []string
	trees        [][]TreeNode
}

func LoadEnsembleFile(path string) (*Ensemble, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	return LoadEnsemble(f)
}

func LoadEnsemble(r io.Reader) (*Ensemble, error) {
	var schema ensembleSchema

	if err := json.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	return newEnsemble(schema)
}

func newEnsemble(schema ensembleSchema) (*Ensemble, error) {
	if !lo.Contains(binaryObjectives, schema.Objective) {
		return nil, fmt.Errorf("%w: unsupported objective %q", ErrInvalidEnsemble, schema.Objective)
	}

	if schema.NumFeatures <= 0 {
		return nil, fmt.Errorf("%w: num_features must be positive", ErrInvalidEnsemble)
	}

	if len(schema.FeatureNames) != 0 && len(schema.FeatureNames) != schema.NumFeatures {
		return nil, fmt.Errorf("%w: %d feature names for %d features",
			ErrInvalidEnsemble, len(schema.FeatureNames), schema.NumFeatures)
	}

	if len(schema.Trees) == 0 {
		return nil, fmt.Errorf("%w: no trees", ErrInvalidEnsemble)
	}

	for i, tree := range schema.Trees {
		if err := validateTree(tree.Nodes, schema.NumFeatures); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	return &Ensemble{
		name:         lo.CoalesceOrEmpty(schema.Name, "ensemble.gbdt"),
		numFeatures:  schema.NumFeatures,
		baseScore:    schema.BaseScore,
		featureNames: schema.FeatureNames,
		trees: lo.Map(schema.Trees, func(t treeSchema, _ int) []TreeNode {
			return t.Nodes
		}),
	}, nil
}

func validateTree(nodes []TreeNode, numFeatures int) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: empty tree", ErrInvalidEnsemble)
	}

	for i, node := range nodes {
		if node.Leaf {
			continue
		}

		if node.Feature < 0 || node.Feature >= numFeatures {
			return fmt.Errorf("%w: node %d: feature index %d out of range", ErrInvalidEnsemble, i, node.Feature)
		}

		// Children after the parent keep traversal finite.
		for _, child := range []int{node.Left, node.Right} {
			if child <= i || child >= len(nodes) {
				return fmt.Errorf("%w: node %d: child index %d out of range", ErrInvalidEnsemble, i, child)
			}
		}
	}

	return nil
}

func (e *Ensemble) Name() string {
	return e.name
}

func (e *Ensemble) NumFeatures() int {
	return e.numFeatures
}

func (e *Ensemble) FeatureNames() []string {
	if e.featureNames == nil {
		return nil
	}
	return append([]string(nil), e.featureNames...)
}

func (e *Ensemble) NumTrees() int {
	return len(e.trees)
}

// RawScore is the margin before the logistic transform.
func (e *Ensemble) RawScore(features []float64) (float64, error) {
	if err := checkShape(features, e.numFeatures); err != nil {
		return 0, err
	}

	score := e.baseScore
	for _, tree := range e.trees {
		score += leafValue(tree, features)
	}

	return score, nil
}

func (e *Ensemble) PredictProba(features []float64) ([]float64, error) {
	score, err := e.RawScore(features)
	if err != nil {
		return nil, err
	}

	return binaryProba(sigmoid(score)), nil
}

func (e *Ensemble) Predict(features []float64) (int, error) {
	proba, err := e.PredictProba(features)
	if err != nil {
		return 0, err
	}

	return argmax(proba), nil
}

func leafValue(nodes []TreeNode, features []float64) float64 {
	idx := 0
	for {
		node := nodes[idx]
		if node.Leaf {
			return node.Value
		}

		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}
