// Package model loads the serialized classifier and exposes it behind a
// small predict / predict_proba interface.
package model

import (
	"errors"
	"fmt"
	"math"
)

var ErrShapeMismatch = errors.New("feature vector shape mismatch")

// Classifier is a trained binary classifier. Implementations are immutable
// after load and safe for concurrent use.
type Classifier interface {
	Name() string
	NumFeatures() int
	// FeatureNames returns the training column names, or nil when the
	// artifact does not carry them.
	FeatureNames() []string
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
}

// argmax picks the most probable class; ties go to the lower class.
func argmax(proba []float64) int {
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return best
}

func binaryProba(p float64) []float64 {
	return []float64{1 - p, p}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func checkShape(features []float64, numFeatures int) error {
	if len(features) != numFeatures {
		return fmt.Errorf("%w: got %d features, model expects %d", ErrShapeMismatch, len(features), numFeatures)
	}
	return nil
}
