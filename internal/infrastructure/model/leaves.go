package model

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dmitryikh/leaves"
)

const (
	lightGBMFeatureNamesKey = "feature_names="
	lightGBMTreePrefix      = "Tree="
	lightGBMMaxHeaderLine   = 16 << 20
)

// leavesClassifier adapts LightGBM and XGBoost models read by leaves. The
// ensemble is loaded with its objective transformation so a binary model
// outputs the class-1 probability directly.
type leavesClassifier struct {
	ensemble     *leaves.Ensemble
	featureNames []string
}

func LoadLightGBMFile(path string) (Classifier, error) {
	ensemble, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("leaves.LGEnsembleFromFile: %w", err)
	}

	// leaves drops the header columns, read them separately.
	featureNames, err := readLightGBMFeatureNames(path)
	if err != nil {
		return nil, fmt.Errorf("readLightGBMFeatureNames: %w", err)
	}

	return newLeavesClassifier(ensemble, featureNames)
}

func LoadXGBoostFile(path string) (Classifier, error) {
	ensemble, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("leaves.XGEnsembleFromFile: %w", err)
	}

	return newLeavesClassifier(ensemble, nil)
}

// readLightGBMFeatureNames returns the feature_names= header of a LightGBM
// text model, or nil when the header has none.
func readLightGBMFeatureNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(nil, lightGBMMaxHeaderLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, lightGBMTreePrefix) {
			break
		}

		if names, ok := strings.CutPrefix(line, lightGBMFeatureNamesKey); ok {
			return strings.Fields(names), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan: %w", err)
	}

	return nil, nil
}

func newLeavesClassifier(ensemble *leaves.Ensemble, featureNames []string) (Classifier, error) {
	if ensemble.NOutputGroups() != 1 {
		return nil, fmt.Errorf("expected a binary model, got %d output groups", ensemble.NOutputGroups())
	}

	if featureNames != nil && len(featureNames) != ensemble.NFeatures() {
		return nil, fmt.Errorf("%d feature names for %d features", len(featureNames), ensemble.NFeatures())
	}

	return leavesClassifier{
		ensemble:     ensemble,
		featureNames: featureNames,
	}, nil
}

func (c leavesClassifier) Name() string {
	return c.ensemble.Name()
}

func (c leavesClassifier) NumFeatures() int {
	return c.ensemble.NFeatures()
}

// FeatureNames is known for LightGBM models only.
func (c leavesClassifier) FeatureNames() []string {
	if c.featureNames == nil {
		return nil
	}
	return append([]string(nil), c.featureNames...)
}

func (c leavesClassifier) PredictProba(features []float64) ([]float64, error) {
	if err := checkShape(features, c.ensemble.NFeatures()); err != nil {
		return nil, err
	}

	predictions := make([]float64, 1)

	if err := c.ensemble.Predict(features, 0, predictions); err != nil {
		return nil, fmt.Errorf("ensemble.Predict: %w", err)
	}

	return binaryProba(predictions[0]), nil
}

func (c leavesClassifier) Predict(features []float64) (int, error) {
	proba, err := c.PredictProba(features)
	if err != nil {
		return 0, err
	}

	return argmax(proba), nil
}
