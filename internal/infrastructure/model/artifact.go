package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"insurance_predict/internal/domain/value"
	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var (
	ErrUnknownFormat        = errors.New("unknown model format")
	ErrFeatureNamesMismatch = errors.New("model feature names do not match input columns")
)

type Format string

const (
	FormatEnsemble Format = "ensemble"
	FormatLightGBM Format = "lightgbm"
	FormatXGBoost  Format = "xgboost"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatEnsemble, FormatLightGBM, FormatXGBoost:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Artifact points at a serialized model on disk.
type Artifact struct {
	Format Format
	Path   string
}

// Load reads the artifact and checks its declared columns against the
// encoder output.
func (a Artifact) Load(ctx context.Context) (Classifier, error) {
	var (
		classifier Classifier
		err        error
	)

	switch a.Format {
	case FormatEnsemble:
		classifier, err = LoadEnsembleFile(a.Path)
	case FormatLightGBM:
		classifier, err = LoadLightGBMFile(a.Path)
	case FormatXGBoost:
		classifier, err = LoadXGBoostFile(a.Path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, a.Format)
	}

	if err != nil {
		return nil, fmt.Errorf("load %s model %s: %w", a.Format, a.Path, err)
	}

	if names := classifier.FeatureNames(); names != nil && !value.MatchesFeatureNames(names) {
		return nil, fmt.Errorf("%w: %v", ErrFeatureNamesMismatch, names)
	}

	logger(ctx).Info(
		"model loaded",
		slog.String(logx.FieldModelPath, a.Path),
		slog.String(logx.FieldModelFormat, string(a.Format)),
		slog.String(logx.FieldModelName, classifier.Name()),
		slog.Int(logx.FieldNumFeatures, classifier.NumFeatures()),
	)

	return classifier, nil
}
