// Package prediction scores customer records against the loaded classifier.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"insurance_predict/internal/domain"
	"insurance_predict/internal/domain/entity"
	"insurance_predict/internal/domain/service/encoder"
	"insurance_predict/internal/domain/value"
	"insurance_predict/internal/infrastructure/model"
	"insurance_predict/pkg/errcodes"
	"insurance_predict/pkg/logx"
)

const (
	ErrorKindEncoding  = "encoding"
	ErrorKindInference = "inference"
	ErrorKindOther     = "other"
)

type ClassifierSource interface {
	Get(ctx context.Context) (model.Classifier, error)
}

type recorder interface {
	ObservePrediction(label string, elapsed time.Duration)
	ObserveError(kind string)
}

type nopRecorder struct{}

func (nopRecorder) ObservePrediction(string, time.Duration) {}
func (nopRecorder) ObserveError(string)                     {}

type Service struct {
	models  ClassifierSource
	metrics recorder
}

func NewService(models ClassifierSource) *Service {
	return &Service{
		models:  models,
		metrics: nopRecorder{},
	}
}

func (s *Service) WithMetrics(metrics recorder) *Service {
	s.metrics = metrics
	return s
}

// Submit encodes the record and scores it. The model is not touched when
// encoding fails.
func (s *Service) Submit(ctx context.Context, record entity.CustomerRecord) (entity.Prediction, error) {
	start := time.Now()

	vector, err := encoder.Encode(record)
	if err != nil {
		s.metrics.ObserveError(ErrorKindEncoding)
		return entity.Prediction{}, fmt.Errorf("encoder.Encode: %w", err)
	}

	prediction, err := s.Predict(ctx, vector)
	if err != nil {
		s.metrics.ObserveError(errorKind(err))
		return entity.Prediction{}, fmt.Errorf("Predict: %w", err)
	}

	s.metrics.ObservePrediction(prediction.Label.String(), time.Since(start))

	logger(ctx).Debug(
		"prediction served",
		logx.Stringer(logx.FieldLabel, prediction.Label),
		slog.Float64(logx.FieldProbability, prediction.Probability),
	)

	return prediction, nil
}

// Predict runs the classifier over one encoded vector. The label follows
// the model's predicted class and the probability is its class-1 estimate.
func (s *Service) Predict(ctx context.Context, vector value.FeatureVector) (entity.Prediction, error) {
	classifier, err := s.models.Get(ctx)
	if err != nil {
		return entity.Prediction{}, domain.NewModelInferenceError(err, errcodes.ModelNotLoaded, "model is not loaded")
	}

	if classifier == nil {
		return entity.Prediction{}, domain.NewModelInferenceError(nil, errcodes.ModelNotLoaded, "model is not loaded")
	}

	if vector.Len() != classifier.NumFeatures() {
		return entity.Prediction{}, domain.NewModelInferenceError(
			fmt.Errorf("%w: got %d features, model expects %d", model.ErrShapeMismatch, vector.Len(), classifier.NumFeatures()),
			errcodes.ModelSchemaMismatch,
			"feature vector does not match the model",
		)
	}

	features := vector.Values()

	class, err := classifier.Predict(features)
	if err != nil {
		return entity.Prediction{}, inferenceError(fmt.Errorf("classifier.Predict: %w", err))
	}

	proba, err := classifier.PredictProba(features)
	if err != nil {
		return entity.Prediction{}, inferenceError(fmt.Errorf("classifier.PredictProba: %w", err))
	}

	if len(proba) < 2 {
		return entity.Prediction{}, inferenceError(fmt.Errorf("expected 2 class probabilities, got %d", len(proba)))
	}

	probability := proba[1]
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return entity.Prediction{}, inferenceError(fmt.Errorf("class-1 probability %v outside [0,1]", probability))
	}

	return entity.Prediction{
		Label:       entity.LabelFromClass(class),
		Probability: probability,
	}, nil
}

func inferenceError(err error) error {
	code := errcodes.ModelInferenceError
	if errors.Is(err, model.ErrShapeMismatch) {
		code = errcodes.ModelSchemaMismatch
	}

	return domain.NewModelInferenceError(err, code, "model inference failed")
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrEncoding):
		return ErrorKindEncoding
	case errors.Is(err, domain.ErrModelInference):
		return ErrorKindInference
	default:
		return ErrorKindOther
	}
}
