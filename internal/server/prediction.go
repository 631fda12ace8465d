package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"insurance_predict/internal/domain"
	"insurance_predict/internal/domain/entity"
	"insurance_predict/pkg/errcodes"
	"insurance_predict/pkg/httpx/reply"
	"insurance_predict/pkg/httpx/req"
	"insurance_predict/pkg/rest"
)

type predictionService interface {
	Submit(context.Context, entity.CustomerRecord) (entity.Prediction, error)
}

type PredictionServer struct {
	predictionService predictionService
}

func NewPredictionServer(predictionService predictionService) PredictionServer {
	return PredictionServer{
		predictionService: predictionService,
	}
}

func (s PredictionServer) postV1Prediction(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	prediction, err := s.predictionService.Submit(ctx, NewDomainCustomerRecord(request))
	if err != nil {
		return submitError(err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrediction(prediction))

	return nil
}

func (s PredictionServer) getV1Features(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTFeatures())

	return nil
}

// submitError classifies a service failure: a bad categorical value is the
// caller's fault, anything else is ours.
func submitError(err error) error {
	err = fmt.Errorf("predictionService.Submit: %w", err)

	if errors.Is(err, domain.ErrEncoding) {
		code := errcodes.InvalidGender
		if c, ok := domain.GetCode(err); ok {
			code = c
		}

		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(code),
			failure.WithDescription(encodingMessage(err)),
		)
	}

	return err
}

func encodingMessage(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}

	return err.Error()
}
