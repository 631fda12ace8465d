package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"insurance_predict/internal/domain/entity"
	"insurance_predict/internal/domain/service/prediction"
	"insurance_predict/internal/infrastructure/model"
	"insurance_predict/internal/server"
	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/httpx"
	"insurance_predict/pkg/logx"
	"insurance_predict/pkg/rest"
)

const remoteTimeout = 30 * time.Second

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

var errRemote = errors.New("remote prediction failed")

func runPredict(c *cli.Context) error {
	level, err := logx.ParseLevel(c.String(flagLogLevel))
	if err != nil {
		return fmt.Errorf("logx.ParseLevel: %w", err)
	}

	log := logx.NewLogger(c.App.ErrWriter, level, "text", false)

	ctx := contextx.WithLogger(c.Context, log)
	ctx = contextx.WithTraceID(ctx, contextx.NewTraceID())

	request := requestFromFlags(c)
	if err := validate.StructCtx(ctx, request); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	var p entity.Prediction

	if serverURL := c.String(flagServer); serverURL != "" {
		p, err = predictRemote(ctx, serverURL, request)
	} else {
		p, err = predictLocal(ctx, c.String(flagModel), c.String(flagModelFormat), request)
	}

	if err != nil {
		return err
	}

	for _, line := range p.Lines() {
		fmt.Fprintln(c.App.Writer, line)
	}

	return nil
}

func requestFromFlags(c *cli.Context) rest.PredictionRequest {
	flag := func(name string) *int { return lo.ToPtr(c.Int(name)) }

	return rest.PredictionRequest{
		Gender:               c.String(flagGender),
		Age:                  flag(flagAge),
		DrivingLicense:       flag(flagDrivingLicense),
		RegionCode:           flag(flagRegionCode),
		PreviouslyInsured:    flag(flagPreviouslyInsured),
		AnnualPremium:        flag(flagAnnualPremium),
		PolicySalesChannel:   flag(flagPolicySalesChannel),
		Vintage:              flag(flagVintage),
		VehicleAgeLtOneYear:  flag(flagVehicleAgeLtOneYear),
		VehicleAgeGtTwoYears: flag(flagVehicleAgeGtTwoYears),
		VehicleDamageYes:     flag(flagVehicleDamageYes),
	}
}

func predictLocal(ctx context.Context, path, format string, request rest.PredictionRequest) (entity.Prediction, error) {
	f, err := model.ParseFormat(format)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("model.ParseFormat: %w", err)
	}

	artifact := model.Artifact{Format: f, Path: path}
	service := prediction.NewService(model.NewHolder(artifact.Load))

	p, err := service.Submit(ctx, server.NewDomainCustomerRecord(request))
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("service.Submit: %w", err)
	}

	return p, nil
}

func predictRemote(ctx context.Context, serverURL string, request rest.PredictionRequest) (entity.Prediction, error) {
	client := &http.Client{
		Timeout: remoteTimeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		),
	}

	b, err := json.Marshal(request)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("json.Marshal: %w", err)
	}

	url := strings.TrimRight(serverURL, "/") + "/v1/predictions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return entity.Prediction{}, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResponse rest.Error
		if err := json.NewDecoder(resp.Body).Decode(&errResponse); err != nil {
			return entity.Prediction{}, fmt.Errorf("%w: status %d", errRemote, resp.StatusCode)
		}

		return entity.Prediction{}, fmt.Errorf("%w: %s: %s (support id %s)",
			errRemote, errResponse.Code, errResponse.Message, errResponse.SupportID)
	}

	var response rest.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return entity.Prediction{}, fmt.Errorf("json.Decode: %w", err)
	}

	label := entity.NotInterested
	if response.Interested {
		label = entity.Interested
	}

	return entity.Prediction{
		Label:       label,
		Probability: response.Probability,
	}, nil
}
