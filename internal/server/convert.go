package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"insurance_predict/internal/domain/entity"
	"insurance_predict/internal/domain/value"
	"insurance_predict/pkg/errcodes"
	"insurance_predict/pkg/rest"
)

// NewDomainCustomerRecord expects a validated request: every pointer is set.
// Shared by the HTTP handlers and the predict command.
func NewDomainCustomerRecord(request rest.PredictionRequest) entity.CustomerRecord {
	return entity.CustomerRecord{
		Gender:               value.Gender(request.Gender),
		Age:                  lo.FromPtr(request.Age),
		DrivingLicense:       lo.FromPtr(request.DrivingLicense),
		RegionCode:           lo.FromPtr(request.RegionCode),
		PreviouslyInsured:    lo.FromPtr(request.PreviouslyInsured),
		AnnualPremium:        lo.FromPtr(request.AnnualPremium),
		PolicySalesChannel:   lo.FromPtr(request.PolicySalesChannel),
		Vintage:              lo.FromPtr(request.Vintage),
		VehicleAgeLtOneYear:  lo.FromPtr(request.VehicleAgeLtOneYear),
		VehicleAgeGtTwoYears: lo.FromPtr(request.VehicleAgeGtTwoYears),
		VehicleDamageYes:     lo.FromPtr(request.VehicleDamageYes),
	}
}

func newRESTPrediction(prediction entity.Prediction) rest.PredictionResponse {
	return rest.PredictionResponse{
		Label:           prediction.Label.String(),
		Interested:      prediction.Interested(),
		Probability:     prediction.Probability,
		ProbabilityText: prediction.FormatProbability(),
	}
}

func newRESTFeatures() rest.FeaturesResponse {
	return rest.FeaturesResponse{
		Features: lo.Map(value.FeatureDescriptions, func(info value.FeatureInfo, _ int) rest.Feature {
			return rest.Feature{
				Name:        info.Name,
				Description: info.Description,
			}
		}),
	}
}

// newRequestFromForm reads the form widgets. Missing fields stay nil and
// are reported by validation.
func newRequestFromForm(r *http.Request) (rest.PredictionRequest, error) {
	if err := r.ParseForm(); err != nil {
		return rest.PredictionRequest{}, failure.NewInvalidArgumentError(
			fmt.Errorf("r.ParseForm: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid form"),
		)
	}

	request := rest.PredictionRequest{
		Gender: r.PostForm.Get(fieldGender),
	}

	targets := map[string]**int{
		fieldAge:                  &request.Age,
		fieldDrivingLicense:       &request.DrivingLicense,
		fieldRegionCode:           &request.RegionCode,
		fieldPreviouslyInsured:    &request.PreviouslyInsured,
		fieldAnnualPremium:        &request.AnnualPremium,
		fieldPolicySalesChannel:   &request.PolicySalesChannel,
		fieldVintage:              &request.Vintage,
		fieldVehicleAgeLtOneYear:  &request.VehicleAgeLtOneYear,
		fieldVehicleAgeGtTwoYears: &request.VehicleAgeGtTwoYears,
		fieldVehicleDamageYes:     &request.VehicleDamageYes,
	}

	for name, target := range targets {
		raw := strings.TrimSpace(r.PostForm.Get(name))
		if raw == "" {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return rest.PredictionRequest{}, failure.NewInvalidArgumentError(
				fmt.Errorf("strconv.Atoi %s: %w", name, err).Error(),
				failure.WithCode(errcodes.InvalidCustomerRecord),
				failure.WithDescription(fmt.Sprintf("%s must be an integer", name)),
			)
		}

		*target = &n
	}

	return request, nil
}
