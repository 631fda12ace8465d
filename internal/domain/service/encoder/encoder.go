// Package encoder maps a customer record onto the model input columns.
package encoder

import (
	"insurance_predict/internal/domain"
	"insurance_predict/internal/domain/entity"
	"insurance_predict/internal/domain/value"
	"insurance_predict/pkg/errcodes"
)

// Encode substitutes Gender with its training-time code and passes every
// other field through in column order. It never defaults an unknown label.
func Encode(record entity.CustomerRecord) (value.FeatureVector, error) {
	gender, ok := record.Gender.Code()
	if !ok {
		return nil, domain.NewEncodingError(
			errcodes.InvalidGender,
			value.FeatureNames[value.FeatureGender],
			record.Gender.String(),
		)
	}

	vector := make(value.FeatureVector, value.FeatureCount)

	vector[value.FeatureGender] = gender
	vector[value.FeatureAge] = float64(record.Age)
	vector[value.FeatureDrivingLicense] = float64(record.DrivingLicense)
	vector[value.FeatureRegionCode] = float64(record.RegionCode)
	vector[value.FeaturePreviouslyInsured] = float64(record.PreviouslyInsured)
	vector[value.FeatureAnnualPremium] = float64(record.AnnualPremium)
	vector[value.FeaturePolicySalesChannel] = float64(record.PolicySalesChannel)
	vector[value.FeatureVintage] = float64(record.Vintage)
	vector[value.FeatureVehicleAgeLtOneYear] = float64(record.VehicleAgeLtOneYear)
	vector[value.FeatureVehicleAgeGtTwoYears] = float64(record.VehicleAgeGtTwoYears)
	vector[value.FeatureVehicleDamageYes] = float64(record.VehicleDamageYes)

	return vector, nil
}
