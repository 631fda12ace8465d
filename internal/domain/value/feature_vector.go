package value

const FeatureCount = 11

// Column positions of the model input.
const (
	FeatureGender = iota
	FeatureAge
	FeatureDrivingLicense
	FeatureRegionCode
	FeaturePreviouslyInsured
	FeatureAnnualPremium
	FeaturePolicySalesChannel
	FeatureVintage
	FeatureVehicleAgeLtOneYear
	FeatureVehicleAgeGtTwoYears
	FeatureVehicleDamageYes
)

// FeatureNames are the training-time column names in model input order.
//
//nolint:gochecknoglobals
var FeatureNames = [FeatureCount]string{
	FeatureGender:               "Gender",
	FeatureAge:                  "Age",
	FeatureDrivingLicense:       "Driving_License",
	FeatureRegionCode:           "Region_Code",
	FeaturePreviouslyInsured:    "Previously_Insured",
	FeatureAnnualPremium:        "Annual_Premium",
	FeaturePolicySalesChannel:   "Policy_Sales_Channel",
	FeatureVintage:              "Vintage",
	FeatureVehicleAgeLtOneYear:  "Vehicle_Age_lt_1_Year",
	FeatureVehicleAgeGtTwoYears: "Vehicle_Age_gt_2_Years",
	FeatureVehicleDamageYes:     "Vehicle_Damage_Yes",
}

// FeatureVector is one encoded customer record. Reordering its elements
// silently changes the prediction.
type FeatureVector []float64

func (v FeatureVector) Len() int {
	return len(v)
}

// Values returns a copy safe to hand to a model.
func (v FeatureVector) Values() []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// MatchesFeatureNames reports whether names equal FeatureNames exactly.
func MatchesFeatureNames(names []string) bool {
	if len(names) != FeatureCount {
		return false
	}

	for i, name := range names {
		if FeatureNames[i] != name {
			return false
		}
	}

	return true
}
