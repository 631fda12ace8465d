package entity

import "insurance_predict/internal/domain/value"

// CustomerRecord is the set of attributes submitted for one prediction. It
// lives only for the duration of the request.
type CustomerRecord struct {
	Gender               value.Gender `json:"gender"`
	Age                  int          `json:"age"`
	DrivingLicense       int          `json:"driving_license"`
	RegionCode           int          `json:"region_code"`
	PreviouslyInsured    int          `json:"previously_insured"`
	AnnualPremium        int          `json:"annual_premium"`
	PolicySalesChannel   int          `json:"policy_sales_channel"`
	Vintage              int          `json:"vintage"`
	VehicleAgeLtOneYear  int          `json:"vehicle_age_lt_1_year"`
	VehicleAgeGtTwoYears int          `json:"vehicle_age_gt_2_years"`
	VehicleDamageYes     int          `json:"vehicle_damage_yes"`
}

// DefaultCustomerRecord holds the values the form starts with.
func DefaultCustomerRecord() CustomerRecord {
	return CustomerRecord{
		Gender:             value.GenderMale,
		Age:                30,
		RegionCode:         28,
		AnnualPremium:      30000,
		PolicySalesChannel: 26,
		Vintage:            150,
	}
}
