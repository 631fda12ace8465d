package value

// FeatureInfo is one line of the feature information panel.
type FeatureInfo struct {
	Name        string
	Description string
}

//nolint:gochecknoglobals
var FeatureDescriptions = []FeatureInfo{
	{Name: "Gender", Description: "Male or Female"},
	{Name: "Age", Description: "Age of the customer"},
	{Name: "Driving_License", Description: "0 for No, 1 for Yes"},
	{Name: "Region_Code", Description: "Unique code for the region"},
	{Name: "Previously_Insured", Description: "0 for No, 1 for Yes"},
	{Name: "Annual_Premium", Description: "The amount customer needs to pay as premium in a year"},
	{Name: "Policy_Sales_Channel", Description: "Anonymized Code for the channel of outreaching to the customer"},
	{Name: "Vintage", Description: "Number of Days, Customer has been associated with the company"},
	{Name: "Vehicle_Age_lt_1_Year", Description: "1 if Vehicle Age < 1 Year, else 0"},
	{Name: "Vehicle_Age_gt_2_Years", Description: "1 if Vehicle Age > 2 Years, else 0"},
	{Name: "Vehicle_Damage_Yes", Description: "1 if vehicle has been damaged in the past, else 0"},
}
