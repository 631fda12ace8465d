package value

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// GenderCodes is the encoding used when the model was trained. It must not
// be derived from widget order.
//
//nolint:gochecknoglobals
var GenderCodes = map[Gender]float64{
	GenderMale:   0,
	GenderFemale: 1,
}

// Genders lists the recognized labels in the order the form shows them.
//
//nolint:gochecknoglobals
var Genders = []Gender{GenderMale, GenderFemale}

func (g Gender) String() string {
	return string(g)
}

// Code returns the numeric code of a recognized label.
func (g Gender) Code() (float64, bool) {
	code, ok := GenderCodes[g]
	return code, ok
}
