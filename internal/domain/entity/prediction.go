package entity

import "strconv"

type Label int

const (
	NotInterested Label = iota
	Interested
)

func LabelFromClass(class int) Label {
	if class == 1 {
		return Interested
	}
	return NotInterested
}

func (l Label) String() string {
	if l == Interested {
		return "Interested"
	}
	return "Not Interested"
}

type Prediction struct {
	Label Label
	// Probability is the model's class-1 estimate.
	Probability float64
}

func (p Prediction) Interested() bool {
	return p.Label == Interested
}

// FormatProbability renders the probability with two decimals, e.g. "0.73".
func (p Prediction) FormatProbability() string {
	return strconv.FormatFloat(p.Probability, 'f', 2, 64)
}

// Lines are the two result lines shown to the user.
func (p Prediction) Lines() []string {
	return []string{
		"Prediction: " + p.Label.String(),
		"Probability of being interested: " + p.FormatProbability(),
	}
}
