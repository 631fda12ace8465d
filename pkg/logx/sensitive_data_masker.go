package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Customer attributes are personal data and stay out of request dumps.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("gender":\s?").+?(")`),
	regexp.MustCompile(`("age":\s?)\d+()`),
	regexp.MustCompile(`("annualPremium":\s?)\d+()`),
	// Form fields.
	regexp.MustCompile(`(\bgender=)[^&\s]+()`),
	regexp.MustCompile(`(\bage=)[^&\s]+()`),
	regexp.MustCompile(`(\bannual_premium=)[^&\s]+()`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}

// NopSensitiveDataMasker leaves dumps as is, for LOG_MASK_SENSITIVE=false.
type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
