package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"insurance_predict/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Gender",
			input:  []byte(`{"vintage":150,"gender":"Female"}`),
			output: []byte(`{"vintage":150,"gender":"[MASKED]"}`),
		},
		{
			name:   "Age and annual premium",
			input:  []byte(`{"age": 30, "annualPremium": 30000, "regionCode": 28}`),
			output: []byte(`{"age": [MASKED], "annualPremium": [MASKED], "regionCode": 28}`),
		},
		{
			name:   "Form body",
			input:  []byte(`gender=Male&age=30&region_code=28&annual_premium=30000`),
			output: []byte(`gender=[MASKED]&age=[MASKED]&region_code=28&annual_premium=[MASKED]`),
		},
		{
			name:   "Bearer token",
			input:  []byte("Authorization: Bearer abc.def\r\n"),
			output: []byte("Authorization: Bearer [MASKED]\r\n"),
		},
		{
			name:   "Nothing to mask",
			input:  []byte(`{"policySalesChannel":26}`),
			output: []byte(`{"policySalesChannel":26}`),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	level, err := logx.ParseLevel("debug")
	rq.NoError(err)
	rq.Equal("DEBUG", level.String())

	_, err = logx.ParseLevel("loud")
	rq.Error(err)
}
