package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"insurance_predict/internal/domain"
	"insurance_predict/internal/domain/entity"
	"insurance_predict/internal/domain/service/encoder"
	"insurance_predict/internal/domain/value"
	"insurance_predict/pkg/errcodes"
)

func baseRecord() entity.CustomerRecord {
	return entity.CustomerRecord{
		Gender:               value.GenderMale,
		Age:                  30,
		DrivingLicense:       1,
		RegionCode:           28,
		PreviouslyInsured:    0,
		AnnualPremium:        30000,
		PolicySalesChannel:   26,
		Vintage:              150,
		VehicleAgeLtOneYear:  0,
		VehicleAgeGtTwoYears: 0,
		VehicleDamageYes:     0,
	}
}

func TestEncode(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		modify func(*entity.CustomerRecord)
		vector value.FeatureVector
	}{
		{
			name:   "Male",
			modify: func(*entity.CustomerRecord) {},
			vector: value.FeatureVector{0, 30, 1, 28, 0, 30000, 26, 150, 0, 0, 0},
		},
		{
			name:   "Female",
			modify: func(r *entity.CustomerRecord) { r.Gender = value.GenderFemale },
			vector: value.FeatureVector{1, 30, 1, 28, 0, 30000, 26, 150, 0, 0, 0},
		},
		{
			name:   "Min age and region zero",
			modify: func(r *entity.CustomerRecord) { r.Age = 18; r.RegionCode = 0 },
			vector: value.FeatureVector{0, 18, 1, 0, 0, 30000, 26, 150, 0, 0, 0},
		},
		{
			name:   "Max age",
			modify: func(r *entity.CustomerRecord) { r.Age = 100 },
			vector: value.FeatureVector{0, 100, 1, 28, 0, 30000, 26, 150, 0, 0, 0},
		},
		{
			name: "Every flag set",
			modify: func(r *entity.CustomerRecord) {
				r.PreviouslyInsured = 1
				r.VehicleAgeLtOneYear = 1
				r.VehicleAgeGtTwoYears = 1
				r.VehicleDamageYes = 1
			},
			vector: value.FeatureVector{0, 30, 1, 28, 1, 30000, 26, 150, 1, 1, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			record := baseRecord()
			tc.modify(&record)

			vector, err := encoder.Encode(record)
			rq.NoError(err)
			rq.Len(vector, value.FeatureCount)
			rq.Equal(tc.vector, vector)
		})
	}
}

func TestEncodeColumnOrder(t *testing.T) {
	rq := require.New(t)

	record := entity.CustomerRecord{
		Gender:               value.GenderFemale,
		Age:                  2,
		DrivingLicense:       3,
		RegionCode:           4,
		PreviouslyInsured:    5,
		AnnualPremium:        6,
		PolicySalesChannel:   7,
		Vintage:              8,
		VehicleAgeLtOneYear:  9,
		VehicleAgeGtTwoYears: 10,
		VehicleDamageYes:     11,
	}

	vector, err := encoder.Encode(record)
	rq.NoError(err)

	for i, v := range vector {
		rq.InDelta(float64(i+1), v, 0, value.FeatureNames[i])
	}
}

func TestEncodeDeterministic(t *testing.T) {
	rq := require.New(t)

	first, err := encoder.Encode(baseRecord())
	rq.NoError(err)

	for range 10 {
		next, err := encoder.Encode(baseRecord())
		rq.NoError(err)
		rq.Equal(first, next)
	}
}

func TestEncodeUnknownGender(t *testing.T) {
	rq := require.New(t)

	for _, gender := range []value.Gender{"Other", "", "male", " Female"} {
		record := baseRecord()
		record.Gender = gender

		vector, err := encoder.Encode(record)
		rq.Nil(vector)
		rq.ErrorIs(err, domain.ErrEncoding)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.InvalidGender, code)
	}
}
