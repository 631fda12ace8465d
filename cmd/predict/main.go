// predict - предсказание интереса клиента к страховке из командной строки.
//
// Usage:
//
//	predict --model best_lgbm_model.txt --age 42 --vehicle-damage-yes 1
//	predict --server http://localhost:8080 --gender Female
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"insurance_predict/internal/domain/entity"
)

var version = "dev" //nolint:gochecknoglobals // set by ldflags

// Flag names.
const (
	flagModel       = "model"
	flagModelFormat = "model-format"
	flagServer      = "server"
	flagLogLevel    = "log-level"

	flagGender               = "gender"
	flagAge                  = "age"
	flagDrivingLicense       = "driving-license"
	flagRegionCode           = "region-code"
	flagPreviouslyInsured    = "previously-insured"
	flagAnnualPremium        = "annual-premium"
	flagPolicySalesChannel   = "policy-sales-channel"
	flagVintage              = "vintage"
	flagVehicleAgeLtOneYear  = "vehicle-age-lt-1-year"
	flagVehicleAgeGtTwoYears = "vehicle-age-gt-2-years"
	flagVehicleDamageYes     = "vehicle-damage-yes"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "predict",
		Usage:     "Predict whether a customer is interested in vehicle insurance",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     append(modelFlags(), customerFlags()...),
		Action:    runPredict,
	}
}

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagModel,
			Aliases: []string{"m"},
			Value:   "best_lgbm_model.txt",
			Usage:   "Path to the model artifact for local inference",
			EnvVars: []string{"MODEL_PATH"},
		},
		&cli.StringFlag{
			Name:    flagModelFormat,
			Value:   "lightgbm",
			Usage:   "Model artifact format (ensemble, lightgbm, xgboost)",
			EnvVars: []string{"MODEL_FORMAT"},
		},
		&cli.StringFlag{
			Name:    flagServer,
			Aliases: []string{"s"},
			Usage:   "Base URL of a running service, e.g. http://localhost:8080; overrides --model",
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   "warn",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		},
	}
}

func customerFlags() []cli.Flag {
	record := entity.DefaultCustomerRecord()

	return []cli.Flag{
		&cli.StringFlag{Name: flagGender, Value: record.Gender.String(), Usage: "Male or Female"},
		&cli.IntFlag{Name: flagAge, Value: record.Age, Usage: "Age of the customer [18,100]"},
		&cli.IntFlag{Name: flagDrivingLicense, Value: record.DrivingLicense, Usage: "0 for No, 1 for Yes"},
		&cli.IntFlag{Name: flagRegionCode, Value: record.RegionCode, Usage: "Unique code for the region"},
		&cli.IntFlag{Name: flagPreviouslyInsured, Value: record.PreviouslyInsured, Usage: "0 for No, 1 for Yes"},
		&cli.IntFlag{Name: flagAnnualPremium, Value: record.AnnualPremium, Usage: "Premium to pay in a year"},
		&cli.IntFlag{Name: flagPolicySalesChannel, Value: record.PolicySalesChannel, Usage: "Outreach channel code [1,163]"},
		&cli.IntFlag{Name: flagVintage, Value: record.Vintage, Usage: "Days associated with the company [0,300]"},
		&cli.IntFlag{Name: flagVehicleAgeLtOneYear, Value: record.VehicleAgeLtOneYear, Usage: "1 if vehicle age < 1 year"},
		&cli.IntFlag{Name: flagVehicleAgeGtTwoYears, Value: record.VehicleAgeGtTwoYears, Usage: "1 if vehicle age > 2 years"},
		&cli.IntFlag{Name: flagVehicleDamageYes, Value: record.VehicleDamageYes, Usage: "1 if the vehicle was damaged"},
	}
}
