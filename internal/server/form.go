package server

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"insurance_predict/internal/domain"
	"insurance_predict/internal/domain/entity"
	"insurance_predict/internal/domain/value"
	"insurance_predict/pkg/httpx/reply"
	"insurance_predict/pkg/httpx/req"
	"insurance_predict/pkg/logx"
)

// Form field names.
const (
	fieldGender               = "gender"
	fieldAge                  = "age"
	fieldDrivingLicense       = "driving_license"
	fieldRegionCode           = "region_code"
	fieldPreviouslyInsured    = "previously_insured"
	fieldAnnualPremium        = "annual_premium"
	fieldPolicySalesChannel   = "policy_sales_channel"
	fieldVintage              = "vintage"
	fieldVehicleAgeLtOneYear  = "vehicle_age_lt_1_year"
	fieldVehicleAgeGtTwoYears = "vehicle_age_gt_2_years"
	fieldVehicleDamageYes     = "vehicle_damage_yes"
)

//go:embed templates/*.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html")) //nolint:gochecknoglobals

type widget struct {
	Name    string
	Label   string
	Options []string
	Min     string
	Max     string
	Value   string
}

func (w widget) IsSelect() bool {
	return len(w.Options) > 0
}

type page struct {
	Title    string
	Widgets  []widget
	Result   []string
	Error    string
	Features []value.FeatureInfo
}

type FormServer struct {
	predictionService predictionService
	title             string
}

func NewFormServer(predictionService predictionService, title string) FormServer {
	return FormServer{
		predictionService: predictionService,
		title:             title,
	}
}

func (s FormServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	return s.render(w, r, http.StatusOK, page{
		Widgets: widgets(defaultFormValues()),
	})
}

func (s FormServer) postIndex(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	request, err := newRequestFromForm(r)
	if err == nil {
		err = req.Validate(r, &request)
	}

	// Echo the submitted values back so the user can correct them.
	values := defaultFormValues()
	for name := range values {
		if v, ok := r.PostForm[name]; ok && len(v) > 0 {
			values[name] = v[0]
		}
	}

	if err != nil {
		return s.render(w, r, http.StatusBadRequest, page{
			Widgets: widgets(values),
			Error:   "Invalid input: " + failure.Description(err),
		})
	}

	prediction, err := s.predictionService.Submit(ctx, NewDomainCustomerRecord(request))
	if err != nil {
		logger(ctx).Error("predictionService.Submit", logx.Error(err))

		status, message := formError(err)

		return s.render(w, r, status, page{
			Widgets: widgets(values),
			Error:   message,
		})
	}

	return s.render(w, r, http.StatusOK, page{
		Widgets: widgets(values),
		Result:  prediction.Lines(),
	})
}

func (s FormServer) render(w http.ResponseWriter, r *http.Request, status int, p page) error {
	p.Title = s.title
	p.Features = value.FeatureDescriptions

	var buf bytes.Buffer

	if err := indexTemplate.Execute(&buf, p); err != nil {
		return fmt.Errorf("indexTemplate.Execute: %w", err)
	}

	reply.HTML(r.Context(), w, status, buf.Bytes())

	return nil
}

func formError(err error) (int, string) {
	var appErr *domain.AppError

	switch {
	case errors.Is(err, domain.ErrEncoding):
		return http.StatusBadRequest, "Encoding error: " + encodingMessage(err)
	case errors.Is(err, domain.ErrModelInference) && errors.As(err, &appErr):
		return http.StatusInternalServerError, "Model inference error: " + appErr.PublicMessage()
	default:
		return http.StatusInternalServerError, "Prediction failed"
	}
}

func defaultFormValues() map[string]string {
	record := entity.DefaultCustomerRecord()

	return map[string]string{
		fieldGender:               record.Gender.String(),
		fieldAge:                  strconv.Itoa(record.Age),
		fieldDrivingLicense:       strconv.Itoa(record.DrivingLicense),
		fieldRegionCode:           strconv.Itoa(record.RegionCode),
		fieldPreviouslyInsured:    strconv.Itoa(record.PreviouslyInsured),
		fieldAnnualPremium:        strconv.Itoa(record.AnnualPremium),
		fieldPolicySalesChannel:   strconv.Itoa(record.PolicySalesChannel),
		fieldVintage:              strconv.Itoa(record.Vintage),
		fieldVehicleAgeLtOneYear:  strconv.Itoa(record.VehicleAgeLtOneYear),
		fieldVehicleAgeGtTwoYears: strconv.Itoa(record.VehicleAgeGtTwoYears),
		fieldVehicleDamageYes:     strconv.Itoa(record.VehicleDamageYes),
	}
}

// widgets lists the form inputs in model column order.
func widgets(values map[string]string) []widget {
	flag := []string{"0", "1"}
	genders := make([]string, 0, len(value.Genders))

	for _, g := range value.Genders {
		genders = append(genders, g.String())
	}

	list := []widget{
		{Name: fieldGender, Label: "Gender", Options: genders},
		{Name: fieldAge, Label: "Age", Min: "18", Max: "100"},
		{Name: fieldDrivingLicense, Label: "Driving License", Options: flag},
		{Name: fieldRegionCode, Label: "Region Code", Min: "0"},
		{Name: fieldPreviouslyInsured, Label: "Previously Insured", Options: flag},
		{Name: fieldAnnualPremium, Label: "Annual Premium", Min: "0"},
		{Name: fieldPolicySalesChannel, Label: "Policy Sales Channel", Min: "1", Max: "163"},
		{Name: fieldVintage, Label: "Vintage (in days)", Min: "0", Max: "300"},
		{Name: fieldVehicleAgeLtOneYear, Label: "Vehicle Age < 1 Year", Options: flag},
		{Name: fieldVehicleAgeGtTwoYears, Label: "Vehicle Age > 2 Years", Options: flag},
		{Name: fieldVehicleDamageYes, Label: "Vehicle Damage", Options: flag},
	}

	for i := range list {
		list[i].Value = values[list[i].Name]
	}

	return list
}
