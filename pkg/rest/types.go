// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PredictionRequest Анкета клиента, диапазоны совпадают с виджетами формы
type PredictionRequest struct {
	Gender               string `json:"gender" validate:"required"`
	Age                  *int   `json:"age" validate:"required,min=18,max=100"`
	DrivingLicense       *int   `json:"drivingLicense" validate:"required,oneof=0 1"`
	RegionCode           *int   `json:"regionCode" validate:"required,min=0"`
	PreviouslyInsured    *int   `json:"previouslyInsured" validate:"required,oneof=0 1"`
	AnnualPremium        *int   `json:"annualPremium" validate:"required,min=0"`
	PolicySalesChannel   *int   `json:"policySalesChannel" validate:"required,min=1,max=163"`
	Vintage              *int   `json:"vintage" validate:"required,min=0,max=300"`
	VehicleAgeLtOneYear  *int   `json:"vehicleAgeLt1Year" validate:"required,oneof=0 1"`
	VehicleAgeGtTwoYears *int   `json:"vehicleAgeGt2Years" validate:"required,oneof=0 1"`
	VehicleDamageYes     *int   `json:"vehicleDamageYes" validate:"required,oneof=0 1"`
}

// PredictionResponse Результат предсказания
type PredictionResponse struct {
	// Label "Interested" или "Not Interested"
	Label      string `json:"label"`
	Interested bool   `json:"interested"`

	// Probability Вероятность класса 1
	Probability float64 `json:"probability"`

	// ProbabilityText Вероятность с двумя знаками, как в UI
	ProbabilityText string `json:"probabilityText"`
}

// Feature Описание признака для информационной панели
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FeaturesResponse struct {
	Features []Feature `json:"features"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для поддержки
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
