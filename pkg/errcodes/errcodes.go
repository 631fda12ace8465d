package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Кодирование анкеты клиента
	InvalidGender         failure.ErrorCode = "InvalidGender"         // Пол не Male/Female
	InvalidCustomerRecord failure.ErrorCode = "InvalidCustomerRecord" // Значение вне диапазона виджета

	// Модель
	ModelNotLoaded      failure.ErrorCode = "ModelNotLoaded"      // Артефакт не загрузился
	ModelSchemaMismatch failure.ErrorCode = "ModelSchemaMismatch" // Размер/порядок признаков не совпадает
	ModelInferenceError failure.ErrorCode = "ModelInferenceError" // Прочие ошибки инференса
)
