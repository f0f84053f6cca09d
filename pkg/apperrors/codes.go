package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// Системные и неизвестные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Ошибки документного хранилища
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	CodeStoreReadError   ErrorCode = "STORE_READ_ERROR"
	CodeStoreWriteError  ErrorCode = "STORE_WRITE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
)
